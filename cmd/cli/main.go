package main

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/checkmycar/checkmycar/internal/config"
)

var cfg *config.Config

func init() {
	// .env is optional for the CLI; it mainly carries CHECKMYCAR_SERVER_URL.
	_ = godotenv.Load()

	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}
	var err error
	if cfg, err = config.Load(path); err != nil {
		log.WithError(err).Fatal("config load error")
	}

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historyClearCmd)
	rootCmd.AddCommand(loginCmd, logoutCmd, profileCmd)
}

var rootCmd = &cobra.Command{
	Use:   "checkmycar",
	Short: "Analyze dashboard warning light photos",
	Long: `checkmycar sends a dashboard warning light photo to the inference
gateway and records the structured result in a local history. When the
gateway is unreachable it falls back to a filename-based guess.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
