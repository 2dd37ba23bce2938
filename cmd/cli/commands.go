package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	apphistory "github.com/checkmycar/checkmycar/internal/application/history"
	domain "github.com/checkmycar/checkmycar/internal/domain/analysis"
	"github.com/checkmycar/checkmycar/internal/imageprep"
	"github.com/checkmycar/checkmycar/internal/infra/db/sqlite"
	"github.com/checkmycar/checkmycar/internal/infra/gateway"
)

func openStore(ctx context.Context) (*apphistory.Service, *sqlx.DB, error) {
	db, err := sqlite.Connect(ctx, cfg.Client.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open local store: %w", err)
	}
	return apphistory.NewService(sqlite.NewHistoryRepository(db)), db, nil
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <image>",
	Short: "Analyze a dashboard photo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		path := args[0]
		fileName := filepath.Base(path)

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		prepared, err := imageprep.Prepare(data)
		if err != nil {
			return fmt.Errorf("prepare image: %w", err)
		}

		client := gateway.NewClient(cfg.Client.ServerURL, cfg.LLM.Timeout)
		res, err := client.Analyze(ctx, prepared.Base64)
		if err != nil {
			// The gateway could not be reached or blew up: recover with
			// the local filename heuristic instead of showing an error.
			log.WithError(err).Warn("gateway unavailable, using local fallback")
			res = domain.ClassifyFilename(fileName)
		}

		svc, db, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close()
		if _, err := svc.Append(ctx, fileName, prepared.DataURI(), res); err != nil {
			return err
		}

		printResult(res)
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the local analysis history",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List past analyses, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, db, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		entries, err := svc.List(ctx)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("no history yet")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%s  [%s/%s]  %s  %s\n",
				e.At.Format("2006-01-02 15:04"), e.Code, e.Source, e.FileName, e.Detected)
		}
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all history entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, db, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close()
		return svc.Clear(ctx)
	},
}

var (
	loginEmail  string
	loginCar    string
	loginSignup bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store the local profile and mark it signed in",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, db, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		p, err := svc.Login(ctx, loginEmail, loginCar, loginSignup)
		if err != nil {
			return err
		}
		fmt.Printf("signed in as %s (%s)\n", p.Email, p.CarModel)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the signed-in flag",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, db, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close()
		return svc.Logout(ctx)
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the stored profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, db, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		p, err := svc.Profile(ctx)
		if err != nil {
			return err
		}
		state := "signed out"
		if p.Authed {
			state = "signed in"
		}
		fmt.Printf("email: %s\ncar:   %s\nstate: %s\n", p.Email, p.CarModel, state)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginCar, "car", "", "car model")
	loginCmd.Flags().BoolVar(&loginSignup, "signup", false, "sign up instead of logging in (requires --car)")
}

func printResult(res domain.Result) {
	tag := map[domain.Source]string{
		domain.SourceAI:    "AI",
		domain.SourceDemo:  "DEMO",
		domain.SourceLocal: "LOCAL",
	}[res.Source]

	fmt.Printf("감지 코드: %s [%s]\n", res.Code, tag)
	fmt.Printf("%s\n", res.Title)
	for i, step := range res.Steps {
		fmt.Printf("  %d. %s\n", i+1, step)
	}
}
