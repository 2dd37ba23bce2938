package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err, "a missing config file is not an error")

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "workersai", cfg.LLM.Provider)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "http://localhost:8080", cfg.Client.ServerURL)
	assert.False(t, cfg.ProviderConfigured())
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9090
llm:
  provider: workersai
  cfAccountId: from-file
  cfApiToken: from-file
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("CF_ACCOUNT_ID", "from-env")
	t.Setenv("CF_MODEL", "@cf/custom/model")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.LLM.CFAccountID, "env beats file")
	assert.Equal(t, "from-file", cfg.LLM.CFAPIToken)
	assert.Equal(t, "@cf/custom/model", cfg.LLM.CFModel)
	assert.True(t, cfg.ProviderConfigured())
}

func TestProviderConfiguredOpenAI(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "openai")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.False(t, cfg.ProviderConfigured())

	t.Setenv("OPENAI_API_KEY", "sk-test")
	cfg, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.True(t, cfg.ProviderConfigured())
}
