package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	cfg := "data_dir = \"" + dir + "\"\n\n[api]\nprovider = \"mock\"\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))
	return path
}

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestGenerateWithMockProvider(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out := runCommand(t, "--config", cfgPath, "generate", "MX-480", "--output", "markdown")
	require.Contains(t, out, "MX-480")
	require.Contains(t, out, "# ")
}

func TestGenerateThenHistoryList(t *testing.T) {
	cfgPath := writeTestConfig(t)

	runCommand(t, "--config", cfgPath, "generate", "Catalyst 9300", "--output", "plain")
	out := runCommand(t, "--config", cfgPath, "history", "list")
	require.Contains(t, out, "Catalyst 9300")
	require.Contains(t, out, "DEVICE MODEL")
}

func TestHistoryShowLatest(t *testing.T) {
	cfgPath := writeTestConfig(t)

	runCommand(t, "--config", cfgPath, "generate", "EX4300", "--output", "plain")
	out := runCommand(t, "--config", cfgPath, "history", "show", "latest", "--output", "plain")
	require.Contains(t, out, "EX4300")
}

func TestGenerateRejectsBlankModel(t *testing.T) {
	cfgPath := writeTestConfig(t)

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--config", cfgPath, "generate", "   "})
	err := cmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "device model")
}

func TestHistoryClear(t *testing.T) {
	cfgPath := writeTestConfig(t)

	runCommand(t, "--config", cfgPath, "generate", "ISR4451", "--output", "plain")
	out := runCommand(t, "--config", cfgPath, "history", "clear")
	require.Contains(t, out, "history cleared")

	out = runCommand(t, "--config", cfgPath, "history", "list")
	require.NotContains(t, out, "ISR4451")
}
