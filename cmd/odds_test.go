package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOddsCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := `
[log]
color = false

[draw.weights]
common = 40
uncommon = 30
rare = 15
epic = 10
legendary = 5
`
	if err := os.WriteFile(path, []byte(cfg), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"odds", "--config", path, "--cards"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		showCards = false
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("odds error = %v", err)
	}

	got := out.String()
	for _, want := range []string{"RARITY", "Legendary", "Vampirschwein", "Streamschwein", "total weight"} {
		if !strings.Contains(got, want) {
			t.Errorf("odds output missing %q:\n%s", want, got)
		}
	}
}

func TestOddsCommand_MissingConfig(t *testing.T) {
	rootCmd.SetArgs([]string{"odds", "--config", filepath.Join(t.TempDir(), "absent.toml")})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("odds with a missing config returned no error")
	}
}
