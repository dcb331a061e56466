package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), FilePermissions); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
directory: /tmp/jot-test-notes
tabstop: 8
fill_char: "."
command_title: "> "
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Directory != "/tmp/jot-test-notes" {
		t.Errorf("Directory = %q", cfg.Directory)
	}
	if cfg.Tabstop != 8 {
		t.Errorf("Tabstop = %d, want 8", cfg.Tabstop)
	}
	if cfg.FillChar != "." {
		t.Errorf("FillChar = %q, want .", cfg.FillChar)
	}
	if cfg.CommandTitle != "> " {
		t.Errorf("CommandTitle = %q", cfg.CommandTitle)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "directory: /tmp/jot-test-notes\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg.Tabstop != def.Tabstop {
		t.Errorf("Tabstop = %d, want default %d", cfg.Tabstop, def.Tabstop)
	}
	if cfg.FillChar != def.FillChar {
		t.Errorf("FillChar = %q, want default %q", cfg.FillChar, def.FillChar)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"zero tabstop", "directory: /tmp/x\ntabstop: 0\n"},
		{"negative tabstop", "directory: /tmp/x\ntabstop: -2\n"},
		{"long fill char", "directory: /tmp/x\nfill_char: '~~'\n"},
		{"empty directory", "directory: ''\n"},
		{"not yaml", "{{{\n"},
	}
	for _, tc := range cases {
		path := writeConfig(t, tc.content)
		if _, err := Load(path); err == nil {
			t.Errorf("%s: Load accepted invalid config", tc.name)
		}
	}
}

func TestLoadExpandsTilde(t *testing.T) {
	path := writeConfig(t, "directory: ~/jot-notes\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, "jot-notes"); cfg.Directory != want {
		t.Errorf("Directory = %q, want %q", cfg.Directory, want)
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}
