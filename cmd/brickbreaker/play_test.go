package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-brickbreaker/internal/config"
	"github.com/vovakirdan/tui-brickbreaker/internal/levels"
)

func TestStartIndex(t *testing.T) {
	campaign := []levels.Level{{ID: "alpha"}, {ID: "beta"}, {ID: "gamma"}}

	tests := []struct {
		ref     string
		want    int
		wantErr bool
	}{
		{"", 0, false},
		{"1", 0, false},
		{"3", 2, false},
		{"beta", 1, false},
		{"0", 0, true},
		{"4", 0, true},
		{"delta", 0, true},
	}

	for _, tt := range tests {
		got, err := startIndex(campaign, tt.ref)
		if (err != nil) != tt.wantErr {
			t.Errorf("startIndex(%q) err = %v, wantErr %v", tt.ref, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("startIndex(%q) = %d, want %d", tt.ref, got, tt.want)
		}
	}
}

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")

	logger, closeFn, err := newLogger(path, "debug")
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("hello", "n", 1)
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Fatalf("log file = %q", data)
	}

	if _, _, err := newLogger("", "loud"); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}

func TestLevelsCommandValidates(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("id: a\nrows: [\"11\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.yaml"), []byte("id: b\nrows: [\"..\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"levels", "--levels", dir, "--validate"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		flagLevels, flagValidate = "", false
	})

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected validation to fail")
	}
	if !strings.Contains(out.String(), "invalid") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestLoadConfigValidatesPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slow.yaml")
	if err := os.WriteFile(path, []byte("ball:\n  max_speed: 0.7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		difficulty string
		wantErr    bool
	}{
		{"", false},
		{"easy", false},
		{"normal", false},
		{"hard", true},
	}

	for _, tt := range tests {
		cfg, err := loadConfig(path, tt.difficulty)
		if (err != nil) != tt.wantErr {
			t.Errorf("loadConfig(%q) err = %v, wantErr %v", tt.difficulty, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, config.ErrInvalidConfig) {
			t.Errorf("loadConfig(%q) err = %v, want ErrInvalidConfig", tt.difficulty, err)
		}
		if !tt.wantErr && cfg.Ball.Speed > cfg.Ball.MaxSpeed {
			t.Errorf("loadConfig(%q) speed %v above max %v", tt.difficulty, cfg.Ball.Speed, cfg.Ball.MaxSpeed)
		}
	}

	if _, err := loadConfig(path, "insane"); err == nil {
		t.Error("expected an error for an unknown preset")
	}
}
