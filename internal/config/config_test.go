package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".pymote.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Host != "127.0.0.1" || cfg.Port != 9500 {
		t.Errorf("default endpoint = %s:%d", cfg.Host, cfg.Port)
	}
	if got := cfg.CommandTimeout(); got != 30*time.Second {
		t.Errorf("default timeout = %v", got)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "host: grid.example.com\nport: 9501\ntimeout: 5s\nlog_level: debug\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Host != "grid.example.com" || cfg.Port != 9501 {
		t.Errorf("endpoint = %s:%d", cfg.Host, cfg.Port)
	}
	if cfg.CommandTimeout() != 5*time.Second {
		t.Errorf("timeout = %v", cfg.CommandTimeout())
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
}

// Fields absent from the file keep their defaults.
func TestLoadPartial(t *testing.T) {
	path := writeConfig(t, "port: 9501\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Host != DefaultHost {
		t.Errorf("host = %q, want default", cfg.Host)
	}
	if cfg.Port != 9501 {
		t.Errorf("port = %d", cfg.Port)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("timeout = %q, want default", cfg.Timeout)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load of missing file succeeded")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"not yaml", "host: [unclosed", "parse config"},
		{"port too large", "port: 70000\n", "out of range"},
		{"port zero", "port: 0\n", "out of range"},
		{"bad timeout", "timeout: soon\n", "invalid timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load succeeded")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestCommandTimeoutFallback(t *testing.T) {
	cfg := &Config{Timeout: "garbage"}
	if got := cfg.CommandTimeout(); got != 30*time.Second {
		t.Errorf("fallback timeout = %v", got)
	}
}
