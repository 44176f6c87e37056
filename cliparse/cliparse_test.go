// cliparse/cliparse_test.go
package cliparse

import (
	"testing"
)

func TestParseFlags_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.Port)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:5173" {
		t.Errorf("expected default origin, got %v", cfg.AllowedOrigins)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ALLOWED_ORIGINS", "https://themis.example.com, https://staging.example.com")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	want := []string{"https://themis.example.com", "https://staging.example.com"}
	if len(cfg.AllowedOrigins) != len(want) {
		t.Fatalf("expected %d origins, got %v", len(want), cfg.AllowedOrigins)
	}
	for i, o := range want {
		if cfg.AllowedOrigins[i] != o {
			t.Errorf("origin %d: expected %s, got %s", i, o, cfg.AllowedOrigins[i])
		}
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ALLOWED_ORIGINS", "https://env.example.com")

	cfg, err := ParseFlags([]string{"-p", "8080", "-origins", "https://cli.example.com"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "https://cli.example.com" {
		t.Errorf("CLI should override env: got %v", cfg.AllowedOrigins)
	}
}

func TestParseFlags_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error for invalid PORT")
	}
}

func TestParseFlags_OnlyCommasIsError(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", " , ,")

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error when every origin is blank")
	}
}
