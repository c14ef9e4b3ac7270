package config_test

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/edenlabllc/tenant-artifact-action/pkg/cli/config"
)

func TestLogger_Configure(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{name: "Valid level: debug", level: "debug", wantErr: false},
		{name: "Valid level: DEBUG (case insensitive)", level: "DEBUG", wantErr: false},
		{name: "Valid level: info", level: "info", wantErr: false},
		{name: "Valid level: warn", level: "warn", wantErr: false},
		{name: "Valid level: error", level: "error", wantErr: false},
		{name: "Invalid level: invalid", level: "invalid", wantErr: true},
		{name: "Invalid level: empty string", level: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &config.Logger{
				Level: tt.level,
				JSON:  false,
			}

			result, err := logger.Configure(io.Discard)
			if (err != nil) != tt.wantErr {
				t.Errorf("Configure() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && result == nil {
				t.Error("Configure() returned nil logger for valid input")
			}
		})
	}
}

func TestLogger_Configure_JSONFormat(t *testing.T) {
	for _, jsonMode := range []bool{true, false} {
		logger := &config.Logger{Level: "info", JSON: jsonMode}

		result, err := logger.Configure(io.Discard)
		if err != nil {
			t.Fatalf("Configure() unexpected error = %v", err)
		}
		if result == nil {
			t.Fatal("Configure() returned nil logger")
		}

		// Verify the logger can be used
		result.Info("test log message", "json", jsonMode)
	}
}

func TestLogger_Configure_RedactsSecrets(t *testing.T) {
	for _, jsonMode := range []bool{true, false} {
		var buf bytes.Buffer
		logger, err := (&config.Logger{Level: "info", JSON: jsonMode}).Configure(&buf)
		if err != nil {
			t.Fatalf("Configure() unexpected error = %v", err)
		}

		logger.Info("configuration loaded",
			slog.Any("github", config.GitHub{Token: "ghp_supersecret"}),
			slog.Any("slack", config.Slack{Notifications: true, Webhook: "https://hooks.example.com/T000/B000/secretpath"}),
		)

		out := buf.String()
		if strings.Contains(out, "ghp_supersecret") {
			t.Errorf("token leaked into log output (json=%v): %s", jsonMode, out)
		}
		if strings.Contains(out, "secretpath") {
			t.Errorf("webhook leaked into log output (json=%v): %s", jsonMode, out)
		}
		if !strings.Contains(out, "[REDACTED]") {
			t.Errorf("expected redaction marker in log output (json=%v): %s", jsonMode, out)
		}
	}
}

func TestActions_Context(t *testing.T) {
	actions := &config.Actions{
		Repository: "org/acme.service",
		Owner:      "org",
		Ref:        "refs/heads/production",
		RefName:    "production",
		SHA:        "abc123",
	}

	bctx := actions.Context()
	if bctx.Branch() != "production" {
		t.Errorf("Branch() = %q, want %q", bctx.Branch(), "production")
	}
	if bctx.RepoName() != "acme.service" {
		t.Errorf("RepoName() = %q, want %q", bctx.RepoName(), "acme.service")
	}
	if bctx.SHA != "abc123" {
		t.Errorf("SHA = %q, want %q", bctx.SHA, "abc123")
	}
}

func TestSlack_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Slack
		wantErr bool
	}{
		{name: "disabled needs no webhook", cfg: config.Slack{}, wantErr: false},
		{name: "enabled with webhook", cfg: config.Slack{Notifications: true, Webhook: "https://hooks.example.com/x"}, wantErr: false},
		{name: "enabled without webhook", cfg: config.Slack{Notifications: true}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
