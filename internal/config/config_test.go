package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	credFile := filepath.Join(t.TempDir(), "credentials.json")
	if err := os.WriteFile(credFile, []byte(`{}`), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid memory backend",
			config: Config{
				Port:        "3000",
				DataBackend: "memory",
				ReportsDir:  "./pdfs",
			},
			wantErr: false,
		},
		{
			name: "valid sheets backend with inline credentials",
			config: Config{
				Port:                  "3000",
				DataBackend:           "sheets",
				GoogleSheetID:         "sheet-id",
				GoogleCredentialsJSON: `{"type":"service_account"}`,
				ReportsDir:            "./pdfs",
			},
			wantErr: false,
		},
		{
			name: "valid sheets backend with credentials file",
			config: Config{
				Port:                  "3000",
				DataBackend:           "sheets",
				GoogleSheetID:         "sheet-id",
				GoogleCredentialsFile: credFile,
				ReportsDir:            "./pdfs",
			},
			wantErr: false,
		},
		{
			name: "invalid port - non-numeric",
			config: Config{
				Port:        "abc",
				DataBackend: "memory",
				ReportsDir:  "./pdfs",
			},
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name: "invalid port - out of range",
			config: Config{
				Port:        "70000",
				DataBackend: "memory",
				ReportsDir:  "./pdfs",
			},
			wantErr:     true,
			errorString: "invalid port 70000",
		},
		{
			name: "invalid backend",
			config: Config{
				Port:        "3000",
				DataBackend: "dynamo",
				ReportsDir:  "./pdfs",
			},
			wantErr:     true,
			errorString: "invalid data backend 'dynamo'",
		},
		{
			name: "sheets backend without sheet id",
			config: Config{
				Port:                  "3000",
				DataBackend:           "sheets",
				GoogleCredentialsJSON: `{}`,
				ReportsDir:            "./pdfs",
			},
			wantErr:     true,
			errorString: "GOOGLE_SHEET_ID is required",
		},
		{
			name: "sheets backend with missing credentials file",
			config: Config{
				Port:                  "3000",
				DataBackend:           "sheets",
				GoogleSheetID:         "sheet-id",
				GoogleCredentialsFile: "/nonexistent/credentials.json",
				ReportsDir:            "./pdfs",
			},
			wantErr:     true,
			errorString: "credentials file does not exist",
		},
		{
			name: "sqlite backend without path",
			config: Config{
				Port:        "3000",
				DataBackend: "sqlite",
				ReportsDir:  "./pdfs",
			},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty",
		},
		{
			name: "empty reports dir",
			config: Config{
				Port:        "3000",
				DataBackend: "memory",
			},
			wantErr:     true,
			errorString: "reports directory cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errorString) {
				t.Errorf("Validate() error = %q, want it to contain %q", err.Error(), tt.errorString)
			}
		})
	}
}

func TestGoogleCredentialsPrefersInline(t *testing.T) {
	c := Config{
		GoogleCredentialsJSON: `{"inline":true}`,
		GoogleCredentialsFile: "/nonexistent.json",
	}
	data, err := c.GoogleCredentials()
	if err != nil {
		t.Fatalf("GoogleCredentials() error = %v", err)
	}
	if string(data) != `{"inline":true}` {
		t.Errorf("unexpected credentials: %s", data)
	}

	c.GoogleCredentialsJSON = ""
	if _, err := c.GoogleCredentials(); err == nil {
		t.Error("expected error for missing credentials file")
	}
}
