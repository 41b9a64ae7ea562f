package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// HTTP server
	Port       string
	CORSOrigin string

	// Backend selection: memory | sheets | sqlite
	DataBackend string

	// Google Sheets
	GoogleSheetID         string
	GoogleSheetName       string
	GoogleCredentialsJSON string
	GoogleCredentialsFile string

	// SQLite
	SQLiteDBPath string

	// Report archive
	ReportsDir string
}

func Load() *Config {
	return &Config{
		Port:       getEnv("PORT", "3000"),
		CORSOrigin: getEnv("CORS_ORIGIN", "*"),

		DataBackend: getEnv("DATA_BACKEND", "sheets"),

		GoogleSheetID:         getEnv("GOOGLE_SHEET_ID", ""),
		GoogleSheetName:       getEnv("GOOGLE_SHEET_NAME", ""),
		GoogleCredentialsJSON: getEnv("GOOGLE_CREDENTIALS_JSON", ""),
		GoogleCredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", "./credentials.json"),

		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/pagaae.db"),

		ReportsDir: getEnv("REPORTS_DIR", "./pdfs"),
	}
}

// Validate checks the configuration, collecting every problem into one error.
// A sheets backend without a spreadsheet id or credentials is a startup
// failure, not a runtime one.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case "memory", "sheets", "sqlite":
	default:
		errs = append(errs, fmt.Sprintf("invalid data backend '%s': must be one of [memory sheets sqlite]", c.DataBackend))
	}

	if c.DataBackend == "sheets" {
		if c.GoogleSheetID == "" {
			errs = append(errs, "GOOGLE_SHEET_ID is required when using the sheets backend")
		}
		if c.GoogleCredentialsJSON == "" {
			if c.GoogleCredentialsFile == "" {
				errs = append(errs, "either GOOGLE_CREDENTIALS_JSON or GOOGLE_CREDENTIALS_FILE must be provided for the sheets backend")
			} else if _, err := os.Stat(c.GoogleCredentialsFile); os.IsNotExist(err) {
				errs = append(errs, fmt.Sprintf("Google credentials file does not exist: %s", c.GoogleCredentialsFile))
			}
		}
	}

	if c.DataBackend == "sqlite" && c.SQLiteDBPath == "" {
		errs = append(errs, "SQLite database path cannot be empty when using the sqlite backend")
	}

	if c.ReportsDir == "" {
		errs = append(errs, "reports directory cannot be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// GoogleCredentials resolves the service-account JSON, preferring the inline
// value over the file path. The result is handed to the sheets client once at
// startup; nothing reads credentials from the environment after that.
func (c *Config) GoogleCredentials() ([]byte, error) {
	if c.GoogleCredentialsJSON != "" {
		return []byte(c.GoogleCredentialsJSON), nil
	}
	data, err := os.ReadFile(c.GoogleCredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read credentials file: %w", err)
	}
	return data, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
