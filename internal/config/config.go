package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Config holds the application configuration.
type Config struct {
	BotToken string

	// Exercise catalog and per-user state
	ExercisesCSVPath string
	UserStatePath    string

	// Google Sheets
	GoogleCredentialsPath string
	SpreadsheetID         string
	SheetName             string

	// Groq (workout parsing and encouragements)
	GroqAPIKey string
	GroqModel  string

	// Cron schedule for the weekly nudge; empty disables it
	WeekReminderCron string
}

// Load reads configuration from environment variables, falling back to a
// .env file in the working directory.
func Load() (*Config, error) {
	env, err := loadEnvFile(".env")
	if err != nil {
		env = make(map[string]string)
	}

	getEnv := func(key, defaultValue string) string {
		if value := os.Getenv(key); value != "" {
			return value
		}
		if value, ok := env[key]; ok && value != "" {
			return value
		}
		return defaultValue
	}

	cfg := &Config{
		BotToken: getEnv("BOT_TOKEN", ""),

		ExercisesCSVPath: getEnv("EXERCISES_CSV_PATH", "exercises.csv"),
		UserStatePath:    getEnv("USER_STATE_PATH", "user_states.json"),

		GoogleCredentialsPath: getEnv("GOOGLE_CREDENTIALS_PATH", "credentials.json"),
		SpreadsheetID:         getEnv("SPREADSHEET_ID", ""),
		SheetName:             getEnv("SHEET_NAME", "Sheet1"),

		GroqAPIKey: getEnv("GROQ_API_KEY", ""),
		GroqModel:  getEnv("GROQ_MODEL", ""),

		// 9am every Monday
		WeekReminderCron: getEnv("WEEK_REMINDER_CRON", "0 0 9 * * 1"),
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is not set")
	}

	return cfg, nil
}

// SheetsConfigured reports whether the Google Sheets sink can be built.
func (c *Config) SheetsConfigured() bool {
	return c.SpreadsheetID != ""
}

// loadEnvFile reads a .env file.
func loadEnvFile(filename string) (map[string]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	env := make(map[string]string)
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		value = strings.Trim(value, `"'`)

		env[key] = value
	}

	return env, scanner.Err()
}
