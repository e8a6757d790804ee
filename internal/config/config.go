package config

import "os"

// Config is the process configuration, read from the environment after an
// optional .env load in main.
type Config struct {
	DataFile    string
	AuditLog    string
	GeminiKey   string
	GeminiModel string
	AIDisabled  bool
}

func Load() Config {
	return Config{
		DataFile:    getenv("LEAVE_DATA_FILE", "employees.json"),
		AuditLog:    getenv("LEAVE_AUDIT_LOG", "system.log"),
		GeminiKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel: getenv("LEAVE_AI_MODEL", "gemini-2.0-flash"),
		AIDisabled:  os.Getenv("LEAVE_AI_DISABLED") != "",
	}
}

// UseAI reports whether the remote extractor should be attempted at all.
func (c Config) UseAI() bool {
	return c.GeminiKey != "" && !c.AIDisabled
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
