package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var ErrConfigurationError = errors.New("configuration error")

// Config holds the bot configuration. All values are fixed at startup;
// there is no runtime reconfiguration.
type Config struct {
	// BotToken is the Telegram bot API token. Required.
	BotToken string

	// Password is the shared password for the /auth command. If empty,
	// authentication is disabled and every chat may trigger downloads.
	Password string

	// PreauthChatIDs lists chats that are authenticated at startup
	// without the /auth flow.
	PreauthChatIDs []string

	// AdminUserID is the single user allowed to run /clear_auth and
	// /exit. Compared as a string.
	AdminUserID string

	// DownloadDir is where temporary video files are written.
	DownloadDir string

	LogLevel string
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Defaults carries CLI flag values used when the corresponding
// environment variable is unset: flags provide defaults, the
// environment wins.
type Defaults struct {
	Token       string
	Password    string
	ChatIDs     string
	AdminUserID string
	LogLevel    string
}

// NewConfig builds a Config from environment variables, falling back to
// the given defaults.
func NewConfig(defaults Defaults) (*Config, error) {
	if defaults.LogLevel == "" {
		defaults.LogLevel = "info"
	}
	config := &Config{
		BotToken:       getEnv("TELEGRAM_BOT_TOKEN", defaults.Token),
		Password:       getEnv("BOT_PASSWORD", defaults.Password),
		PreauthChatIDs: splitChatIDs(getEnv("CHAT_IDS", defaults.ChatIDs)),
		AdminUserID:    getEnv("ADMIN_USER_ID", defaults.AdminUserID),
		DownloadDir:    getEnv("DOWNLOAD_DIR", "."),
		LogLevel:       getEnv("LOG_LEVEL", defaults.LogLevel),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("%w: no Telegram bot token specified", ErrConfigurationError)
	}
	return nil
}

func splitChatIDs(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
