package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

/*
порт или адрес запуска сервиса: PORT (-p) или RUN_ADDRESS (-a);
база заявок: DATABASE_URI (-d), путь к файлу SQLite или postgres:// DSN;
бот: BOT_TOKEN (-t), ADMIN_CHAT_ID (-c), TELEGRAM_API_URL (-u).
*/

type ServerConfig struct {
	Port           string `env:"PORT"`
	RunAddress     string `env:"RUN_ADDRESS"`
	DatabaseDSN    string `env:"DATABASE_URI"`
	BotToken       string `env:"BOT_TOKEN"`
	AdminChatID    int64  `env:"ADMIN_CHAT_ID"`
	TelegramAPIURL string `env:"TELEGRAM_API_URL"`
	StaticDir      string `env:"STATIC_DIR"`

	TelegramTimeout       time.Duration `env:"TELEGRAM_TIMEOUT" envDefault:"60s"`
	PollTimeout           int           `env:"POLL_TIMEOUT" envDefault:"30"`
	EnforceTerminalStates bool          `env:"ENFORCE_TERMINAL_STATES" envDefault:"false"`
	CORSOrigins           []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	LogLevel              string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat             string        `env:"LOG_FORMAT" envDefault:"text"`
}

// NewConfig reads the environment first; flags fill in whatever is unset.
func NewConfig(args []string) (*ServerConfig, error) {
	var params ServerConfig
	err := env.Parse(&params)
	if err != nil {
		return nil, err
	}

	var commandLineParams ServerConfig

	flags := flag.NewFlagSet("leadrelay", flag.ContinueOnError)
	flags.StringVar(&commandLineParams.Port, "p", "3001", "Port to listen on")
	flags.StringVar(&commandLineParams.RunAddress, "a", "", "Full address to listen on, overrides port")
	flags.StringVar(&commandLineParams.DatabaseDSN, "d", "./orders.db", "SQLite file or postgres DSN")
	flags.StringVar(&commandLineParams.BotToken, "t", "", "Telegram bot token")
	flags.Int64Var(&commandLineParams.AdminChatID, "c", 0, "Telegram chat receiving new orders")
	flags.StringVar(&commandLineParams.TelegramAPIURL, "u", "https://api.telegram.org", "Telegram Bot API address")
	flags.StringVar(&commandLineParams.StaticDir, "s", "", "Directory with the front-end build")
	err = flags.Parse(args)
	if err != nil {
		return nil, err
	}

	if params.Port == "" {
		params.Port = commandLineParams.Port
	}
	if params.RunAddress == "" {
		params.RunAddress = commandLineParams.RunAddress
	}
	if params.DatabaseDSN == "" {
		params.DatabaseDSN = commandLineParams.DatabaseDSN
	}
	if params.BotToken == "" {
		params.BotToken = commandLineParams.BotToken
	}
	if params.AdminChatID == 0 {
		params.AdminChatID = commandLineParams.AdminChatID
	}
	if params.TelegramAPIURL == "" {
		params.TelegramAPIURL = commandLineParams.TelegramAPIURL
	}
	if params.StaticDir == "" {
		params.StaticDir = commandLineParams.StaticDir
	}

	if params.PollTimeout < 0 {
		return nil, fmt.Errorf("POLL_TIMEOUT must not be negative, got %d", params.PollTimeout)
	}
	if params.LogFormat != "text" && params.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", params.LogFormat)
	}
	// a long poll must finish before the HTTP client gives up on it
	pollWindow := time.Duration(params.PollTimeout)*time.Second + 10*time.Second
	if params.TelegramTimeout < pollWindow {
		params.TelegramTimeout = pollWindow
	}

	return &params, nil
}

func (c *ServerConfig) ListenAddress() string {
	if c.RunAddress != "" {
		return c.RunAddress
	}
	return ":" + c.Port
}

// NotificationsEnabled is false when the bot cannot be used; the API still
// works in that case.
func (c *ServerConfig) NotificationsEnabled() bool {
	return c.BotToken != "" && c.AdminChatID != 0
}
