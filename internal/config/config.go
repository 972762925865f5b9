package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	PostgreSQL
	HTTP
	Mail
	Telegram
	Notification
	Redis
	RateLimit
	Report
}

// responseMargin is left to validation, persistence and writing the response.
const responseMargin = 5 * time.Second

type App struct {
	Location *time.Location
	APIToken string
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
	MaxConns int32
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxBodySize  int64
}

// Mail with an empty Host makes the email channel log messages instead of sending them.
type Mail struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       []string
	Timeout  time.Duration
}

type Telegram struct {
	APIURL          string
	Token           string
	ChatID          string
	MessageTimeout  time.Duration
	DocumentTimeout time.Duration
}

// Notification bounds the whole fan-out of one lead, all channels together.
type Notification struct {
	Timeout time.Duration
}

type Redis struct {
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration
}

type RateLimit struct {
	Requests int
	Window   time.Duration
}

// Report with an empty FontFile renders PDF digests with the built-in Latin fonts.
type Report struct {
	FontFile string
}

func Load(cmd *cli.Command) (*Config, error) {
	location, err := time.LoadLocation(cmd.String("time-zone"))
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone: %w", err)
	}

	cfg := &Config{
		App: App{
			Location: location,
			APIToken: cmd.String("api-token"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
			MaxConns: cmd.Int32("pg-max-conns"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
			MaxBodySize:  cmd.Int64("http-max-body"),
		},
		Mail: Mail{
			Host:     cmd.String("smtp-host"),
			Port:     cmd.Int("smtp-port"),
			Username: cmd.String("smtp-username"),
			Password: cmd.String("smtp-password"),
			From:     cmd.String("mail-from"),
			To:       cmd.StringSlice("mail-to"),
			Timeout:  cmd.Duration("smtp-timeout"),
		},
		Telegram: Telegram{
			APIURL:          cmd.String("telegram-api-url"),
			Token:           cmd.String("telegram-token"),
			ChatID:          cmd.String("telegram-chat-id"),
			MessageTimeout:  cmd.Duration("telegram-message-timeout"),
			DocumentTimeout: cmd.Duration("telegram-document-timeout"),
		},
		Redis: Redis{
			Addr:     cmd.String("redis-addr"),
			Password: cmd.String("redis-password"),
			DB:       cmd.Int("redis-db"),
			CacheTTL: cmd.Duration("redis-cache-ttl"),
		},
		Notification: Notification{
			Timeout: cmd.Duration("notify-timeout"),
		},
		RateLimit: RateLimit{
			Requests: cmd.Int("rate-limit-requests"),
			Window:   cmd.Duration("rate-limit-window"),
		},
		Report: Report{
			FontFile: cmd.String("pdf-font"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that a submission whose notifications run to their deadline still gets its
// response written before the server write timeout fires.
func (c *Config) Validate() error {
	if c.Notification.Timeout <= 0 {
		return errors.New("notification timeout must be positive")
	}

	if c.HTTP.WriteTimeout <= 0 {
		return nil
	}

	required := c.HTTP.ReadTimeout + c.Notification.Timeout + responseMargin
	if c.HTTP.WriteTimeout < required {
		return fmt.Errorf("http write timeout %s must be at least %s (read timeout %s + notification timeout %s + %s)",
			c.HTTP.WriteTimeout, required, c.HTTP.ReadTimeout, c.Notification.Timeout, responseMargin)
	}

	return nil
}
