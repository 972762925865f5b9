package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Pavel771123/nataliya/internal/app"
	"github.com/Pavel771123/nataliya/internal/config"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "nataliya",
		Usage:   "Interior design site lead intake service",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			if level, ok := ctx.Value(levelKey{}).(*slog.LevelVar); ok {
				if err := level.UnmarshalText([]byte(cmd.String("log-level"))); err != nil {
					return fmt.Errorf("invalid log level: %w", err)
				}
			}

			cfg, err := config.Load(cmd)
			if err != nil {
				return err
			}

			return app.New(log, cfg).Run(ctx)
		},
	}
}

func flags() []cli.Flag {
	var config string

	source := func(key string) cli.ValueSource {
		return yaml.YAML(key, altsrc.NewStringPtrSourcer(&config))
	}

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &config,
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Set log level: debug, info, warn or error",
			Value:   "info",
			Sources: cli.NewValueSourceChain(cli.EnvVar("LOG_LEVEL"), source("app.log_level")),
		},
		&cli.StringFlag{
			Name:      "time-zone",
			Aliases:   []string{"tz"},
			Usage:     "Set IANA time zone used for dates in notifications",
			Value:     "Local",
			Sources:   cli.NewValueSourceChain(cli.EnvVar("TIME_ZONE"), source("app.time_zone")),
			Validator: validateTimeZone,
		},
		&cli.StringFlag{
			Name:    "api-token",
			Usage:   "Set bearer token for the lead feed, exports and catalog import, disabled when empty",
			Sources: cli.NewValueSourceChain(cli.EnvVar("API_TOKEN"), source("app.api_token")),
		},
		&cli.StringFlag{
			Name:     "pg-host",
			Usage:    "Set PostgreSQL host",
			Value:    "localhost",
			Sources:  cli.NewValueSourceChain(source("postgresql.host")),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-port",
			Usage:    "Set PostgreSQL port",
			Value:    "5432",
			Sources:  cli.NewValueSourceChain(source("postgresql.port")),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-username",
			Usage:    "Set PostgreSQL username",
			Sources:  cli.NewValueSourceChain(source("postgresql.username")),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-password",
			Usage:    "Set PostgreSQL password",
			Sources:  cli.NewValueSourceChain(cli.EnvVar("PG_PASSWORD"), source("postgresql.password")),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-dbname",
			Usage:    "Set PostgreSQL database name",
			Value:    "nataliya",
			Sources:  cli.NewValueSourceChain(source("postgresql.dbname")),
			Required: true,
		},
		&cli.Int32Flag{
			Name:    "pg-max-conns",
			Usage:   "Set maximum size of the PostgreSQL connection pool",
			Value:   10,
			Sources: cli.NewValueSourceChain(source("postgresql.max_conns")),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(source("http.host")),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: cli.NewValueSourceChain(source("http.port")),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(source("http.idle_timeout")),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   15 * time.Second,
			Sources: cli.NewValueSourceChain(source("http.read_timeout")),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout, must cover the read and notification timeouts",
			Value:   75 * time.Second,
			Sources: cli.NewValueSourceChain(source("http.write_timeout")),
		},
		&cli.Int64Flag{
			Name:      "http-max-body",
			Usage:     "Set maximum size of a lead submission body in bytes",
			Value:     16 << 20,
			Sources:   cli.NewValueSourceChain(source("http.max_body")),
			Validator: validatePositive[int64],
		},
		&cli.StringFlag{
			Name:    "smtp-host",
			Usage:   "Set SMTP host, emails are only logged when empty",
			Sources: cli.NewValueSourceChain(cli.EnvVar("SMTP_HOST"), source("mail.host")),
		},
		&cli.IntFlag{
			Name:      "smtp-port",
			Usage:     "Set SMTP port",
			Value:     587,
			Sources:   cli.NewValueSourceChain(cli.EnvVar("SMTP_PORT"), source("mail.port")),
			Validator: validatePositive[int],
		},
		&cli.StringFlag{
			Name:    "smtp-username",
			Usage:   "Set SMTP username",
			Sources: cli.NewValueSourceChain(cli.EnvVar("SMTP_USERNAME"), source("mail.username")),
		},
		&cli.StringFlag{
			Name:    "smtp-password",
			Usage:   "Set SMTP password",
			Sources: cli.NewValueSourceChain(cli.EnvVar("SMTP_PASSWORD"), source("mail.password")),
		},
		&cli.DurationFlag{
			Name:    "smtp-timeout",
			Usage:   "Set SMTP dial and send timeout",
			Value:   15 * time.Second,
			Sources: cli.NewValueSourceChain(source("mail.timeout")),
		},
		&cli.StringFlag{
			Name:    "mail-from",
			Usage:   "Set sender address of lead emails",
			Sources: cli.NewValueSourceChain(cli.EnvVar("DEFAULT_FROM_EMAIL"), source("mail.from")),
		},
		&cli.StringSliceFlag{
			Name:    "mail-to",
			Usage:   "Set recipients of lead emails, defaults to the sender address",
			Sources: cli.NewValueSourceChain(cli.EnvVar("MAIL_TO"), source("mail.to")),
		},
		&cli.StringFlag{
			Name:    "telegram-api-url",
			Usage:   "Set Telegram Bot API base URL",
			Value:   "https://api.telegram.org",
			Sources: cli.NewValueSourceChain(source("telegram.api_url")),
		},
		&cli.StringFlag{
			Name:    "telegram-token",
			Usage:   "Set Telegram bot token",
			Sources: cli.NewValueSourceChain(cli.EnvVar("TELEGRAM_BOT_TOKEN"), source("telegram.token")),
		},
		&cli.StringFlag{
			Name:    "telegram-chat-id",
			Usage:   "Set Telegram chat id that receives leads",
			Sources: cli.NewValueSourceChain(cli.EnvVar("TELEGRAM_CHAT_ID"), source("telegram.chat_id")),
		},
		&cli.DurationFlag{
			Name:    "telegram-message-timeout",
			Usage:   "Set timeout of a Telegram text message request",
			Value:   10 * time.Second,
			Sources: cli.NewValueSourceChain(source("telegram.message_timeout")),
		},
		&cli.DurationFlag{
			Name:    "telegram-document-timeout",
			Usage:   "Set timeout of a Telegram document upload",
			Value:   20 * time.Second,
			Sources: cli.NewValueSourceChain(source("telegram.document_timeout")),
		},
		&cli.DurationFlag{
			Name:    "notify-timeout",
			Usage:   "Set deadline of the whole notification fan-out of one lead",
			Value:   45 * time.Second,
			Sources: cli.NewValueSourceChain(source("notification.timeout")),
		},
		&cli.StringFlag{
			Name:    "redis-addr",
			Usage:   "Set Redis address, caching and rate limiting are disabled when empty",
			Sources: cli.NewValueSourceChain(cli.EnvVar("REDIS_ADDR"), source("redis.addr")),
		},
		&cli.StringFlag{
			Name:    "redis-password",
			Usage:   "Set Redis password",
			Sources: cli.NewValueSourceChain(cli.EnvVar("REDIS_PASSWORD"), source("redis.password")),
		},
		&cli.IntFlag{
			Name:    "redis-db",
			Usage:   "Set Redis database number",
			Sources: cli.NewValueSourceChain(source("redis.db")),
		},
		&cli.DurationFlag{
			Name:    "redis-cache-ttl",
			Usage:   "Set lifetime of cached lead feed and catalog pages",
			Value:   5 * time.Minute,
			Sources: cli.NewValueSourceChain(source("redis.cache_ttl")),
		},
		&cli.IntFlag{
			Name:    "rate-limit-requests",
			Usage:   "Set submissions allowed per client IP within the window, 0 disables the limit",
			Value:   5,
			Sources: cli.NewValueSourceChain(source("rate_limit.requests")),
		},
		&cli.DurationFlag{
			Name:    "rate-limit-window",
			Usage:   "Set rate limit window",
			Value:   time.Minute,
			Sources: cli.NewValueSourceChain(source("rate_limit.window")),
		},
		&cli.StringFlag{
			Name:      "pdf-font",
			Usage:     "Load UTF-8 TrueType font from `FILE` for PDF lead digests",
			Sources:   cli.NewValueSourceChain(cli.EnvVar("PDF_FONT"), source("report.font")),
			Validator: validateFontFile,
		},
	}
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}

func validateFontFile(font string) error {
	info, err := os.Stat(font)
	if err != nil {
		return fmt.Errorf("failed to stat font %q: %w", font, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a font file", font)
	}

	if ext := strings.ToLower(filepath.Ext(font)); ext != ".ttf" {
		return fmt.Errorf("invalid font extension %q, expected .ttf", ext)
	}

	return nil
}

func validateTimeZone(name string) error {
	if _, err := time.LoadLocation(name); err != nil {
		return fmt.Errorf("unknown time zone %q: %w", name, err)
	}

	return nil
}

func validatePositive[T int | int64](v T) error {
	if v <= 0 {
		return fmt.Errorf("%d is not a positive number", v)
	}

	return nil
}
