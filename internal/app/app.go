package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/Pavel771123/nataliya/internal/config"
	v1 "github.com/Pavel771123/nataliya/internal/controller/http/v1"
	"github.com/Pavel771123/nataliya/internal/infrastructure/mailer"
	"github.com/Pavel771123/nataliya/internal/infrastructure/ratelimit"
	"github.com/Pavel771123/nataliya/internal/infrastructure/rediscache"
	"github.com/Pavel771123/nataliya/internal/infrastructure/report"
	"github.com/Pavel771123/nataliya/internal/infrastructure/telegram"
	"github.com/Pavel771123/nataliya/internal/leads"
	"github.com/Pavel771123/nataliya/internal/notification"
	"github.com/Pavel771123/nataliya/internal/portfolio"
	"github.com/Pavel771123/nataliya/internal/repository/postgresql"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout  = 5 * time.Second
	redisPingTimeout = 5 * time.Second
)

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("time_zone", a.cfg.App.Location.String()),
		slog.Bool("lead_feed", a.cfg.App.APIToken != ""),
	)

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	txManager := postgresql.NewTxManager(pool)
	filesRepository := postgresql.NewLeadFilesRepository(pool)
	leadsRepository := postgresql.NewLeadsRepository(pool, txManager, filesRepository)
	portfolioRepository := postgresql.NewPortfolioRepository(pool, txManager)

	var (
		store   rediscache.LeadsStore = leadsRepository
		catalog portfolio.Store       = portfolioRepository
		limiter v1.RateLimiter        = ratelimit.NoOp{}
	)

	if a.cfg.Redis.Addr != "" {
		client, err := a.connectRedis(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Close(); err != nil {
				a.log.WarnContext(ctx, "failed to close redis client", slog.String("err", err.Error()))
			}
		}()

		store = rediscache.NewLeads(a.log, client, leadsRepository, a.cfg.Redis.CacheTTL)
		catalog = rediscache.NewPortfolio(a.log, client, portfolioRepository, a.cfg.Redis.CacheTTL)
		if a.cfg.RateLimit.Requests > 0 {
			limiter = ratelimit.NewRedis(client, a.cfg.RateLimit)
		}
	} else {
		a.log.WarnContext(ctx, "redis is not configured, caching and rate limiting are disabled")
	}

	digest, err := a.digest(ctx)
	if err != nil {
		return err
	}

	// Exports page through the whole feed, bypassing the cache.
	exporter := leads.NewExporter(leadsRepository, digest, a.cfg.App.Location)

	service := leads.NewService(a.log, leads.NewValidator(), store, a.dispatcher(ctx))
	catalogService := portfolio.NewService(a.log, catalog)

	handlers := v1.Handlers{
		Leads:     v1.NewLeadsHandler(a.log, service, store, filesRepository, a.cfg.HTTP.MaxBodySize),
		Export:    v1.NewExportHandler(a.log, exporter),
		Portfolio: v1.NewPortfolioHandler(a.log, catalogService, catalogService, a.cfg.HTTP.MaxBodySize),
	}

	server := v1.NewServer(a.cfg.HTTP, v1.NewRouter(a.log, a.cfg.App.APIToken, handlers, limiter))

	return a.serve(ctx, server)
}

func (a *App) connectRedis(ctx context.Context) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to ping redis: %w", err), client.Close())
	}

	a.log.InfoContext(ctx, "connected to redis", slog.String("redis_addr", a.cfg.Redis.Addr))

	return client, nil
}

// digest is nil without a configured font, the PDF export then answers 501.
func (a *App) digest(ctx context.Context) (leads.DigestRenderer, error) {
	if a.cfg.Report.FontFile == "" {
		a.log.WarnContext(ctx, "pdf font is not configured, pdf lead export is disabled")
		return nil, nil
	}

	digest, err := report.NewDigest(a.cfg.App.Location, a.cfg.Report.FontFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create pdf digest: %w", err)
	}

	return digest, nil
}

func (a *App) dispatcher(ctx context.Context) *notification.Dispatcher {
	var m notification.Mailer
	if a.cfg.Mail.Host != "" {
		m = mailer.NewSMTP(a.cfg.Mail)
	} else {
		a.log.WarnContext(ctx, "smtp host is not configured, emails will only be logged")
		m = mailer.NewLog(a.log)
	}

	bot := telegram.NewClient(a.cfg.Telegram)
	if !bot.Configured() {
		a.log.WarnContext(ctx, "telegram bot token or chat id is not set, telegram notifications are disabled")
	}

	return notification.NewDispatcher(a.log, a.cfg.Notification.Timeout,
		notification.NewEmailChannel(m, a.cfg.Mail.From, a.cfg.Mail.To),
		notification.NewChatChannel(bot, a.cfg.App.Location),
	)
}

func (a *App) serve(ctx context.Context, server *v1.Server) error {
	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}
