package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Pavel771123/nataliya/internal/domain"
	"github.com/Pavel771123/nataliya/internal/metrics"
)

// ErrChannelDisabled is returned by a channel that lacks configuration.
var ErrChannelDisabled = errors.New("notification channel is not configured")

// Dispatcher fans a stored lead out to every channel in order. A failing channel never stops
// the next one and nothing is reported back to the caller.
type Dispatcher struct {
	log      *slog.Logger
	timeout  time.Duration
	channels []Channel
}

// NewDispatcher bounds every fan-out by timeout, channels still pending when it expires are
// counted as failed. A zero timeout leaves the bound to the channels themselves.
func NewDispatcher(log *slog.Logger, timeout time.Duration, channels ...Channel) *Dispatcher {
	return &Dispatcher{
		log:      log,
		timeout:  timeout,
		channels: channels,
	}
}

func (d *Dispatcher) Notify(ctx context.Context, lead *domain.Lead, meta domain.RequestMeta) {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	for _, ch := range d.channels {
		log := d.log.With(
			slog.String("channel", ch.Name()),
			slog.String("lead_id", lead.ID.String()),
		)

		err := ctx.Err()
		if err == nil {
			err = notifySafely(ctx, ch, lead, meta)
		} else {
			err = fmt.Errorf("notification deadline passed before channel ran: %w", err)
		}

		switch {
		case err == nil:
			metrics.Notifications.WithLabelValues(ch.Name(), metrics.ResultSent).Inc()
			log.InfoContext(ctx, "lead notification sent")

		case errors.Is(err, ErrChannelDisabled):
			metrics.Notifications.WithLabelValues(ch.Name(), metrics.ResultSkipped).Inc()
			log.WarnContext(ctx, "lead notification skipped", slog.String("err", err.Error()))

		default:
			metrics.Notifications.WithLabelValues(ch.Name(), metrics.ResultFailed).Inc()
			log.ErrorContext(ctx, "failed to send lead notification", slog.String("err", err.Error()))
		}
	}
}

func notifySafely(ctx context.Context, ch Channel, lead *domain.Lead, meta domain.RequestMeta) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("channel panicked: %v", r)
		}
	}()

	return ch.Notify(ctx, lead, meta)
}
