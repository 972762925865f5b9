package leads

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Pavel771123/nataliya/internal/domain"
	"github.com/Pavel771123/nataliya/internal/metrics"
)

// Service runs the intake workflow: validate, persist, then notify.
type Service struct {
	log       *slog.Logger
	validator *Validator
	creator   LeadCreator
	notifier  Notifier
}

func NewService(log *slog.Logger, validator *Validator, creator LeadCreator, notifier Notifier) *Service {
	return &Service{
		log:       log,
		validator: validator,
		creator:   creator,
		notifier:  notifier,
	}
}

// Submit returns a *ValidationError when the form is rejected. Notification outcome never
// affects the result: once the lead is stored, Submit succeeds.
func (s *Service) Submit(ctx context.Context, form Form, meta domain.RequestMeta) (*domain.Lead, error) {
	newLead, err := s.validator.Validate(form)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			metrics.LeadsSubmitted.WithLabelValues(metrics.ResultInvalid).Inc()
			s.log.DebugContext(ctx, "lead rejected", slog.String("err", err.Error()))
		}

		return nil, err
	}

	lead, err := s.creator.CreateLead(ctx, newLead)
	if err != nil {
		metrics.LeadsSubmitted.WithLabelValues(metrics.ResultFailed).Inc()
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	metrics.LeadsSubmitted.WithLabelValues(metrics.ResultCreated).Inc()

	log := s.log.With(slog.String("lead_id", lead.ID.String()))
	log.InfoContext(ctx, "lead created", slog.Bool("has_file", lead.HasFile()))

	// the submitter may hang up while channels are still sending
	s.notifier.Notify(context.WithoutCancel(ctx), lead, meta)

	return lead, nil
}
