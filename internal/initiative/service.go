package initiative

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Joiner posts a submission upstream.
type Joiner interface {
	Join(ctx context.Context, sub Submission) error
}

// Service validates, relays and records submissions.
type Service struct {
	joiner Joiner
	store  *Store
	logger *zap.Logger
}

// NewService creates a Service. store may be nil, in which case nothing is
// recorded.
func NewService(joiner Joiner, store *Store, logger *zap.Logger) *Service {
	return &Service{joiner: joiner, store: store, logger: logger}
}

// Relay validates sub and posts it upstream. The upstream error, if any, is
// returned unchanged so callers can surface it with errors.As. Recording
// failures are logged and do not fail the relay.
func (s *Service) Relay(ctx context.Context, sub Submission) error {
	sub = sub.Normalize()
	if err := sub.Validate(); err != nil {
		return err
	}

	joinErr := s.joiner.Join(ctx, sub)

	rec := Record{Submission: sub, Status: StatusRelayed}
	var respErr *ResponseError
	switch {
	case errors.As(joinErr, &respErr):
		rec.Status = StatusRejected
		rec.UpstreamStatus = respErr.StatusCode
		rec.UpstreamBody = string(respErr.Body)
	case joinErr != nil:
		rec.Status = StatusFailed
		rec.UpstreamBody = joinErr.Error()
	}

	if s.store != nil {
		if id, err := s.store.Save(ctx, rec); err != nil {
			s.logger.Warn("recording initiative submission", zap.Error(err))
		} else {
			s.logger.Info("initiative submission",
				zap.String("id", id),
				zap.String("status", string(rec.Status)),
				zap.Int("upstream_status", rec.UpstreamStatus),
			)
		}
	}

	return joinErr
}
