// Package journal records raised conditions in a sqlite database.
// Recording is optional and off by default; the no-op recorder keeps
// the call sites uniform when it is disabled.
package journal

import (
	"context"

	"codeberg.org/mutker/faultctl/internal/errors"
	"codeberg.org/mutker/faultctl/internal/logger"
)

type service struct {
	repo Repository
	cfg  Config
}

// noopRecorder drops entries when the journal is disabled
type noopRecorder struct{}

// NewService validates the configuration and returns a Recorder: a
// sqlite-backed one when the journal is enabled, a no-op otherwise.
func NewService(cfg Config, log logger.Logger) (Recorder, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, errFactory.Wrap(ErrInvalidConfig, err)
	}

	if !cfg.Enabled {
		log.Debug().Msg("Fault journal disabled, using no-op recorder")
		return &noopRecorder{}, nil
	}

	repo, err := NewRepository(cfg, log)
	if err != nil {
		log.Debug().Err(err).Msg("Failed to open fault journal")
		return nil, err
	}

	return &service{
		repo: repo,
		cfg:  cfg,
	}, nil
}

func (s *service) Record(ctx context.Context, entry *Entry) error {
	errFactory := errors.New()

	if entry == nil {
		return errFactory.New(ErrInvalidEntry)
	}

	if err := ctx.Err(); err != nil {
		return errFactory.Wrap(ErrOperationTimeout, err)
	}

	if err := s.repo.Record(entry); err != nil {
		return errFactory.Wrap(ErrRecordFault, err)
	}

	return nil
}

func (s *service) Close() error {
	errFactory := errors.New()

	if err := s.repo.Close(); err != nil {
		return errFactory.Wrap(ErrServiceShutdown, err)
	}

	return nil
}

func (*noopRecorder) Record(_ context.Context, _ *Entry) error {
	return nil
}

func (*noopRecorder) Close() error {
	return nil
}
