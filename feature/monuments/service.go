package monuments

import (
	"context"
	"time"

	"card-timers/core/state"

	"go.uber.org/zap"
)

// Service reads the monument board.
type Service struct {
	store  state.Store
	logger *zap.Logger
}

// NewService creates a new monuments service.
func NewService(store state.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Board returns every monument annotated against the reset epoch.
func (s *Service) Board(ctx context.Context) (*Board, error) {
	lastReset, err := s.store.GetLastReset(ctx)
	if err != nil {
		return nil, err
	}
	all, err := s.store.ListMonuments(ctx)
	if err != nil {
		return nil, err
	}

	board := &Board{LastResetUTC: lastReset, Monuments: make([]MonumentView, 0, len(all))}
	for _, m := range all {
		board.Monuments = append(board.Monuments, view(m, lastReset))
	}
	return board, nil
}

// Monument returns a single monument. Unknown names yield state.ErrNotFound.
func (s *Service) Monument(ctx context.Context, name string) (*MonumentView, error) {
	lastReset, err := s.store.GetLastReset(ctx)
	if err != nil {
		return nil, err
	}
	m, err := s.store.GetMonument(ctx, name)
	if err != nil {
		return nil, err
	}
	v := view(m, lastReset)
	return &v, nil
}

func view(m state.MonumentState, lastReset time.Time) MonumentView {
	return MonumentView{
		Name:             m.Name,
		LastSwipeUTC:     m.LastSwipeAt,
		LastPlayer:       m.LastPlayer,
		SwipedSinceReset: m.LastSwipeAt != nil && m.LastSwipeAt.After(lastReset),
	}
}
