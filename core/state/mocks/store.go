package mocks

import (
	"context"
	"time"

	"card-timers/core/state"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of state.Store.
type Store struct {
	mock.Mock
}

func (m *Store) UpdateMonument(ctx context.Context, name string, mut state.Mutation) (state.MonumentState, bool, error) {
	args := m.Called(ctx, name, mut)
	return args.Get(0).(state.MonumentState), args.Bool(1), args.Error(2)
}

func (m *Store) GetMonument(ctx context.Context, name string) (state.MonumentState, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(state.MonumentState), args.Error(1)
}

func (m *Store) ListMonuments(ctx context.Context) ([]state.MonumentState, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]state.MonumentState); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) GetLastReset(ctx context.Context) (time.Time, error) {
	args := m.Called(ctx)
	return args.Get(0).(time.Time), args.Error(1)
}

func (m *Store) SetLastReset(ctx context.Context, at time.Time) error {
	args := m.Called(ctx, at)
	return args.Error(0)
}
