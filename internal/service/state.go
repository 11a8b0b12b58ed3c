package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jask/whohasphone/internal/people"
)

// AppKey is the key the whole application state is stored under.
const AppKey = "app"

// KV is the blob store the state is persisted to.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// StateService loads the application state at startup and writes it back
// at shutdown.
type StateService struct {
	KV     KV
	Key    string
	Logger *slog.Logger
}

func (s *StateService) key() string {
	if s.Key == "" {
		return AppKey
	}
	return s.Key
}

func (s *StateService) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

// Load returns the saved state, or a fresh one when nothing usable is
// stored. The add dialog never survives a restart: it comes back closed
// with a default draft.
func (s *StateService) Load(ctx context.Context) *people.State {
	if s.KV == nil {
		return people.NewState()
	}
	data, ok, err := s.KV.Get(ctx, s.key())
	if err != nil {
		s.logger().Warn("load state failed, starting empty", "key", s.key(), "error", err)
		return people.NewState()
	}
	if !ok {
		s.logger().Info("no saved state", "key", s.key())
		return people.NewState()
	}
	st, err := people.Decode(data)
	if err != nil {
		s.logger().Warn("saved state unreadable, starting empty", "key", s.key(), "bytes", len(data), "error", err)
		return people.NewState()
	}
	st.Reset()
	s.logger().Info("state loaded", "key", s.key(), "people", len(st.People))
	return st
}

// Save writes st as one blob. A state with no records is stored as an
// absent key, which Load already treats as a fresh state.
func (s *StateService) Save(ctx context.Context, st *people.State) error {
	if s.KV == nil {
		return fmt.Errorf("state service: store not configured")
	}
	if len(st.People) == 0 {
		if err := s.KV.Delete(ctx, s.key()); err != nil {
			return fmt.Errorf("clear state %q: %w", s.key(), err)
		}
		s.logger().Info("state cleared", "key", s.key())
		return nil
	}
	data, err := people.Encode(st)
	if err != nil {
		return err
	}
	if err := s.KV.Put(ctx, s.key(), data); err != nil {
		return fmt.Errorf("save state %q: %w", s.key(), err)
	}
	s.logger().Info("state saved", "key", s.key(), "people", len(st.People))
	return nil
}
