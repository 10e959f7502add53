package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/daybalancer/findatime/pkg/core/model"
)

// SessionStore defines the store operations the services need.
// db.Store implements this interface; tests use a mock.
type SessionStore interface {
	CreateSession(ctx context.Context, title string) (model.Session, error)
	LookupSession(code string) (model.Session, error)
	AppendParticipant(ctx context.Context, code, name string, slots model.SlotSet) (model.Session, model.Participant, error)
}

// CreateSessionResult represents the outcome of creating a session
type CreateSessionResult struct {
	Session model.Session
}

// CreateSession creates a new scheduling session with the given title.
// The store allocates the shareable code and persists the session.
func CreateSession(ctx context.Context, store SessionStore, logger *zap.Logger, title string) (*CreateSessionResult, error) {
	logger.Debug("Creating session", zap.String("title", title))

	session, err := store.CreateSession(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	logger.Debug("Session created",
		zap.String("code", session.Code),
		zap.String("title", session.Title))

	return &CreateSessionResult{Session: session}, nil
}
