package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/daybalancer/findatime/pkg/core/model"
)

// JoinSessionResult represents the session a participant joined
type JoinSessionResult struct {
	Session model.Session
}

// JoinSession resolves a session code typed by a participant. The store
// normalizes the code before lookup; a mistyped code surfaces as
// db.ErrNotFound, which the caller shows as a retryable message.
func JoinSession(ctx context.Context, store SessionStore, logger *zap.Logger, code string) (*JoinSessionResult, error) {
	logger.Debug("Joining session", zap.String("code", code))

	session, err := store.LookupSession(code)
	if err != nil {
		return nil, fmt.Errorf("failed to join session: %w", err)
	}

	logger.Debug("Session found",
		zap.String("code", session.Code),
		zap.String("title", session.Title),
		zap.Int("participants", len(session.Participants)))

	return &JoinSessionResult{Session: session}, nil
}
