package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/daybalancer/findatime/pkg/core/model"
)

// SubmitResult represents a recorded availability submission
type SubmitResult struct {
	Session     model.Session
	Participant model.Participant
}

// SubmitAvailability records one participant's slot picks against a
// session. An empty slot set is a valid submission ("never free"); an
// empty name is not. Re-submitting under an existing name appends a new
// entry rather than editing the old one.
func SubmitAvailability(ctx context.Context, store SessionStore, logger *zap.Logger, code, name string, slots model.SlotSet) (*SubmitResult, error) {
	logger.Debug("Submitting availability",
		zap.String("code", code),
		zap.String("name", name),
		zap.Int("slot_count", len(slots)))

	session, participant, err := store.AppendParticipant(ctx, code, name, slots)
	if err != nil {
		return nil, fmt.Errorf("failed to submit availability: %w", err)
	}

	logger.Debug("Availability recorded",
		zap.String("code", session.Code),
		zap.String("participant_id", participant.ID),
		zap.Int("total_participants", len(session.Participants)))

	return &SubmitResult{Session: session, Participant: participant}, nil
}
