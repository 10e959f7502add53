package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/daybalancer/findatime/pkg/core/model"
	"github.com/daybalancer/findatime/pkg/core/overlap"
)

// ResultsResult contains everything the results view renders: the session
// snapshot, the per-slot overlap buckets, and the ranked best times.
type ResultsResult struct {
	Session           model.Session
	Overlap           map[model.SlotID][]model.Participant
	BestTimes         []overlap.RankedSlot
	TotalParticipants int
}

// ViewResults computes the aggregated "who is free when" data for a
// session. A session with no participants yields an empty overlap map and
// an empty best-times list, not an error.
func ViewResults(ctx context.Context, store SessionStore, logger *zap.Logger, code string) (*ResultsResult, error) {
	logger.Debug("Computing results", zap.String("code", code))

	session, err := store.LookupSession(code)
	if err != nil {
		return nil, fmt.Errorf("failed to load session for results: %w", err)
	}

	buckets := overlap.Compute(session)
	bestTimes := overlap.BestTimes(session)

	logger.Debug("Results computed",
		zap.String("code", session.Code),
		zap.Int("participants", len(session.Participants)),
		zap.Int("slots_with_overlap", len(buckets)),
		zap.Int("best_times", len(bestTimes)))

	return &ResultsResult{
		Session:           session,
		Overlap:           buckets,
		BestTimes:         bestTimes,
		TotalParticipants: len(session.Participants),
	}, nil
}
