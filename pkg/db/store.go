package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/daybalancer/findatime/pkg/core/codes"
	"github.com/daybalancer/findatime/pkg/core/model"
)

// Store owns the mapping from session code to session. It is the single
// writer: sessions handed out are deep copies, and a mutation replaces the
// stored session wholesale.
//
// Every mutation persists the complete store through the backend. Saves run
// on a background goroutine so mutations never block on storage I/O; a
// mutation issued while an earlier save is still in flight replaces the
// pending snapshot, so the most recently issued state always wins.
type Store struct {
	mu       sync.Mutex
	sessions map[string]model.Session
	backend  Backend
	logger   *zap.Logger

	saveCh    chan []byte
	saverDone chan struct{}
	closed    bool
}

// NewStore builds a store on top of the given backend and loads the
// persisted snapshot. An absent or unreadable snapshot degrades to an empty
// store; load failures are logged, never returned.
func NewStore(ctx context.Context, backend Backend, logger *zap.Logger) *Store {
	s := &Store{
		sessions:  make(map[string]model.Session),
		backend:   backend,
		logger:    logger,
		saveCh:    make(chan []byte, 1),
		saverDone: make(chan struct{}),
	}

	snapshot, err := backend.Load(ctx)
	switch {
	case err == nil:
		var sessions map[string]model.Session
		if err := json.Unmarshal(snapshot, &sessions); err != nil {
			logger.Warn("Persisted snapshot is corrupt, starting empty", zap.Error(err))
		} else {
			s.sessions = sessions
			logger.Debug("Loaded session snapshot", zap.Int("sessions", len(sessions)))
		}
	case errors.Is(err, ErrNoSnapshot):
		logger.Debug("No persisted snapshot, starting empty")
	default:
		logger.Warn("Failed to load session snapshot, starting empty", zap.Error(err))
	}
	if s.sessions == nil {
		s.sessions = make(map[string]model.Session)
	}

	go s.saver()

	return s
}

// CreateSession creates a new session with the given title and a freshly
// allocated unique code. An empty (after trimming) title is rejected with
// ErrInvalidInput and the store is unchanged.
func (s *Store) CreateSession(ctx context.Context, title string) (model.Session, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Session{}, fmt.Errorf("%w: session title must not be empty", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	code := s.allocateCode()
	session := model.Session{
		Code:         code,
		Title:        title,
		Participants: []model.Participant{},
	}
	s.sessions[code] = session
	s.enqueueSave()

	s.logger.Info("Session created",
		zap.String("code", code),
		zap.String("title", title))

	return session.Clone(), nil
}

// allocateCode generates codes until one is free. Collisions are cheap to
// retry: the keyspace dwarfs any realistic store size.
// Caller must hold s.mu.
func (s *Store) allocateCode() string {
	for {
		code := codes.Generate()
		if _, taken := s.sessions[code]; !taken {
			return code
		}
		s.logger.Debug("Session code collision, retrying", zap.String("code", code))
	}
}

// LookupSession returns the session for the given code after normalizing it.
// Unknown codes return ErrNotFound.
func (s *Store) LookupSession(code string) (model.Session, error) {
	code = codes.Normalize(code)

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[code]
	if !ok {
		return model.Session{}, fmt.Errorf("%w: %q", ErrNotFound, code)
	}
	return session.Clone(), nil
}

// AppendParticipant records one availability submission against a session.
// The participant's color index is their ordinal position modulo the
// palette size at the moment of submission. Returns the updated session
// and the participant as stored.
func (s *Store) AppendParticipant(ctx context.Context, code, name string, slots model.SlotSet) (model.Session, model.Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Session{}, model.Participant{}, fmt.Errorf("%w: participant name must not be empty", ErrInvalidInput)
	}

	code = codes.Normalize(code)

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[code]
	if !ok {
		return model.Session{}, model.Participant{}, fmt.Errorf("%w: %q", ErrNotFound, code)
	}

	participant := model.Participant{
		ID:         uuid.New().String(),
		Name:       name,
		Slots:      slots.Sorted(),
		ColorIndex: len(session.Participants) % model.PaletteSize,
	}

	updated := session.Clone()
	updated.Participants = append(updated.Participants, participant)
	s.sessions[code] = updated
	s.enqueueSave()

	s.logger.Info("Participant added",
		zap.String("code", code),
		zap.String("participant_id", participant.ID),
		zap.String("name", name),
		zap.Int("slot_count", len(participant.Slots)),
		zap.Int("color_index", participant.ColorIndex))

	return updated.Clone(), participant, nil
}

// Sessions returns a copy of every stored session, keyed by code.
// Used by tests and round-trip checks; rendering goes through Lookup.
func (s *Store) Sessions() map[string]model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]model.Session, len(s.sessions))
	for code, session := range s.sessions {
		out[code] = session.Clone()
	}
	return out
}

// enqueueSave serializes the full store and hands it to the saver,
// replacing any not-yet-started save. Caller must hold s.mu.
func (s *Store) enqueueSave() {
	if s.closed {
		return
	}

	snapshot, err := json.Marshal(s.sessions)
	if err != nil {
		s.logger.Warn("Failed to serialize session snapshot", zap.Error(err))
		return
	}

	// Drop a pending snapshot: it is stale now. The saver only receives,
	// and senders hold s.mu, so this drain-then-send cannot block.
	select {
	case <-s.saveCh:
	default:
	}
	s.saveCh <- snapshot
}

// saver persists snapshots in issue order. Persistence failures are logged
// and swallowed: in-memory state stays authoritative for this process.
func (s *Store) saver() {
	defer close(s.saverDone)
	for snapshot := range s.saveCh {
		if err := s.backend.Save(context.Background(), snapshot); err != nil {
			s.logger.Warn("Failed to persist session snapshot", zap.Error(err))
		}
	}
}

// Close flushes any pending save and stops the saver. The store must not
// be mutated after Close.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.saveCh)
	s.mu.Unlock()

	<-s.saverDone
}
