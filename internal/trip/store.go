package trip

import (
	"sync"

	"travelbuddy/internal/ai"
)

// MaxTurns — how many user/assistant pairs the dialogue history keeps.
const MaxTurns = 10

// ProfileStore — per-user trip profiles. Get-or-create is explicit: a
// profile exists from the first time it is referenced.
type ProfileStore interface {
	GetOrCreate(userID string) *Profile
	Reset(userID string) *Profile
}

// HistoryStore — per-user bounded dialogue history.
type HistoryStore interface {
	Append(userID, role, content string)
	Get(userID string) []ai.Message
	Reset(userID string)
}

// The maps below are safe for concurrent use across users. Turns for one
// user must be serialized by the caller: the *Profile handed out by
// GetOrCreate is mutated in place by the extractor.

type profileStore struct {
	mu       sync.Mutex
	profiles map[string]*Profile
}

func NewProfileStore() ProfileStore {
	return &profileStore{profiles: make(map[string]*Profile)}
}

func (s *profileStore) GetOrCreate(userID string) *Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[userID]
	if !ok {
		p = NewProfile()
		s.profiles[userID] = p
	}
	return p
}

// Reset replaces the whole record, never a partial merge.
func (s *profileStore) Reset(userID string) *Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := NewProfile()
	s.profiles[userID] = p
	return p
}

type historyStore struct {
	mu       sync.Mutex
	maxTurns int
	turns    map[string][]ai.Message
}

func NewHistoryStore() HistoryStore {
	return &historyStore{maxTurns: MaxTurns, turns: make(map[string][]ai.Message)}
}

func (s *historyStore) Append(userID, role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := append(s.turns[userID], ai.Message{Role: role, Content: content})

	// Evict the oldest user/assistant pair once over the cap.
	if len(history) > s.maxTurns*2 {
		history = history[2:]
	}
	s.turns[userID] = history
}

func (s *historyStore) Get(userID string) []ai.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.turns[userID]
	out := make([]ai.Message, len(history))
	copy(out, history)
	return out
}

func (s *historyStore) Reset(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.turns, userID)
}
