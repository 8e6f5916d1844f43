package lesson

import (
	"sync"

	"github.com/google/uuid"
)

// QuestionRepository supplies the ordered quiz bank for a topic. Injected so
// content can be swapped without touching the state machine.
type QuestionRepository interface {
	QuestionsForTopic(topicID uint) ([]Question, error)
}

// StateStore is the durable fallback for suspended sessions, keyed by
// (user, topic). Load returns (nil, nil) when no state is saved.
type StateStore interface {
	Load(userID, topicID uint) (*SavedState, error)
	Save(userID, topicID uint, state SavedState) error
	Delete(userID, topicID uint) error
}

type pairKey struct {
	userID  uint
	topicID uint
}

// Manager owns the live quiz sessions of the process and the suspend/resume
// machinery. At most one session per (user, topic) is live at a time;
// starting again abandons the previous one. A suspended session leaves two
// records behind: an in-memory payload (preferred on resume, consumed once)
// and a durable row through the StateStore. Either restore path deletes the
// durable row, so a saved state is restorable at most once.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	live     map[pairKey]string
	pending  map[pairKey]SavedState

	questions QuestionRepository
	store     StateStore
}

func NewManager(questions QuestionRepository, store StateStore) *Manager {
	return &Manager{
		sessions:  make(map[string]*Session),
		live:      make(map[pairKey]string),
		pending:   make(map[pairKey]SavedState),
		questions: questions,
		store:     store,
	}
}

// Start creates a quiz session for (user, topic), restoring suspended state
// if any exists. The in-memory payload wins over the durable row.
func (m *Manager) Start(userID, topicID uint) (*Session, error) {
	bank, err := m.questions.QuestionsForTopic(topicID)
	if err != nil {
		return nil, err
	}
	if len(bank) == 0 {
		return nil, ErrNoQuestions
	}

	session := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		TopicID:   topicID,
		questions: bank,
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := pairKey{userID, topicID}

	// An abandoned session for the same pair is retired; its id stops
	// resolving the moment the new one exists.
	if oldID, ok := m.live[key]; ok {
		delete(m.sessions, oldID)
	}

	if state, ok := m.pending[key]; ok {
		session.Restore(state)
		delete(m.pending, key)
		// The durable copy is spent with the ephemeral one.
		_ = m.store.Delete(userID, topicID)
	} else if state, err := m.store.Load(userID, topicID); err == nil && state != nil {
		session.Restore(*state)
		_ = m.store.Delete(userID, topicID)
	}

	m.sessions[session.ID] = session
	m.live[key] = session.ID
	return session, nil
}

// Get returns a live session by id.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	return session, ok
}

// Suspend captures the session state for a later resume and retires the live
// session. The snapshot is kept in memory for same-process navigation and
// written through the StateStore to survive a reload.
func (m *Manager) Suspend(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil
	}

	state := session.Snapshot()
	key := pairKey{session.UserID, session.TopicID}
	m.pending[key] = state
	delete(m.sessions, id)
	if m.live[key] == id {
		delete(m.live, key)
	}

	return m.store.Save(session.UserID, session.TopicID, state)
}

// Finish retires a completed session and drops any leftover saved state for
// the pair, so the next pass starts fresh.
func (m *Manager) Finish(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return
	}
	key := pairKey{session.UserID, session.TopicID}
	delete(m.sessions, id)
	if m.live[key] == id {
		delete(m.live, key)
	}
	delete(m.pending, key)
	_ = m.store.Delete(session.UserID, session.TopicID)
}
