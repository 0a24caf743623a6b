package quiz

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session ID is unknown or belongs
// to another user.
var ErrSessionNotFound = errors.New("quiz session not found")

// Store holds live quiz sessions in memory, keyed by session ID.
// Sessions do not survive process restarts: a quiz attempt is ephemeral
// and resets when the session is closed.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
}

type entry struct {
	userID   int
	lessonID int
	session  *Session
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{sessions: make(map[string]*entry)}
}

// Open creates a session over the given questions and registers it for
// the user. Opening a new session for a lesson discards any previous
// session the user had for that lesson.
func (st *Store) Open(userID, lessonID int, questions []Question) (string, *Session, error) {
	session, err := NewSession(questions)
	if err != nil {
		return "", nil, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	for id, e := range st.sessions {
		if e.userID == userID && e.lessonID == lessonID {
			delete(st.sessions, id)
		}
	}

	id := uuid.New().String()
	st.sessions[id] = &entry{userID: userID, lessonID: lessonID, session: session}
	return id, session, nil
}

// Get retrieves the user's session by ID
func (st *Store) Get(id string, userID int) (*Session, int, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	e, ok := st.sessions[id]
	if !ok || e.userID != userID {
		return nil, 0, ErrSessionNotFound
	}
	return e.session, e.lessonID, nil
}

// Close discards the user's session. Closing an unknown session is not
// an error; the state is simply gone either way.
func (st *Store) Close(id string, userID int) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if e, ok := st.sessions[id]; ok && e.userID == userID {
		delete(st.sessions, id)
	}
}

// Do runs fn against the user's session while holding the store lock,
// serializing state transitions on the session.
func (st *Store) Do(id string, userID int, fn func(*Session) error) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	e, ok := st.sessions[id]
	if !ok || e.userID != userID {
		return ErrSessionNotFound
	}
	return fn(e.session)
}
