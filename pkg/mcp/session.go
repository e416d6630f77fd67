package mcp

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one connected MCP client. Sessions identify, they do not
// authenticate - the Mcp-Session-Id header is pure correlation.
type Session struct {
	ID              string
	ConnectedAt     time.Time
	UserAgent       string
	ClientIP        string
	ProtocolVersion string
	Initialized     bool
}

type SessionRegistry struct {
	mutex    sync.Mutex
	sessions map[string]*Session
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: map[string]*Session{}}
}

func (r *SessionRegistry) Create(userAgent string, clientIP string, protocolVersion string) *Session {
	session := &Session{
		ID:              uuid.NewString(),
		ConnectedAt:     time.Now(),
		UserAgent:       userAgent,
		ClientIP:        clientIP,
		ProtocolVersion: protocolVersion,
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.sessions[session.ID] = session

	return session
}

func (r *SessionRegistry) Get(id string) (*Session, bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	session, found := r.sessions[id]
	return session, found
}

func (r *SessionRegistry) MarkInitialized(id string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if session, found := r.sessions[id]; found {
		session.Initialized = true
	}
}

func (r *SessionRegistry) Delete(id string) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, found := r.sessions[id]; !found {
		return false
	}
	delete(r.sessions, id)
	return true
}

func (r *SessionRegistry) Count() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return len(r.sessions)
}
