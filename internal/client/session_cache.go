package client

import (
	"context"
	"errors"
	"slices"
	"sync"

	app_errors "okaigpt/backend/internal/errors"
	"okaigpt/backend/internal/model"
	"okaigpt/backend/internal/service"
)

// ErrNoActiveSession is returned by Send when no session has been selected.
var ErrNoActiveSession = errors.New("no active session")

// SessionAPI is the subset of Client used by SessionCache.
type SessionAPI interface {
	ListSessions(ctx context.Context) ([]*model.Session, error)
	CreateSession(ctx context.Context, req *service.CreateSessionRequest) (*model.Session, error)
	UpdateSession(ctx context.Context, sessionID string, req *service.UpdateSessionRequest) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	ClearHistory(ctx context.Context) error
	AppendMessage(ctx context.Context, sessionID string, req *service.AppendMessageRequest) (*model.Message, error)
	ListMessages(ctx context.Context, sessionID string, limit *int, offset int) ([]model.Message, error)
}

// SessionCache keeps a client-side copy of the session list and of the active
// session's messages. It reloads from the server on session switch and after
// every mutation, so the server stays the source of truth.
type SessionCache struct {
	api SessionAPI

	mu       sync.RWMutex
	sessions []*model.Session
	activeID string
	messages []model.Message
}

func NewSessionCache(api SessionAPI) *SessionCache {
	return &SessionCache{api: api}
}

// Refresh reloads the session list. If the active session no longer exists it
// is deselected.
func (c *SessionCache) Refresh(ctx context.Context) error {
	sessions, err := c.api.ListSessions(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions = sessions
	if c.activeID != "" && !slices.ContainsFunc(sessions, func(s *model.Session) bool { return s.ID == c.activeID }) {
		c.activeID = ""
		c.messages = nil
	}
	return nil
}

// Switch makes sessionID the active session and loads its full history.
func (c *SessionCache) Switch(ctx context.Context, sessionID string) error {
	messages, err := c.api.ListMessages(ctx, sessionID, nil, 0)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeID = sessionID
	c.messages = messages
	return nil
}

// Create starts a new session and switches to it.
func (c *SessionCache) Create(ctx context.Context, req *service.CreateSessionRequest) (*model.Session, error) {
	session, err := c.api.CreateSession(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := c.Refresh(ctx); err != nil {
		return nil, err
	}
	if err := c.Switch(ctx, session.ID); err != nil {
		return nil, err
	}
	return session, nil
}

func (c *SessionCache) Update(ctx context.Context, sessionID string, req *service.UpdateSessionRequest) (*model.Session, error) {
	session, err := c.api.UpdateSession(ctx, sessionID, req)
	if err != nil {
		return nil, err
	}
	return session, c.Refresh(ctx)
}

func (c *SessionCache) Delete(ctx context.Context, sessionID string) error {
	if err := c.api.DeleteSession(ctx, sessionID); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

func (c *SessionCache) ClearHistory(ctx context.Context) error {
	if err := c.api.ClearHistory(ctx); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// Send appends a message to the active session and reloads both the history
// and the session list, whose order follows updated_at.
func (c *SessionCache) Send(ctx context.Context, req *service.AppendMessageRequest) (*model.Message, error) {
	sessionID := c.Active()
	if sessionID == "" {
		return nil, ErrNoActiveSession
	}

	message, err := c.api.AppendMessage(ctx, sessionID, req)
	if err != nil {
		if errors.Is(err, app_errors.ErrNotFound) {
			_ = c.Refresh(ctx)
		}
		return nil, err
	}
	if err := c.Switch(ctx, sessionID); err != nil {
		return nil, err
	}
	return message, c.Refresh(ctx)
}

// Sessions returns a snapshot of the cached session list, most recent first.
func (c *SessionCache) Sessions() []*model.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.sessions)
}

// Active returns the active session id, or "" if none is selected.
func (c *SessionCache) Active() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.activeID
}

// Messages returns a snapshot of the active session's history.
func (c *SessionCache) Messages() []model.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.messages)
}
