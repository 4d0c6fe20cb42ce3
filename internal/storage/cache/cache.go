package cache

import (
	"sync"

	"github.com/DanRulev/codehero.git/internal/models"
	"github.com/DanRulev/codehero.git/internal/quiz"
)

// Cache keeps per-user lesson state between Telegram updates.
type Cache struct {
	mu       sync.Mutex
	sessions map[int64]*quiz.Session
	pending  map[pendingKey]models.ProgressRecord
}

type pendingKey struct {
	userID   int64
	language string
	lessonID int
}

func NewCache() *Cache {
	return &Cache{
		sessions: make(map[int64]*quiz.Session),
		pending:  make(map[pendingKey]models.ProgressRecord),
	}
}

// SetSession replaces any lesson the user was playing.
func (c *Cache) SetSession(userID int64, session *quiz.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[userID] = session
}

// GetSession returns the user's session only if its id matches.
func (c *Cache) GetSession(userID int64, sessionID string) (*quiz.Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	session, exists := c.sessions[userID]
	if !exists || session.ID() != sessionID {
		return nil, false
	}
	return session, true
}

func (c *Cache) DeleteSession(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, userID)
}

// SetPending keeps a completion record that could not be saved. Records of
// different lessons are kept side by side, a newer attempt of the same lesson
// replaces the older one.
func (c *Cache) SetPending(record models.ProgressRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending[pendingKey{record.UserID, record.Language, record.LessonID}] = record
}

func (c *Cache) GetPending(userID int64, language string, lessonID int) (models.ProgressRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	record, exists := c.pending[pendingKey{userID, language, lessonID}]
	return record, exists
}

func (c *Cache) DeletePending(userID int64, language string, lessonID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, pendingKey{userID, language, lessonID})
}
