package db

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// Session holds all the information for a given user Session
type Session struct {
	// Session ID (stored in the cookie)
	ID string `xorm:"pk"`
	// Name of user
	UserName string
	// Role the user signed in with
	Role string
	// App Token for user (GIN logins only)
	Token string
	// Time when the session was created (for expiration)
	Created time.Time
}

// NewSession creates a new session for a user with the given role and a new
// unique ID.
func NewSession(username, role string) *Session {
	sess := new(Session)
	sess.ID = uuid.New().String()
	sess.UserName = username
	sess.Role = role
	sess.Created = time.Now()
	return sess
}

// Expired reports whether the session is older than ttl. A zero ttl never
// expires.
func (sess *Session) Expired(ttl time.Duration) bool {
	return ttl > 0 && time.Since(sess.Created) > ttl
}

// InsertSession stores a new Session.  Inserting a Session with an existing
// ID fails.
func (conn *Connection) InsertSession(sess *Session) error {
	_, err := conn.engine.Insert(sess)
	return err
}

// GetSession retrieves a session from the database given its ID.
func (conn *Connection) GetSession(id string) (*Session, error) {
	sess := new(Session)
	if has, err := conn.engine.ID(id).Get(sess); err != nil {
		return nil, err
	} else if !has {
		return nil, ErrNotFound
	}
	return sess, nil
}

// DeleteSession removes the session with the given ID.  Deleting a missing
// session is not an error.
func (conn *Connection) DeleteSession(id string) error {
	_, err := conn.engine.ID(id).Delete(new(Session))
	return err
}

// PurgeSessions deletes every session created before the given time and
// returns the number removed.
func (conn *Connection) PurgeSessions(before time.Time) (int64, error) {
	sessions := make([]Session, 0)
	if err := conn.engine.Find(&sessions); err != nil {
		return 0, err
	}
	var n int64
	for idx := range sessions {
		// stored time formats differ between drivers; compare in Go
		if !sessions[idx].Created.Before(before) {
			continue
		}
		if err := conn.DeleteSession(sessions[idx].ID); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
