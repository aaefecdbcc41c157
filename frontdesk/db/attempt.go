package db

import (
	"time"
)

// Outcome of a sign-in attempt.
type Outcome string

const (
	// Blocked attempts had an empty username or password.
	Blocked Outcome = "blocked"
	// Rejected attempts failed authentication.
	Rejected Outcome = "rejected"
	// Accepted attempts started a session.
	Accepted Outcome = "accepted"
)

// Attempt holds all the information for a sign-in attempt.
type Attempt struct {
	// Attempt ID (auto)
	ID int64 `xorm:"pk autoincr"`
	// Username as submitted (trimmed)
	UserName string
	// Remote address of the client
	RemoteAddr string
	Outcome    Outcome
	// Message from the audit action, or the failure reason
	Message string
	// Time when the attempt was queued
	SubmitTime time.Time
	// Time when the audit finished (0 if ongoing)
	EndTime time.Time
}

// InsertAttempt inserts a new Attempt into the database.  Upon successful
// return, the Attempt has a new unique ID.
func (conn *Connection) InsertAttempt(a *Attempt) error {
	_, err := conn.engine.Insert(a) // ID is assigned on insertion
	return err
}

// UpdateAttempt updates an existing Attempt entry in the database.
func (conn *Connection) UpdateAttempt(a *Attempt) error {
	_, err := conn.engine.ID(a.ID).AllCols().Update(a)
	return err
}

// GetUserAttempts retrieves all the Attempts made for a given username.
func (conn *Connection) GetUserAttempts(username string) ([]Attempt, error) {
	attempts := make([]Attempt, 0)
	if err := conn.engine.Where("user_name = ?", username).Asc("id").Find(&attempts); err != nil {
		return nil, err
	}
	return attempts, nil
}

// IsFinished returns true if the Attempt has been audited (has an EndTime).
func (a *Attempt) IsFinished() bool {
	return !a.EndTime.IsZero()
}

// AllAttempts returns all Attempt entries in the database, newest first.
func (conn *Connection) AllAttempts() ([]Attempt, error) {
	attempts := make([]Attempt, 0)
	if err := conn.engine.Desc("id").Find(&attempts); err != nil {
		return nil, err
	}
	return attempts, nil
}

// GetAttempt retrieves an Attempt from the database given its ID.
func (conn *Connection) GetAttempt(id int64) (*Attempt, error) {
	a := new(Attempt)
	if has, err := conn.engine.ID(id).Get(a); err != nil {
		return nil, err
	} else if !has {
		return nil, ErrNotFound
	}
	return a, nil
}
