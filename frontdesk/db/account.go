package db

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt cost used for new accounts.  Tests lower it.
var PasswordHashCost = bcrypt.DefaultCost

// Role groups permissions for accounts.
type Role struct {
	ID          int64  `xorm:"pk autoincr"`
	Name        string `xorm:"unique notnull"`
	Description string
}

// Account is a local login.
type Account struct {
	ID       int64  `xorm:"pk autoincr"`
	Username string `xorm:"unique notnull"`
	// bcrypt hash of the password
	PasswordHash string `xorm:"notnull"`
	RoleID       int64  `xorm:"notnull"`
}

// AccountRole is an Account together with the name of its Role.
type AccountRole struct {
	Account
	Role string
}

// CreateAccount hashes password and stores a new account with the given role.
func (conn *Connection) CreateAccount(username, password string, roleID int64) (*Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return nil, err
	}
	acc := &Account{Username: username, PasswordHash: string(hash), RoleID: roleID}
	if _, err := conn.engine.Insert(acc); err != nil {
		return nil, err
	}
	return acc, nil
}

// GetAccount retrieves an account and its role name by username.
func (conn *Connection) GetAccount(username string) (*AccountRole, error) {
	acc := new(Account)
	if has, err := conn.engine.Where("username = ?", username).Get(acc); err != nil {
		return nil, err
	} else if !has {
		return nil, ErrNotFound
	}
	role := new(Role)
	if has, err := conn.engine.ID(acc.RoleID).Get(role); err != nil {
		return nil, err
	} else if !has {
		return nil, ErrNotFound
	}
	return &AccountRole{Account: *acc, Role: role.Name}, nil
}

// Hotel is a property managed through the service.
type Hotel struct {
	ID          int64  `xorm:"pk autoincr"`
	Name        string `xorm:"notnull"`
	Type        string
	Description string
	Rent        float64
	ManagerID   int64
}

// InsertHotel stores a new Hotel.  Upon successful return, the Hotel has a
// new unique ID.
func (conn *Connection) InsertHotel(h *Hotel) error {
	_, err := conn.engine.Insert(h)
	return err
}

// AllHotels returns all hotels ordered by ID.
func (conn *Connection) AllHotels() ([]Hotel, error) {
	hotels := make([]Hotel, 0)
	if err := conn.engine.Asc("id").Find(&hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}
