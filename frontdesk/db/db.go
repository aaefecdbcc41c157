package db

import (
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"xorm.io/xorm"
	"xorm.io/xorm/log"
	"xorm.io/xorm/names"
)

type Connection struct {
	engine *xorm.Engine
}

// Close the database.
func (conn *Connection) Close() error {
	return conn.engine.Close()
}

// New returns a database connection for the sqlite db file at the given path.
// If it does not exist it is created.
func New(path string) (*Connection, error) {
	db, err := xorm.NewEngine("sqlite3", path)
	if err != nil {
		return nil, err
	}
	db.Logger().SetLevel(log.LOG_WARNING)
	db.SetMapper(names.GonicMapper{})

	if err := db.Sync2(new(Session), new(Role), new(Account), new(Hotel), new(Attempt)); err != nil {
		return nil, err
	}
	return &Connection{db}, nil
}

// IsEmpty reports whether no accounts have been created yet.
func (conn *Connection) IsEmpty() (bool, error) {
	n, err := conn.engine.Count(new(Account))
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// Seed fills an empty database with the default roles, accounts and hotels.
// Existing rows are left alone.
func (conn *Connection) Seed() error {
	empty, err := conn.IsEmpty()
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	roles := []Role{
		{ID: 1, Name: "Admin", Description: "Full system access"},
		{ID: 2, Name: "Manager", Description: "Manage hotels and bookings"},
	}
	for idx := range roles {
		if _, err := conn.engine.Insert(&roles[idx]); err != nil {
			return fmt.Errorf("seeding role %q: %w", roles[idx].Name, err)
		}
	}

	accounts := []struct {
		username, password string
		role               int64
	}{
		{"alice123", "pass1", 1},
		{"bob123", "pass2", 2},
	}
	for _, a := range accounts {
		if _, err := conn.CreateAccount(a.username, a.password, a.role); err != nil {
			return fmt.Errorf("seeding account %q: %w", a.username, err)
		}
	}

	hotels := []Hotel{
		{Name: "Hotel A", Type: "5-Star", Description: "Luxury hotel", Rent: 5000, ManagerID: 1},
		{Name: "Hotel B", Type: "4-Star", Description: "Comfortable stay", Rent: 4000, ManagerID: 2},
	}
	for idx := range hotels {
		if err := conn.InsertHotel(&hotels[idx]); err != nil {
			return fmt.Errorf("seeding hotel %q: %w", hotels[idx].Name, err)
		}
	}
	return nil
}
