// Package store owns the persistence of friends. It translates the domain
// operations into parameterized SQL against the backing MySQL database.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"friends-service/internal/model"
)

// ErrNotFound reports that no friend with the requested id exists.
var ErrNotFound = errors.New("friend not found")

// Store is a handle to the friends table. It is constructed once at startup
// and passed to the service by reference.
type Store struct {
	db *sqlx.DB

	// Prepared statements offer a significant speed increase if executed
	// many times.
	insert        *sqlx.NamedStmt
	selectAll     *sqlx.Stmt
	selectWhereId *sqlx.Stmt
	update        *sqlx.Stmt
	deleteWhereId *sqlx.Stmt
}

// OpenDatabase initializes and returns a database connection. The connection
// parameters are taken from the system's environment variables.
func OpenDatabase() *sql.DB {
	dsn := fmt.Sprintf("%s:%s@tcp(%s)/test?parseTime=true",
		os.Getenv("DBUSER"), os.Getenv("DBPWD"), os.Getenv("DBHOST"))
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatal(err)
	}
	return sqlDB
}

// New wraps the specified sql database and prepares all statements. The
// database argument can be a real database for production use or a mock
// database within unit tests.
func New(sqlDB *sql.DB) (*Store, error) {
	s := &Store{db: sqlx.NewDb(sqlDB, "mysql")}
	var err error
	s.insert, err = s.db.PrepareNamed(`
		INSERT INTO friends (name, email, phone, notes, created_at, updated_at)
		VALUES (:name, :email, :phone, :notes, :created_at, :updated_at)
	`)
	if err != nil {
		return nil, err
	}
	s.selectAll, err = s.db.Preparex(`
		SELECT * FROM friends ORDER BY id DESC
	`)
	if err != nil {
		return nil, err
	}
	s.selectWhereId, err = s.db.Preparex(`
		SELECT * FROM friends WHERE id = ?
	`)
	if err != nil {
		return nil, err
	}
	s.update, err = s.db.Preparex(`
		UPDATE friends SET name = ?, email = ?, phone = ?, notes = ?, updated_at = ? WHERE id = ?
	`)
	if err != nil {
		return nil, err
	}
	s.deleteWhereId, err = s.db.Preparex(`
		DELETE FROM friends WHERE id = ?
	`)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Close releases the database connection and all prepared statements.
func (s *Store) Close() error {
	return s.db.Close()
}

// now returns the current time in the precision of the DATETIME columns, so
// that a record returned right after a write equals the record read back
// later.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// ListAll returns all friends, most recently created first. An empty table
// yields an empty slice, not an error.
func (s *Store) ListAll() ([]model.Friend, error) {
	friends := []model.Friend{}
	if err := s.selectAll.Select(&friends); err != nil {
		return nil, err
	}
	return friends, nil
}

// GetByID returns the friend with the given id, or ErrNotFound if no such
// row exists.
func (s *Store) GetByID(id int64) (model.Friend, error) {
	var friends []model.Friend
	if err := s.selectWhereId.Select(&friends, id); err != nil {
		return model.Friend{}, err
	}
	if len(friends) == 0 {
		return model.Friend{}, ErrNotFound
	}
	return friends[0], nil
}

// Create inserts a new friend with the validated fields, assigns the id and
// both timestamps, and returns the full materialized record.
func (s *Store) Create(f model.FriendFields) (model.Friend, error) {
	ts := now()
	friend := model.Friend{
		Name:      f.Name,
		Email:     f.Email,
		Phone:     f.Phone,
		Notes:     f.Notes,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	result, err := s.insert.Exec(&friend)
	if err != nil {
		return model.Friend{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return model.Friend{}, err
	}
	friend.Id = id
	return friend, nil
}

// Update overwrites name, email, phone and notes of the friend with the
// given id, refreshes updated_at, and returns the full record after the
// update. If the row vanished between the caller's existence check and the
// write, the update affects zero rows and ErrNotFound is returned.
func (s *Store) Update(id int64, f model.FriendFields) (model.Friend, error) {
	result, err := s.update.Exec(f.Name, f.Email, f.Phone, f.Notes, now(), id)
	if err != nil {
		return model.Friend{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return model.Friend{}, err
	}
	if rowsAffected == 0 {
		return model.Friend{}, ErrNotFound
	}
	return s.GetByID(id)
}

// Remove deletes the friend with the given id. The success indicator is
// independent of whether a row existed, so a repeated Remove for the same
// id reports success again.
func (s *Store) Remove(id int64) (bool, error) {
	if _, err := s.deleteWhereId.Exec(id); err != nil {
		return false, err
	}
	return true, nil
}
