// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface, using sqlx on top of database/sql.
//
// The default data source is ":memory:", so the registry still vanishes
// with the process; SQLite is only doing the bookkeeping. Every
// ":memory:" connection is its own private database, which is why the
// pool is pinned to exactly one connection: all statements see the same
// tables, and SQLite itself serialises every registry access.
//
// The blank import below registers the sqlite3 driver with database/sql.
package sqlite

import (
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/aanand-mishra/text-students-api/internal/config"
	"github.com/aanand-mishra/text-students-api/internal/types"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
type SQLite struct {
	Db *sqlx.DB
}

// studentRow mirrors one row of the students table. Skills are stored
// as a JSON array in a TEXT column because SQLite has no array type.
type studentRow struct {
	ID      int64  `db:"id"`
	Name    string `db:"name"`
	Dob     string `db:"dob"`
	Country string `db:"country"`
	City    string `db:"city"`
	Skills  string `db:"skills"`
	Bio     string `db:"bio"`
}

// New opens the SQLite database at cfg.StoragePath, creates the
// students table if it does not already exist, and returns a
// ready-to-use *SQLite.
func New(cfg *config.Config) (*SQLite, error) {
	db, err := sqlx.Open("sqlite3", cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// Pin the pool before the first connection is made.
	db.SetMaxOpenConns(1)

	// Ping forces that first connection, so a bad path fails at startup.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: ping: %w", err)
	}

	// Schema:
	//   id     — insertion order; never exposed over the API
	//   skills — JSON-encoded []string
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS students (
			id      INTEGER PRIMARY KEY AUTOINCREMENT,
			name    TEXT NOT NULL,
			dob     TEXT NOT NULL,
			country TEXT NOT NULL,
			city    TEXT NOT NULL,
			skills  TEXT NOT NULL,
			bio     TEXT NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// Close releases the underlying connection. With ":memory:" this also
// discards every stored student.
func (s *SQLite) Close() error {
	return s.Db.Close()
}

// AddStudent inserts a row and returns the whole table, both inside one
// transaction so the returned list always ends with this student.
func (s *SQLite) AddStudent(student types.Student) ([]types.Student, error) {
	skills, err := encodeSkills(student.Skills)
	if err != nil {
		return nil, fmt.Errorf("AddStudent: encode skills: %w", err)
	}

	tx, err := s.Db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("AddStudent: begin: %w", err)
	}
	// Rollback after a successful Commit is a no-op.
	defer tx.Rollback()

	// Named parameters (:name) are bound by sqlx from the struct's db tags.
	_, err = tx.NamedExec(
		`INSERT INTO students (name, dob, country, city, skills, bio)
		 VALUES (:name, :dob, :country, :city, :skills, :bio)`,
		studentRow{
			Name:    student.Name,
			Dob:     student.Dob,
			Country: student.Country,
			City:    student.City,
			Skills:  skills,
			Bio:     student.Bio,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("AddStudent: insert: %w", err)
	}

	students, err := selectStudents(tx)
	if err != nil {
		return nil, fmt.Errorf("AddStudent: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("AddStudent: commit: %w", err)
	}

	return students, nil
}

// GetStudents returns all rows ordered by insertion.
func (s *SQLite) GetStudents() ([]types.Student, error) {
	students, err := selectStudents(s.Db)
	if err != nil {
		return nil, fmt.Errorf("GetStudents: %w", err)
	}
	return students, nil
}

// selectStudents runs against either the pool or an open transaction.
func selectStudents(q sqlx.Queryer) ([]types.Student, error) {
	var rows []studentRow
	if err := sqlx.Select(q, &rows,
		"SELECT id, name, dob, country, city, skills, bio FROM students ORDER BY id",
	); err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}

	students := make([]types.Student, 0, len(rows))
	for _, row := range rows {
		var skills []string
		if err := json.Unmarshal([]byte(row.Skills), &skills); err != nil {
			return nil, fmt.Errorf("decode skills of row %d: %w", row.ID, err)
		}
		if skills == nil {
			skills = make([]string, 0)
		}

		students = append(students, types.Student{
			Name:    row.Name,
			Dob:     row.Dob,
			Country: row.Country,
			City:    row.City,
			Skills:  skills,
			Bio:     row.Bio,
		})
	}

	return students, nil
}

func encodeSkills(skills []string) (string, error) {
	if skills == nil {
		skills = make([]string, 0)
	}
	b, err := json.Marshal(skills)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
