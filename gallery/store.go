package gallery

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"img2pdf/misc"
)

// Store persists named ordered image lists (sessions) between program
// invocations, so a document could be built up, reordered and converted in
// separate runs. Item order in the store is authoritative.
type Store struct {
	conn *sqlite.Conn
}

const storeSchema = `
CREATE TABLE IF NOT EXISTS sessions (
	name    TEXT PRIMARY KEY,
	updated INTEGER NOT NULL
) WITHOUT ROWID;

CREATE TABLE IF NOT EXISTS items (
	session    TEXT    NOT NULL REFERENCES sessions(name) ON DELETE CASCADE,
	position   INTEGER NOT NULL,
	id         TEXT    NOT NULL,
	name       TEXT    NOT NULL,
	media_type TEXT    NOT NULL,
	data       BLOB    NOT NULL,
	PRIMARY KEY (session, position)
);
`

// DefaultStorePath returns session store location in the platform specific
// user configuration directory.
func DefaultStorePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("unable to determine user configuration directory: %w", err)
	}
	return filepath.Join(dir, misc.GetAppName(), "sessions.db"), nil
}

// OpenStore opens (creating as necessary) session store database at the
// given path, empty path selects the default location.
func OpenStore(path string) (*Store, error) {
	var err error
	if len(path) == 0 {
		if path, err = DefaultStorePath(); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("unable to create session store directory: %w", err)
	}

	conn, err := sqlite.OpenConn(path, sqlite.OpenReadWrite, sqlite.OpenCreate)
	if err != nil {
		return nil, fmt.Errorf("unable to open session store: %w", err)
	}
	if err := sqlitex.ExecuteTransient(conn, "PRAGMA foreign_keys = ON;", nil); err != nil {
		conn.Close()
		return nil, err
	}
	if err := sqlitex.ExecuteScript(conn, storeSchema, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("unable to prepare session store schema: %w", err)
	}
	return &Store{conn: conn}, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Save replaces session content with the given items preserving their order.
func (s *Store) Save(session string, items []*Item) (err error) {
	defer sqlitex.Save(s.conn)(&err)

	if err := sqlitex.Execute(s.conn, `DELETE FROM items WHERE session = ?`,
		&sqlitex.ExecOptions{Args: []any{session}}); err != nil {
		return err
	}
	if err := sqlitex.Execute(s.conn, `INSERT INTO sessions (name, updated) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET updated = excluded.updated`,
		&sqlitex.ExecOptions{Args: []any{session, time.Now().Unix()}}); err != nil {
		return err
	}

	for pos, item := range items {
		if err := sqlitex.Execute(s.conn, `INSERT INTO items (session, position, id, name, media_type, data)
			VALUES (?, ?, ?, ?, ?, ?)`,
			&sqlitex.ExecOptions{Args: []any{session, pos, item.ID, item.Name, item.MediaType, item.Data}}); err != nil {
			return err
		}
	}
	return nil
}

// Load appends all items of the named session to the list in stored order.
func (s *Store) Load(session string, list *List) error {
	found := false
	err := sqlitex.Execute(s.conn, `SELECT name FROM sessions WHERE name = ?`,
		&sqlitex.ExecOptions{
			Args: []any{session},
			ResultFunc: func(*sqlite.Stmt) error {
				found = true
				return nil
			},
		})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("session %q does not exist", session)
	}

	return sqlitex.Execute(s.conn, `SELECT id, name, media_type, data FROM items
		WHERE session = ? ORDER BY position`,
		&sqlitex.ExecOptions{
			Args: []any{session},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				data, err := io.ReadAll(stmt.ColumnReader(3))
				if err != nil {
					return err
				}
				return list.AddItem(&Item{
					ID:        stmt.ColumnText(0),
					Name:      stmt.ColumnText(1),
					MediaType: stmt.ColumnText(2),
					Data:      data,
				})
			},
		})
}

// Delete drops the named session with all its items.
func (s *Store) Delete(session string) (err error) {
	defer sqlitex.Save(s.conn)(&err)

	if err := sqlitex.Execute(s.conn, `DELETE FROM items WHERE session = ?`,
		&sqlitex.ExecOptions{Args: []any{session}}); err != nil {
		return err
	}
	return sqlitex.Execute(s.conn, `DELETE FROM sessions WHERE name = ?`,
		&sqlitex.ExecOptions{Args: []any{session}})
}

// Sessions lists stored session names, most recently updated first.
func (s *Store) Sessions() ([]string, error) {
	var names []string
	err := sqlitex.Execute(s.conn, `SELECT name FROM sessions ORDER BY updated DESC, name`,
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				names = append(names, stmt.ColumnText(0))
				return nil
			},
		})
	return names, err
}
