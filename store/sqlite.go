package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"aippt/slides"
)

const schema = `
CREATE TABLE IF NOT EXISTS slides (
	position INTEGER PRIMARY KEY,
	id       TEXT NOT NULL,
	type     TEXT NOT NULL DEFAULT '',
	payload  BLOB NOT NULL
);
`

// SQLiteDeck keeps every slide as a row, ordered by position.
type SQLiteDeck struct {
	conn *sqlite.Conn
}

// OpenSQLiteDeck opens or creates deck database.
func OpenSQLiteDeck(path string) (*SQLiteDeck, error) {
	conn, err := sqlite.OpenConn(path, sqlite.OpenReadWrite, sqlite.OpenCreate)
	if err != nil {
		return nil, fmt.Errorf("unable to open deck database %q: %w", path, err)
	}
	if err := sqlitex.ExecuteScript(conn, schema, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("unable to prepare deck database %q: %w", path, err)
	}
	return &SQLiteDeck{conn: conn}, nil
}

func (d *SQLiteDeck) Slides(ctx context.Context) ([]*slides.Slide, error) {
	d.conn.SetInterrupt(ctx.Done())
	defer d.conn.SetInterrupt(nil)

	var list []*slides.Slide
	err := sqlitex.Execute(d.conn, `SELECT payload FROM slides ORDER BY position`,
		&sqlitex.ExecOptions{ResultFunc: func(stmt *sqlite.Stmt) error {
			data, err := io.ReadAll(stmt.ColumnReader(0))
			if err != nil {
				return err
			}
			s := &slides.Slide{}
			if err := json.Unmarshal(data, s); err != nil {
				return fmt.Errorf("unable to decode slide: %w", err)
			}
			list = append(list, s)
			return nil
		}})
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (d *SQLiteDeck) Replace(ctx context.Context, list []*slides.Slide) (err error) {
	d.conn.SetInterrupt(ctx.Done())
	defer d.conn.SetInterrupt(nil)

	defer sqlitex.Save(d.conn)(&err)

	if err = sqlitex.Execute(d.conn, `DELETE FROM slides`, nil); err != nil {
		return err
	}
	return d.insert(0, list)
}

func (d *SQLiteDeck) Append(ctx context.Context, list []*slides.Slide) (err error) {
	d.conn.SetInterrupt(ctx.Done())
	defer d.conn.SetInterrupt(nil)

	defer sqlitex.Save(d.conn)(&err)

	var next int64
	err = sqlitex.Execute(d.conn, `SELECT COALESCE(MAX(position) + 1, 0) FROM slides`,
		&sqlitex.ExecOptions{ResultFunc: func(stmt *sqlite.Stmt) error {
			next = stmt.ColumnInt64(0)
			return nil
		}})
	if err != nil {
		return err
	}
	return d.insert(next, list)
}

func (d *SQLiteDeck) insert(first int64, list []*slides.Slide) error {
	for i, s := range list {
		payload, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("unable to encode slide %q: %w", s.ID, err)
		}
		err = sqlitex.Execute(d.conn, `INSERT INTO slides (position, id, type, payload) VALUES (?, ?, ?, ?)`,
			&sqlitex.ExecOptions{Args: []any{first + int64(i), s.ID, s.Type, payload}})
		if err != nil {
			return fmt.Errorf("unable to store slide %q: %w", s.ID, err)
		}
	}
	return nil
}

func (d *SQLiteDeck) Close() error {
	return d.conn.Close()
}
