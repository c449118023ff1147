// Package sqlite serves a PBR session stored in a SQLite database.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/harun/pbrctl/pkg/pbr"
	"github.com/harun/pbrctl/pkg/source/memory"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

const schema = `
	CREATE TABLE IF NOT EXISTS session (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		buffer BLOB
	);

	CREATE TABLE IF NOT EXISTS tags (
		idx INTEGER PRIMARY KEY,
		signature INTEGER NOT NULL,
		name TEXT,
		description TEXT
	);

	CREATE TABLE IF NOT EXISTS partitions (
		tag_idx INTEGER NOT NULL,
		seq INTEGER NOT NULL,
		signature INTEGER NOT NULL,
		current_offset INTEGER NOT NULL,
		PRIMARY KEY (tag_idx, seq),
		FOREIGN KEY (tag_idx) REFERENCES tags(idx) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS playback (
		signature INTEGER PRIMARY KEY,
		total_items INTEGER NOT NULL,
		total_size INTEGER NOT NULL,
		current_offset INTEGER NOT NULL
	);
`

// Backend reads a session from SQLite
type Backend struct {
	db     *sql.DB
	logger zerolog.Logger
}

// Open opens an existing session database read-only
func Open(path string, logger zerolog.Logger) (*Backend, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: session database %s", pbr.ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: failed to stat session database: %v", pbr.ErrAborted, err)
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %v", pbr.ErrAborted, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: failed to open database: %v", pbr.ErrAborted, err)
	}

	b := &Backend{
		db:     db,
		logger: logger.With().Str("component", "sqlite-backend").Logger(),
	}
	b.logger.Debug().Str("path", path).Msg("Session database opened")
	return b, nil
}

// Close closes the database
func (b *Backend) Close() error {
	return b.db.Close()
}

// GetSessionBuffer implements pbr.Backend
func (b *Backend) GetSessionBuffer() ([]byte, error) {
	var buf []byte
	err := b.db.QueryRow(`SELECT buffer FROM session WHERE id = 1`).Scan(&buf)
	if err != nil {
		return nil, queryError("session buffer", err)
	}
	if buf == nil {
		return nil, fmt.Errorf("%w: no session buffer", pbr.ErrNotFound)
	}
	return buf, nil
}

// GetTagCount implements pbr.Backend
func (b *Backend) GetTagCount() (int, error) {
	var count int
	if err := b.db.QueryRow(`SELECT COUNT(*) FROM tags`).Scan(&count); err != nil {
		return 0, queryError("tag count", err)
	}
	return count, nil
}

// GetTag implements pbr.Backend
func (b *Backend) GetTag(index int) (pbr.Tag, error) {
	var (
		sig         int64
		name        sql.NullString
		description sql.NullString
	)
	err := b.db.QueryRow(
		`SELECT signature, name, description FROM tags WHERE idx = ?`, index,
	).Scan(&sig, &name, &description)
	if err != nil {
		return pbr.Tag{}, queryError(fmt.Sprintf("tag %d", index), err)
	}

	tag := pbr.Tag{
		Signature:   pbr.Signature(uint32(sig)),
		Name:        name.String,
		Description: description.String,
	}

	rows, err := b.db.Query(
		`SELECT signature, current_offset FROM partitions WHERE tag_idx = ? ORDER BY seq`, index,
	)
	if err != nil {
		return pbr.Tag{}, queryError(fmt.Sprintf("tag %d partitions", index), err)
	}
	defer rows.Close()

	for rows.Next() {
		var psig, offset int64
		if err := rows.Scan(&psig, &offset); err != nil {
			return pbr.Tag{}, queryError(fmt.Sprintf("tag %d partitions", index), err)
		}
		tag.Partitions = append(tag.Partitions, pbr.PartitionInfo{
			Signature:     pbr.Signature(uint32(psig)),
			CurrentOffset: uint32(offset),
		})
	}
	if err := rows.Err(); err != nil {
		return pbr.Tag{}, queryError(fmt.Sprintf("tag %d partitions", index), err)
	}

	return tag, nil
}

// GetPlaybackInfo implements pbr.Backend
func (b *Backend) GetPlaybackInfo(dataClass pbr.Signature) (pbr.PlaybackInfo, error) {
	var items, size, offset int64
	err := b.db.QueryRow(
		`SELECT total_items, total_size, current_offset FROM playback WHERE signature = ?`,
		int64(dataClass),
	).Scan(&items, &size, &offset)
	if err != nil {
		return pbr.PlaybackInfo{}, queryError(fmt.Sprintf("playback info %s", dataClass), err)
	}
	return pbr.PlaybackInfo{
		TotalItems:    uint32(items),
		TotalSize:     uint32(size),
		CurrentOffset: uint32(offset),
	}, nil
}

// Save writes session into a new database at path, replacing any existing file
func Save(path string, session memory.Session, logger zerolog.Logger) error {
	if err := session.Validate(); err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to replace database: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=1")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if session.Buffer != nil {
		if _, err := tx.Exec(`INSERT INTO session (id, buffer) VALUES (1, ?)`, session.Buffer); err != nil {
			return fmt.Errorf("failed to insert session buffer: %w", err)
		}
	}

	for i, tag := range session.Tags {
		_, err := tx.Exec(
			`INSERT INTO tags (idx, signature, name, description) VALUES (?, ?, ?, ?)`,
			i, int64(tag.Signature), nullString(tag.Name), nullString(tag.Description),
		)
		if err != nil {
			return fmt.Errorf("failed to insert tag %d: %w", i, err)
		}
		for seq, p := range tag.Partitions {
			_, err := tx.Exec(
				`INSERT INTO partitions (tag_idx, seq, signature, current_offset) VALUES (?, ?, ?, ?)`,
				i, seq, int64(p.Signature), int64(p.CurrentOffset),
			)
			if err != nil {
				return fmt.Errorf("failed to insert tag %d partition %d: %w", i, seq, err)
			}
		}
	}

	for sig, info := range session.Playback {
		_, err := tx.Exec(
			`INSERT INTO playback (signature, total_items, total_size, current_offset) VALUES (?, ?, ?, ?)`,
			int64(sig), int64(info.TotalItems), int64(info.TotalSize), int64(info.CurrentOffset),
		)
		if err != nil {
			return fmt.Errorf("failed to insert playback info %s: %w", sig, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session: %w", err)
	}

	logger.Info().
		Str("path", path).
		Int("tags", len(session.Tags)).
		Msg("Session database written")
	return nil
}

func queryError(what string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", pbr.ErrNotFound, what)
	}
	return fmt.Errorf("%w: query %s: %v", pbr.ErrAborted, what, err)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
