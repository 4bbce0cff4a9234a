/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	applog "cubemenu/internal/log"

	// Pure-Go SQLite driver (CGO-free)
	_ "modernc.org/sqlite"
)

// schemaVersion tracks the SQLite schema of the preference store.
// Bump on breaking schema changes and add migrations.
const schemaVersion = 1

const createStmt = `
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS groups (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	parent_id INTEGER REFERENCES groups(id) ON DELETE CASCADE,
	name      TEXT NOT NULL,
	pos       INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS vals (
	group_id INTEGER NOT NULL REFERENCES groups(id) ON DELETE CASCADE,
	kind     TEXT NOT NULL,
	name     TEXT NOT NULL,
	value    TEXT NOT NULL,
	PRIMARY KEY (group_id, kind, name)
);
CREATE INDEX IF NOT EXISTS idx_groups_parent ON groups(parent_id, pos);
`

// SQLiteStore persists the preference tree in a single SQLite file. The
// whole tree is held in memory and written through on every mutation;
// menu trees are tiny, so a full rewrite per save keeps the schema
// simple and the write transactional.
type SQLiteStore struct {
	db   *sql.DB
	mem  *MemStore
	mu   sync.Mutex
	log  *slog.Logger
	path string
}

// Open opens (or creates) the preference database at path, enables WAL
// mode, ensures the schema, and loads the tree.
func Open(path string) (*SQLiteStore, error) {
	l := applog.WithOperation(applog.WithComponent("prefs"), "open").With(
		slog.String("path", path),
	)
	if path == "" {
		return nil, errors.New("store path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&_pragma=busy_timeout(5000)", filepath.ToSlash(path))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		l.Error("sqlite open failed", slog.Any("err", err))
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		_ = db.Close()
		l.Error("enable WAL failed", slog.Any("err", err))
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if _, err := db.ExecContext(ctx, createStmt); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	if err := ensureSchemaVersion(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &SQLiteStore{db: db, mem: NewMemStore(), log: applog.WithComponent("prefs"), path: path}
	if err := s.load(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	// Install the write-through hook only after the initial load so the
	// load itself does not trigger saves.
	s.mem.onChange = s.persist
	return s, nil
}

// Root returns the tree root.
func (s *SQLiteStore) Root() Group { return s.mem.Root() }

// Close flushes the tree and closes the database.
func (s *SQLiteStore) Close() error {
	if err := s.save(); err != nil {
		_ = s.db.Close()
		return err
	}
	return s.db.Close()
}

func ensureSchemaVersion(ctx context.Context, db *sql.DB) error {
	var cur string
	err := db.QueryRowContext(ctx, "SELECT value FROM meta WHERE key='schema_version'").Scan(&cur)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = db.ExecContext(ctx,
			"INSERT INTO meta(key, value) VALUES('schema_version', ?)",
			strconv.Itoa(schemaVersion))
		if err != nil {
			return fmt.Errorf("write schema version: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	}
	if v, convErr := strconv.Atoi(cur); convErr != nil || v > schemaVersion {
		return fmt.Errorf("unsupported preference schema version %q", cur)
	}
	return nil
}

func (s *SQLiteStore) load(ctx context.Context) error {
	// Parents are always inserted before their children, so id order is
	// also a valid construction order and preserves sibling positions.
	rows, err := s.db.QueryContext(ctx, "SELECT id, parent_id, name FROM groups ORDER BY id")
	if err != nil {
		return fmt.Errorf("load groups: %w", err)
	}
	byID := map[int64]*group{}
	for rows.Next() {
		var (
			id     int64
			parent sql.NullInt64
			name   string
		)
		if err := rows.Scan(&id, &parent, &name); err != nil {
			_ = rows.Close()
			return fmt.Errorf("scan group: %w", err)
		}
		if !parent.Valid {
			byID[id] = s.mem.root
			continue
		}
		p, ok := byID[parent.Int64]
		if !ok {
			// Orphan row; skip rather than fail the whole load.
			continue
		}
		c := p.Group(name).(*group)
		byID[id] = c
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return fmt.Errorf("iterate groups: %w", err)
	}
	_ = rows.Close()

	vrows, err := s.db.QueryContext(ctx, "SELECT group_id, kind, name, value FROM vals")
	if err != nil {
		return fmt.Errorf("load values: %w", err)
	}
	defer func() { _ = vrows.Close() }()
	for vrows.Next() {
		var (
			gid               int64
			kind, name, value string
		)
		if err := vrows.Scan(&gid, &kind, &name, &value); err != nil {
			return fmt.Errorf("scan value: %w", err)
		}
		g, ok := byID[gid]
		if !ok {
			continue
		}
		switch kind {
		case "s":
			g.SetString(name, value)
		case "b":
			v, err := strconv.ParseBool(value)
			if err == nil {
				g.SetBool(name, v)
			}
		case "i":
			v, err := strconv.Atoi(value)
			if err == nil {
				g.SetInt(name, v)
			}
		case "u":
			v, err := strconv.ParseUint(value, 10, 32)
			if err == nil {
				g.SetUnsigned(name, uint32(v))
			}
		}
	}
	return vrows.Err()
}

func (s *SQLiteStore) persist() {
	if err := s.save(); err != nil {
		s.log.Error("preference save failed", slog.Any("err", err))
	}
}

func (s *SQLiteStore) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM vals"); err != nil {
		return fmt.Errorf("clear vals: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM groups"); err != nil {
		return fmt.Errorf("clear groups: %w", err)
	}
	if err := insertGroup(ctx, tx, s.mem.root, nil, 0); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

func insertGroup(ctx context.Context, tx *sql.Tx, g *group, parentID *int64, pos int) error {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO groups(parent_id, name, pos) VALUES(?, ?, ?)",
		parentID, g.name, pos)
	if err != nil {
		return fmt.Errorf("insert group %q: %w", g.name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("group id: %w", err)
	}
	ins := func(kind, name, value string) error {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO vals(group_id, kind, name, value) VALUES(?, ?, ?, ?)",
			id, kind, name, value)
		if err != nil {
			return fmt.Errorf("insert value %s/%s: %w", kind, name, err)
		}
		return nil
	}
	for k, v := range g.strings {
		if err := ins("s", k, v); err != nil {
			return err
		}
	}
	for k, v := range g.bools {
		if err := ins("b", k, strconv.FormatBool(v)); err != nil {
			return err
		}
	}
	for k, v := range g.ints {
		if err := ins("i", k, strconv.Itoa(v)); err != nil {
			return err
		}
	}
	for k, v := range g.uints {
		if err := ins("u", k, strconv.FormatUint(uint64(v), 10)); err != nil {
			return err
		}
	}
	for i, name := range g.order {
		if err := insertGroup(ctx, tx, g.children[name], &id, i); err != nil {
			return err
		}
	}
	return nil
}
