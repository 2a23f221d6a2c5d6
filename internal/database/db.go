// Package database opens the SQLite store and provides transaction and maintenance helpers.
package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

//go:embed schemas/*.sql
var schemaFS embed.FS

const schemaFile = "schemas/mgnrega_schema.sql"

// DatabaseProfile selects the PRAGMA set and pool size for a database
type DatabaseProfile string

const (
	// ProfileCache trades durability for speed (tests, throwaway stores)
	ProfileCache DatabaseProfile = "cache"
	// ProfileStandard is the durable serving profile
	ProfileStandard DatabaseProfile = "standard"
)

type profileSettings struct {
	pragmas  []string
	maxOpen  int
	maxIdle  int
	lifetime time.Duration
}

var profiles = map[DatabaseProfile]profileSettings{
	ProfileCache: {
		pragmas:  []string{"synchronous(OFF)", "temp_store(MEMORY)"},
		maxOpen:  10,
		maxIdle:  2,
		lifetime: time.Hour,
	},
	ProfileStandard: {
		pragmas:  []string{"synchronous(NORMAL)", "auto_vacuum(INCREMENTAL)", "temp_store(MEMORY)"},
		maxOpen:  25,
		maxIdle:  5,
		lifetime: 24 * time.Hour,
	},
}

// Shared by every profile. busy_timeout makes writers wait on SQLITE_BUSY.
var commonPragmas = []string{
	"journal_mode(WAL)",
	"busy_timeout(5000)",
	"wal_autocheckpoint(1000)",
	"cache_size(-16000)", // 16MB
}

// DB is an open SQLite database
type DB struct {
	conn    *sql.DB
	path    string
	profile DatabaseProfile
	name    string
}

// Config holds database configuration
type Config struct {
	Path    string
	Profile DatabaseProfile // defaults to ProfileStandard
	Name    string          // used in errors and logs
}

// New opens the database at cfg.Path, creating parent directories as needed
func New(cfg Config) (*DB, error) {
	if cfg.Profile == "" {
		cfg.Profile = ProfileStandard
	}
	settings, ok := profiles[cfg.Profile]
	if !ok {
		return nil, fmt.Errorf("unknown database profile %q", cfg.Profile)
	}

	// file: URIs are passed through untouched
	if !strings.HasPrefix(cfg.Path, "file:") {
		absPath, err := filepath.Abs(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve database path: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		cfg.Path = absPath
	}

	conn, err := sql.Open("sqlite", dsn(cfg.Path, settings))
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.Name, err)
	}
	conn.SetMaxOpenConns(settings.maxOpen)
	conn.SetMaxIdleConns(settings.maxIdle)
	conn.SetConnMaxLifetime(settings.lifetime)
	conn.SetConnMaxIdleTime(30 * time.Minute)

	db := &DB{conn: conn, path: cfg.Path, profile: cfg.Profile, name: cfg.Name}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

// dsn appends the profile PRAGMAs as _pragma query parameters
func dsn(path string, settings profileSettings) string {
	var b strings.Builder
	b.WriteString(path)
	sep := "?"
	for _, p := range append(append([]string{}, commonPragmas...), settings.pragmas...) {
		b.WriteString(sep)
		b.WriteString("_pragma=")
		b.WriteString(p)
		sep = "&"
	}
	return b.String()
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// Conn returns the underlying pool for repositories
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Name returns the database name
func (db *DB) Name() string {
	return db.name
}

// Path returns the database file path
func (db *DB) Path() string {
	return db.path
}

// Profile returns the profile the database was opened with
func (db *DB) Profile() DatabaseProfile {
	return db.profile
}

// Migrate applies the embedded schema. Statements use IF NOT EXISTS, so it runs on every start.
func (db *DB) Migrate() error {
	content, err := schemaFS.ReadFile(schemaFile)
	if err != nil {
		return fmt.Errorf("failed to read schema for %s: %w", db.name, err)
	}

	return WithTransaction(context.Background(), db.conn, func(tx *sql.Tx) error {
		if _, err := tx.Exec(string(content)); err != nil {
			return fmt.Errorf("failed to apply schema for %s: %w", db.name, err)
		}
		return nil
	})
}

// WithTransaction runs fn inside a transaction bound to ctx.
// The transaction commits when fn returns nil and rolls back on an error or a panic.
func WithTransaction(ctx context.Context, conn *sql.DB, fn func(*sql.Tx) error) (err error) {
	if conn == nil {
		return fmt.Errorf("database connection is nil")
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			err = fmt.Errorf("panic in transaction: %v", p)
			return
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("transaction failed: %w (rollback: %v)", err, rbErr)
				return
			}
			err = fmt.Errorf("transaction failed: %w", err)
			return
		}
		if cErr := tx.Commit(); cErr != nil {
			err = fmt.Errorf("failed to commit transaction: %w", cErr)
		}
	}()

	return fn(tx)
}

// Ping checks that the database answers
func (db *DB) Ping(ctx context.Context) error {
	if err := db.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("ping failed for %s: %w", db.name, err)
	}
	return nil
}

// HealthCheck pings and then runs PRAGMA quick_check
func (db *DB) HealthCheck(ctx context.Context) error {
	if err := db.Ping(ctx); err != nil {
		return err
	}

	var result string
	if err := db.conn.QueryRowContext(ctx, "PRAGMA quick_check").Scan(&result); err != nil {
		return fmt.Errorf("quick_check failed for %s: %w", db.name, err)
	}
	if result != "ok" {
		return fmt.Errorf("%s is corrupt: %s", db.name, result)
	}
	return nil
}

// WALStatus is the result row of PRAGMA wal_checkpoint
type WALStatus struct {
	Busy         int
	LogFrames    int
	Checkpointed int
}

// WALCheckpoint runs a WAL checkpoint. An empty mode means PASSIVE.
func (db *DB) WALCheckpoint(ctx context.Context, mode string) (*WALStatus, error) {
	switch mode {
	case "":
		mode = "PASSIVE"
	case "PASSIVE", "FULL", "RESTART", "TRUNCATE":
	default:
		return nil, fmt.Errorf("unknown WAL checkpoint mode %q", mode)
	}

	var st WALStatus
	query := "PRAGMA wal_checkpoint(" + mode + ")"
	if err := db.conn.QueryRowContext(ctx, query).Scan(&st.Busy, &st.LogFrames, &st.Checkpointed); err != nil {
		return nil, fmt.Errorf("WAL checkpoint failed for %s: %w", db.name, err)
	}
	return &st, nil
}

// Stats describes the database files and page usage
type Stats struct {
	SizeBytes     int64
	WALSizeBytes  int64
	PageCount     int64
	PageSize      int64
	FreelistCount int64
}

// GetStats reads file sizes and page counters
func (db *DB) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{
		SizeBytes:    fileSize(db.path),
		WALSizeBytes: fileSize(db.path + "-wal"),
	}

	const query = `SELECT p.page_count, s.page_size, f.freelist_count
		FROM pragma_page_count() AS p, pragma_page_size() AS s, pragma_freelist_count() AS f`
	if err := db.conn.QueryRowContext(ctx, query).Scan(&stats.PageCount, &stats.PageSize, &stats.FreelistCount); err != nil {
		return nil, fmt.Errorf("failed to read page stats for %s: %w", db.name, err)
	}

	return stats, nil
}

// fileSize returns 0 for files that do not exist
func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}
