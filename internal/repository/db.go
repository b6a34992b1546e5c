package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// record is one serialized collection row.
type record struct {
	Name      string `gorm:"primaryKey"`
	Data      []byte
	UpdatedAt time.Time
}

// NewDB opens a SQLite database and runs migrations.
func NewDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = "greenthumb.db"
	}

	if err := ensureDirForSQLite(dsn); err != nil {
		return nil, err
	}

	dbLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: dbLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	return db, nil
}

// ensureDirForSQLite creates parent dir for SQLite file if needed.
func ensureDirForSQLite(dsn string) error {
	// Ignore DSNs with explicit mode=memory or network.
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	// Strip file: prefix if present.
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}

// DBCollection keeps a collection as one JSON blob row in SQLite.
type DBCollection[T any] struct {
	mu   sync.Mutex
	db   *gorm.DB
	name string
	seed func() T
}

// NewDBCollection creates a database-backed collection stored under name.
func NewDBCollection[T any](db *gorm.DB, name string, seed func() T) *DBCollection[T] {
	return &DBCollection[T]{db: db, name: name, seed: seed}
}

func (c *DBCollection[T]) Load(ctx context.Context) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

func (c *DBCollection[T]) Save(ctx context.Context, value T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store(ctx, value)
}

func (c *DBCollection[T]) Update(ctx context.Context, fn func(T) (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, err := c.load(ctx)
	if err != nil {
		return value, err
	}
	next, err := fn(value)
	if err != nil {
		return next, err
	}
	if err := c.store(ctx, next); err != nil {
		return next, err
	}
	return next, nil
}

func (c *DBCollection[T]) load(ctx context.Context) (T, error) {
	var value T

	var rec record
	err := c.db.WithContext(ctx).First(&rec, "name = ?", c.name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		value = c.seed()
		if err := c.store(ctx, value); err != nil {
			return value, err
		}
		return value, nil
	}
	if err != nil {
		return value, fmt.Errorf("load %s: %w", c.name, err)
	}

	if err := json.Unmarshal(rec.Data, &value); err != nil {
		return value, fmt.Errorf("decode %s: %w", c.name, err)
	}
	return value, nil
}

func (c *DBCollection[T]) store(ctx context.Context, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}
	rec := record{Name: c.name, Data: data, UpdatedAt: time.Now()}
	err = c.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&rec).Error
	if err != nil {
		return fmt.Errorf("store %s: %w", c.name, err)
	}
	return nil
}
