package store

import (
	"context"
	"database/sql"
	errs "errors"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DaanHessen/smallheath/internal/util"
)

var ErrNoChange = errs.New("no change")

// KeyValue is the durable string-keyed, string-valued store every piece of
// persisted session state goes through.
type KeyValue interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// DB wraps gorm.DB for repositories and exposes Close.
type DB struct {
	gorm *gorm.DB
	sql  *sql.DB
}

func (d *DB) Close() error    { return d.sql.Close() }
func (d *DB) Gorm() *gorm.DB { return d.gorm }

// Open connects to the database named by cfg.DSN (postgres:// or sqlite3://).
func Open(ctx context.Context, cfg util.Config) (*DB, error) {
	driver, addr, err := util.SplitDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(addr)
	case "sqlite3":
		if err := ensureDir(addr); err != nil {
			return nil, err
		}
		dialector = sqlite.Open(addr)
	}
	gdb, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}
	sdb, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sdb.SetConnMaxLifetime(30 * time.Minute)
	if driver == "sqlite3" {
		// one writer; avoids SQLITE_BUSY between pooled connections
		sdb.SetMaxOpenConns(1)
	} else {
		sdb.SetMaxOpenConns(10)
		sdb.SetMaxIdleConns(5)
	}
	if err := sdb.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "ping database")
	}
	return &DB{gorm: gdb, sql: sdb}, nil
}

// KVRepo is the KeyValue backed by the kv table.
type KVRepo struct{ db *DB }

func NewKVRepo(db *DB) *KVRepo { return &KVRepo{db: db} }

func (r *KVRepo) Get(ctx context.Context, key string) (string, bool, error) {
	row := r.db.gorm.WithContext(ctx).Raw(`SELECT value FROM kv WHERE name = ?`, key).Row()
	var value string
	if err := row.Scan(&value); err != nil {
		if errs.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, "get %s", key)
	}
	return value, true, nil
}

func (r *KVRepo) Set(ctx context.Context, key, value string) error {
	err := r.db.gorm.WithContext(ctx).Exec(`INSERT INTO kv(name, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value, updated_at = CURRENT_TIMESTAMP`, key, value).Error
	return wrap(err, "set "+key)
}

func (r *KVRepo) Delete(ctx context.Context, key string) error {
	return wrap(r.db.gorm.WithContext(ctx).Exec(`DELETE FROM kv WHERE name = ?`, key).Error, "delete "+key)
}

// Keys lists every stored key in name order.
func (r *KVRepo) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	if err := r.db.gorm.WithContext(ctx).Raw(`SELECT name FROM kv ORDER BY name`).Scan(&keys).Error; err != nil {
		return nil, errors.Wrap(err, "list keys")
	}
	return keys, nil
}

// Helper error wrap
func wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}
