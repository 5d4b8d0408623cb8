package store

import (
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"

	"github.com/DaanHessen/smallheath/internal/util"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrator handles DB schema migrations using golang-migrate.
type Migrator struct {
	dsn string
}

func NewMigrator(dsn string) (*Migrator, error) {
	driver, addr, err := util.SplitDSN(dsn)
	if err != nil {
		return nil, err
	}
	if driver == "sqlite3" {
		if err := ensureDir(addr); err != nil {
			return nil, err
		}
	}
	return &Migrator{dsn: dsn}, nil
}

func (m *Migrator) Up(ctx context.Context) error {
	mig, closer, err := m.migrateInstance()
	if err != nil {
		return err
	}
	defer closer()
	return translate(mig.Up())
}

func (m *Migrator) Down(ctx context.Context) error {
	mig, closer, err := m.migrateInstance()
	if err != nil {
		return err
	}
	defer closer()
	return translate(mig.Steps(-1))
}

func (m *Migrator) migrateInstance() (*migrate.Migrate, func(), error) {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, func() {}, errors.Wrap(err, "open embedded migrations")
	}
	mig, err := migrate.NewWithSourceInstance("iofs", src, m.dsn)
	if err != nil {
		return nil, func() {}, errors.Wrap(err, "init migrate")
	}
	return mig, func() { mig.Close() }, nil
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, migrate.ErrNoChange) {
		return ErrNoChange
	}
	return errors.Wrap(err, "migrate")
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	return nil
}
