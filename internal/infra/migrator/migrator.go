package migrator

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

var (
	// ErrSetDialect возвращается, если goose не принял диалект
	ErrSetDialect = errors.New("migrator: failed to set dialect")

	// ErrApply возвращается при ошибке применения миграций
	ErrApply = errors.New("migrator: failed to apply migrations")

	// ErrVersion возвращается, если не удалось прочитать версию схемы
	ErrVersion = errors.New("migrator: failed to get version")
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Migrator обёртка над goose, применяющая встроенные миграции
type Migrator struct {
	db     *sql.DB
	logger Logger
}

// New создаёт мигратор поверх встроенной файловой системы с миграциями
func New(db *sql.DB, migrations fs.FS, logger Logger) (*Migrator, error) {
	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSetDialect, err)
	}

	return &Migrator{db: db, logger: logger}, nil
}

// Up применяет все ещё не применённые миграции
func (m *Migrator) Up(ctx context.Context) error {
	before, err := m.Version(ctx)
	if err != nil {
		return err
	}

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return fmt.Errorf("%w: %v", ErrApply, err)
	}

	after, err := m.Version(ctx)
	if err != nil {
		return err
	}

	if after == before {
		m.logger.Info("Migrations: schema is up to date (version=%d)", after)
	} else {
		m.logger.Info("Migrations: applied, version %d -> %d", before, after)
	}
	return nil
}

// Version возвращает текущую версию схемы
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	version, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrVersion, err)
	}
	return version, nil
}
