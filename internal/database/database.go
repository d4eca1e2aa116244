package database

import (
	"database/sql"
	"embed"
	"fmt"
	"strconv"
	"strings"

	"user-directory-service/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var EmbedMigrations embed.FS

// Dialect определяет SQL-диалект хранилища.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

func NewPostgresDB(cfg config.Config, logger goose.Logger) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
	)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	if err = MigrateDB(db, DialectPostgres, logger); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// NewSQLiteDB открывает базу SQLite по пути path (":memory:" для базы в памяти).
func NewSQLiteDB(path string, logger goose.Logger) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// База в памяти живёт внутри одного соединения
	db.SetMaxOpenConns(1)

	if err = MigrateDB(db, DialectSQLite, logger); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func MigrateDB(db *sql.DB, dialect Dialect, logger goose.Logger) error {
	goose.SetBaseFS(EmbedMigrations)
	if logger != nil {
		goose.SetLogger(logger)
	}

	gooseDialect := string(dialect)
	if dialect == DialectSQLite {
		gooseDialect = "sqlite3"
	}

	if err := goose.SetDialect(gooseDialect); err != nil {
		return err
	}

	if err := goose.Up(db, "migrations/"+string(dialect)); err != nil {
		return fmt.Errorf("failed to apply %s migrations: %w", dialect, err)
	}

	return nil
}

// Rebind заменяет плейсхолдеры "?" на "$n" для PostgreSQL.
func Rebind(dialect Dialect, query string) string {
	if dialect != DialectPostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
