package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"user-directory-service/internal/database"
	"user-directory-service/internal/domain"
)

const userColumns = "id, email, first_name, last_name, birth_date, address, phone_number"

const dateLayout = "2006-01-02"

// UserRepository реализует хранение пользователей в SQL базе (PostgreSQL или SQLite).
// Порядок вставки совпадает с порядком ID.
type UserRepository struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewUserRepository создает новый экземпляр UserRepository.
func NewUserRepository(db *sql.DB, dialect database.Dialect) domain.UserRepository {
	return &UserRepository{
		db:      db,
		dialect: dialect,
	}
}

// List возвращает всех пользователей в порядке добавления.
func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// Create сохраняет пользователя; ID выдаёт база.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := r.rebind(`INSERT INTO users (email, first_name, last_name, birth_date, address, phone_number)
		VALUES (?, ?, ?, ?, ?, ?) RETURNING id`)

	stored := user.Clone()
	stored.BirthDate = domain.DateOf(user.BirthDate)

	err := r.db.QueryRowContext(ctx, query,
		stored.Email, stored.FirstName, stored.LastName, r.dateArg(stored.BirthDate), stored.Address, stored.PhoneNumber,
	).Scan(&stored.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return stored, nil
}

// Update перезаписывает все поля пользователя, кроме ID.
func (r *UserRepository) Update(ctx context.Context, userID int64, user *domain.User) (*domain.User, error) {
	query := r.rebind(`UPDATE users
		SET email = ?, first_name = ?, last_name = ?, birth_date = ?, address = ?, phone_number = ?
		WHERE id = ? RETURNING ` + userColumns)

	row := r.db.QueryRowContext(ctx, query,
		user.Email, user.FirstName, user.LastName, r.dateArg(user.BirthDate), user.Address, user.PhoneNumber,
		userID,
	)

	updated, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return updated, nil
}

// Delete удаляет пользователя по ID.
func (r *UserRepository) Delete(ctx context.Context, userID int64) error {
	res, err := r.db.ExecContext(ctx, r.rebind("DELETE FROM users WHERE id = ?"), userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

// ListByBirthDateBetween возвращает пользователей с датой рождения строго между from и to.
func (r *UserRepository) ListByBirthDateBetween(ctx context.Context, from, to time.Time) ([]*domain.User, error) {
	query := r.rebind("SELECT " + userColumns + " FROM users WHERE birth_date > ? AND birth_date < ? ORDER BY id")

	rows, err := r.db.QueryContext(ctx, query, r.dateArg(from), r.dateArg(to))
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func (r *UserRepository) rebind(query string) string {
	return database.Rebind(r.dialect, query)
}

// dateArg готовит дату для запроса: PostgreSQL получает DATE, SQLite строку
// "YYYY-MM-DD", которая корректно сравнивается лексикографически.
func (r *UserRepository) dateArg(t time.Time) any {
	date := domain.DateOf(t)
	if r.dialect == database.DialectPostgres {
		return date
	}
	return date.Format(dateLayout)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		user      domain.User
		birthDate sqlDate
	)
	if err := row.Scan(
		&user.ID, &user.Email, &user.FirstName, &user.LastName,
		&birthDate, &user.Address, &user.PhoneNumber,
	); err != nil {
		return nil, err
	}
	user.BirthDate = time.Time(birthDate)
	return &user, nil
}

func scanUsers(rows *sql.Rows) ([]*domain.User, error) {
	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}

// sqlDate читает birth_date из DATE (PostgreSQL) или TEXT (SQLite).
type sqlDate time.Time

func (d *sqlDate) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = sqlDate(domain.DateOf(v))
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	default:
		return fmt.Errorf("unsupported birth_date type %T", src)
	}
}

func (d *sqlDate) parse(s string) error {
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid birth_date %q: %w", s, err)
	}
	*d = sqlDate(t)
	return nil
}
