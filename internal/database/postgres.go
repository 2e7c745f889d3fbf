package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leadbook/leadbook/internal/config"
	"github.com/leadbook/leadbook/pkg/model"
	"github.com/leadbook/leadbook/pkg/util/sqlutil"
)

// PostgreSQL error codes classified at this boundary.
const (
	pgInvalidTextRepresentation = "22P02"
	pgForeignKeyViolation       = "23503"
	pgNotNullViolation          = "23502"
)

const userFields = "user_id, firstname, lastname, email, number, industry, message, created_at"

const createUsersTable = `
	CREATE TABLE IF NOT EXISTS users (
		user_id SERIAL PRIMARY KEY,
		firstname VARCHAR(255) NOT NULL,
		lastname VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		number VARCHAR(20),
		industry VARCHAR(255),
		message TEXT,
		created_at TIMESTAMP DEFAULT NOW()
	)`

// PostgresDB holds a connection pool to a PostgreSQL backend.
type PostgresDB struct {
	pool *pgxpool.Pool
}

// InitializePostgresDB connects to the configured PostgreSQL database.
func InitializePostgresDB(ctx context.Context) (*PostgresDB, error) {
	cfg := config.Current.Database

	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("error connecting to DB: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error connecting to DB: %w", err)
	}

	log.Printf("Connected to database %s:%d/%s\n", cfg.Host, cfg.Port, cfg.Name)
	return &PostgresDB{pool: pool}, nil
}

// EnsureSchema creates the users table if it does not exist.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, createUsersTable)
	return err
}

// Reseed drops and recreates the users table.
func (db *PostgresDB) Reseed(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, `DROP TABLE IF EXISTS users`); err != nil {
		return err
	}
	return db.EnsureSchema(ctx)
}

// Close handles closing all connections to the database.
func (db *PostgresDB) Close() error {
	db.pool.Close()
	return nil
}

// ListUsers returns all users in insertion order.
func (db *PostgresDB) ListUsers(ctx context.Context) ([]model.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users ORDER BY user_id`, userFields)

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := scanUser(rows, &u); err != nil {
			return nil, classify(err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}

	return users, nil
}

// GetUser returns the user for id.
func (db *PostgresDB) GetUser(ctx context.Context, id int) (*model.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE user_id = $1`, userFields)

	var u model.User
	if err := scanUser(db.pool.QueryRow(ctx, query, id), &u); err != nil {
		return nil, classify(err)
	}
	return &u, nil
}

// CreateUser inserts a row built from exactly the projected fields.
// Unsubmitted columns take their schema defaults.
func (db *PostgresDB) CreateUser(ctx context.Context, fields map[string]interface{}) (*model.User, error) {
	assignments := sqlutil.Assignments(fields, model.AllowedFields, userColumns)
	if len(assignments) == 0 {
		return nil, model.Err(model.KindInvalidArgument)
	}

	columns, placeholders, args := sqlutil.InsertClause(assignments)
	query := fmt.Sprintf(
		`INSERT INTO users (%s) VALUES (%s) RETURNING %s`,
		columns, placeholders, userFields,
	)

	var u model.User
	if err := scanUser(db.pool.QueryRow(ctx, query, args...), &u); err != nil {
		return nil, classify(err)
	}
	return &u, nil
}

// UpdateUser updates exactly the submitted columns, leaving all others
// unchanged. The SET clause and argument list are derived from one
// assignment sequence, with the identifier appended last.
func (db *PostgresDB) UpdateUser(ctx context.Context, id int, fields map[string]interface{}) (*model.User, error) {
	assignments := sqlutil.Assignments(fields, model.AllowedFields, userColumns)
	if len(assignments) == 0 {
		return nil, model.Err(model.KindInvalidArgument)
	}

	set, args := sqlutil.SetClause(assignments)
	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE users SET %s WHERE user_id = $%d RETURNING %s`,
		set, len(args), userFields,
	)

	var u model.User
	if err := scanUser(db.pool.QueryRow(ctx, query, args...), &u); err != nil {
		return nil, classify(err)
	}
	return &u, nil
}

// DeleteUser removes the row for id.
func (db *PostgresDB) DeleteUser(ctx context.Context, id int) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, id)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return model.Err(model.KindNotFound)
	}
	return nil
}

func scanUser(row pgx.Row, u *model.User) error {
	return row.Scan(
		&u.UserID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.Number,
		&u.Industry,
		&u.Message,
		&u.CreatedAt,
	)
}

// classify maps a storage failure onto the user-facing error taxonomy.
// It runs exactly once, here; callers above this layer never inspect
// pgconn errors.
func classify(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Err(model.KindNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgInvalidTextRepresentation:
			return model.Err(model.KindInvalidArgument)
		case pgForeignKeyViolation:
			return model.Err(model.KindConstraintViolation)
		case pgNotNullViolation:
			return model.Err(model.KindMissingField)
		}
	}

	log.Printf("unclassified database error: %v\n", err)
	return model.Err(model.KindInternalError)
}
