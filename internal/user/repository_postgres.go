package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

// SQLSTATE unique_violation
const uniqueViolationCode = "23505"

type PostgresRepository struct {
	db *sqlx.DB
}

var _ Repository = (*PostgresRepository)(nil)

type userRow struct {
	User
	Inserted bool `db:"inserted"`
}

const (
	getUserByEmailQuery = `
		SELECT id::text AS id, email, name, mother_tongue, english_level, learning_goal, interests, focus, voice, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	// xmax is zero only for a row version written by an INSERT, which tells
	// the two upsert branches apart without a second round trip.
	upsertUserQuery = `
		INSERT INTO users (email, name, mother_tongue, english_level, learning_goal, interests, focus, voice)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (email) DO UPDATE
		SET mother_tongue = COALESCE($9, users.mother_tongue),
			english_level = COALESCE($10, users.english_level),
			learning_goal = COALESCE($11, users.learning_goal),
			interests = COALESCE($12, users.interests),
			focus = COALESCE($13, users.focus),
			voice = COALESCE($14, users.voice),
			updated_at = NOW()
		RETURNING id::text AS id, email, name, mother_tongue, english_level, learning_goal, interests, focus, voice, created_at, updated_at, (xmax = 0) AS inserted
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: sqlx.NewDb(db, "pgx")}
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	var user User
	if err := r.db.GetContext(ctx, &user, getUserByEmailQuery, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, create User, update Preferences) (User, bool, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, upsertUserQuery,
		create.Email,
		create.Name,
		create.MotherTongue,
		create.EnglishLevel,
		create.LearningGoal,
		create.Interests,
		create.Focus,
		create.Voice,
		update.MotherTongue,
		update.EnglishLevel,
		update.LearningGoal,
		update.Interests,
		update.Focus,
		update.Voice,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return User{}, false, ErrEmailExists
		}
		return User{}, false, fmt.Errorf("upsert user: %w", err)
	}
	return row.User, row.Inserted, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
