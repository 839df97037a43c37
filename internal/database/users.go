package database

import (
	"context"
	"errors"
	"time"

	"pagehub/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrDuplicateEmail = errors.New("a user with this email already exists")
var ErrUserNotFound = errors.New("user not found")

const userColumns = `
	id, username, email, password_hash, role, status,
	subscription_status, subscription_expiry, activation_key,
	created_at, updated_at
`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Status,
		&user.SubscriptionStatus,
		&user.SubscriptionExpiry,
		&user.ActivationKey,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

type CreateUserParams struct {
	Username      string
	Email         string
	PasswordHash  string
	Role          string
	ActivationKey *string
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (*models.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash, role, activation_key)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING` + userColumns

	row := q.db.QueryRow(ctx, query, arg.Username, arg.Email, arg.PasswordHash, arg.Role, arg.ActivationKey)

	user, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return user, nil
}

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT` + userColumns + `FROM users WHERE email = $1`
	return scanUser(q.db.QueryRow(ctx, query, email))
}

func (q *Queries) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT` + userColumns + `FROM users WHERE id = $1`
	return scanUser(q.db.QueryRow(ctx, query, id))
}

func (q *Queries) ListUsers(ctx context.Context) ([]models.User, error) {
	query := `SELECT` + userColumns + `FROM users ORDER BY created_at DESC`
	rows, err := q.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.PasswordHash,
			&user.Role,
			&user.Status,
			&user.SubscriptionStatus,
			&user.SubscriptionExpiry,
			&user.ActivationKey,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if users == nil {
		return []models.User{}, nil
	}

	return users, nil
}

// UpdateUserDetailsParams carries the fields an admin may patch. Identity and
// credential fields (id, email, password) are stripped before this layer and
// have no column here. SubscriptionExpiry is written only when
// SubscriptionStatus is set: a status change always rewrites the expiry (to
// the caller-normalized value, possibly NULL), a patch without one leaves it
// untouched.
type UpdateUserDetailsParams struct {
	Username           *string
	Role               *string
	Status             *string
	SubscriptionStatus *string
	SubscriptionExpiry *time.Time
}

func (q *Queries) UpdateUserDetails(ctx context.Context, id int64, arg UpdateUserDetailsParams) (*models.User, error) {
	query := `
		UPDATE users
		SET
			username = COALESCE($1, username),
			role = COALESCE($2, role),
			status = COALESCE($3, status),
			subscription_status = COALESCE($4::text, subscription_status),
			subscription_expiry = CASE
				WHEN $4::text IS NULL THEN subscription_expiry
				ELSE $5::timestamptz
			END,
			updated_at = now()
		WHERE id = $6
		RETURNING` + userColumns

	row := q.db.QueryRow(ctx, query, arg.Username, arg.Role, arg.Status, arg.SubscriptionStatus, arg.SubscriptionExpiry, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (q *Queries) UpdateUserPassword(ctx context.Context, id int64, newPasswordHash string) (bool, error) {
	query := `UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2`
	res, err := q.db.Exec(ctx, query, newPasswordHash, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (q *Queries) UpdateUserRole(ctx context.Context, id int64, role string) (*models.User, error) {
	query := `
		UPDATE users SET role = $1, updated_at = now()
		WHERE id = $2
		RETURNING` + userColumns

	user, err := scanUser(q.db.QueryRow(ctx, query, role, id))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (q *Queries) UpdateUserStatus(ctx context.Context, id int64, status string) (*models.User, error) {
	query := `
		UPDATE users SET status = $1, updated_at = now()
		WHERE id = $2
		RETURNING` + userColumns

	user, err := scanUser(q.db.QueryRow(ctx, query, status, id))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateUserSubscription persists the subscription status and expiry exactly
// as given. Expiry defaulting and clearing is decided by the subscription
// package before this call.
func (q *Queries) UpdateUserSubscription(ctx context.Context, id int64, status string, expiry *time.Time) (*models.User, error) {
	query := `
		UPDATE users
		SET subscription_status = $1, subscription_expiry = $2, updated_at = now()
		WHERE id = $3
		RETURNING` + userColumns

	user, err := scanUser(q.db.QueryRow(ctx, query, status, expiry, id))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
