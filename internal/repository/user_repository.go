package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

// User mirrors the 'users' table. ExternalID is the subject issued by the
// identity provider; the seat map never sees passwords.
type User struct {
	ID           uint64
	ExternalID   string
	Email        string
	Username     string
	FirstName    sql.NullString
	LastName     sql.NullString
	ProfileImage sql.NullString
	Role         string
	CreatedAt    time.Time
}

// DisplayName is the username, falling back to the email.
func (u User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = "id,external_id,email,username,first_name,last_name,profile_image,role,created_at"

// GetByExternalID fetches the user linked to an identity-provider subject.
func (r *UserRepo) GetByExternalID(ctx context.Context, externalID string) (User, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return User{}, ErrUserNotFound
	}
	var u User
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE external_id=? LIMIT 1",
		externalID).Scan(&u.ID, &u.ExternalID, &u.Email, &u.Username,
		&u.FirstName, &u.LastName, &u.ProfileImage, &u.Role, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	return u, err
}
