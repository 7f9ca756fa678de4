package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// EnsureAdmin creates the configured admin account if it doesn't exist.
// Idempotent: does nothing when the email is already registered or no
// credentials are configured.
func EnsureAdmin(ctx context.Context, logger *slog.Logger, db *sql.DB, email, password string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil
	}

	var existing string
	err := db.QueryRowContext(ctx, `SELECT id FROM admins WHERE email = ?`, email).Scan(&existing)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	if _, err := db.ExecContext(ctx, `
		INSERT INTO admins (email, password_hash) VALUES (?, ?)
	`, email, string(hash)); err != nil {
		return fmt.Errorf("creating admin: %w", err)
	}

	logger.Info("admin account created", "email", email)
	return nil
}
