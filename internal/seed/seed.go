package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/uynm/backend/internal/config"
	"github.com/uynm/backend/internal/pkg/auth"
	"github.com/uynm/backend/internal/pkg/logger"
	"github.com/uynm/backend/internal/pkg/validation"
)

// SeedAdminUser creates the default admin account if it does not exist yet.
// Credentials come from configuration; when no admin password is configured
// the seed is skipped.
func SeedAdminUser(ctx context.Context, db *pgxpool.Pool, cfg *config.Config) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Debug().Msg("Admin credentials not configured, skipping admin seed")
		return nil
	}

	adminEmail := validation.NormalizeEmail(cfg.Admin.Email)
	if !validation.IsValidEmail(adminEmail) {
		logger.Warn().Str("email", cfg.Admin.Email).Msg("Configured admin email is not a valid address, skipping admin seed")
		return nil
	}
	if len(cfg.Admin.Password) < validation.PasswordMinLength {
		logger.Warn().Msg("Configured admin password is shorter than the account password floor, skipping admin seed")
		return nil
	}

	var exists bool
	err := db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, adminEmail).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}
	if exists {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = db.Exec(ctx,
		`INSERT INTO users (email, password, full_name, role_type, is_active) VALUES ($1, $2, $3, 'ADMIN', TRUE)`,
		adminEmail, hashed, "Administrator")
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info().Str("email", adminEmail).Msg("Default admin user created")
	return nil
}
