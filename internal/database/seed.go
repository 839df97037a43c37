package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"pagehub/internal/auth"
	"pagehub/internal/config"
	"pagehub/internal/models"
)

// SeedAdmin is an explicit, idempotent startup step: find-or-create the
// configured admin account and reconcile its role and status if they have
// drifted. The lookup and mutation run in one transaction so two instances
// booting at once cannot interleave; a concurrent create losing the race
// surfaces as ErrDuplicateEmail and is treated as already seeded.
func (s *Store) SeedAdmin(ctx context.Context, cfg config.AdminConfig) error {
	if cfg.Email == "" {
		return nil
	}

	err := s.ExecTx(ctx, func(q *Queries) error {
		existing, err := q.GetUserByEmail(ctx, cfg.Email)
		if err != nil {
			return fmt.Errorf("failed to look up admin account: %w", err)
		}

		if existing == nil {
			hash, err := auth.HashPassword(cfg.Password)
			if err != nil {
				return fmt.Errorf("failed to hash admin password: %w", err)
			}
			_, err = q.CreateUser(ctx, CreateUserParams{
				Username:     cfg.Username,
				Email:        cfg.Email,
				PasswordHash: hash,
				Role:         models.RoleAdmin,
			})
			if err != nil {
				// ErrDuplicateEmail must abort the tx; the caller decides
				// whether it is benign.
				return err
			}
			log.Printf("Seeded admin account %s", cfg.Email)
			return nil
		}

		if existing.Role != models.RoleAdmin || existing.Status != models.StatusActive {
			role := models.RoleAdmin
			status := models.StatusActive
			_, err := q.UpdateUserDetails(ctx, existing.ID, UpdateUserDetailsParams{
				Role:   &role,
				Status: &status,
			})
			if err != nil {
				return fmt.Errorf("failed to reconcile admin account: %w", err)
			}
			log.Printf("Reconciled admin account %s", cfg.Email)
		}

		return nil
	})
	if errors.Is(err, ErrDuplicateEmail) {
		log.Printf("Admin account %s already seeded by another instance", cfg.Email)
		return nil
	}
	return err
}
