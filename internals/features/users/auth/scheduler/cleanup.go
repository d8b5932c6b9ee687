package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	authRepo "rentku_backend/internals/features/users/auth/repository"
)

// CleanupTokens drops blacklist entries of expired access tokens and
// refresh tokens that are expired or revoked.
func CleanupTokens(ctx context.Context, db *gorm.DB, now time.Time) {
	if n, err := authRepo.DeleteExpiredBlacklist(ctx, db, now); err != nil {
		slog.ErrorContext(ctx, "token blacklist cleanup failed", "error", err)
	} else if n > 0 {
		slog.InfoContext(ctx, "token blacklist cleaned", "deleted", n)
	}
	if n, err := authRepo.DeleteStaleRefreshTokens(ctx, db, now); err != nil {
		slog.ErrorContext(ctx, "refresh token cleanup failed", "error", err)
	} else if n > 0 {
		slog.InfoContext(ctx, "refresh tokens cleaned", "deleted", n)
	}
}

// StartBlacklistCleanupScheduler registers the cleanup job on c.
func StartBlacklistCleanupScheduler(c *cron.Cron, db *gorm.DB, spec string) error {
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		CleanupTokens(ctx, db, time.Now().UTC())
	})
	if err != nil {
		return err
	}
	slog.Info("token cleanup scheduled", "spec", spec)
	return nil
}
