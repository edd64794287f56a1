package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/art-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/art-quiz-bot/internal/infra/postgres"
)

// StreakRepository provides access to streak records in the database.
type StreakRepository struct {
	db postgres.DBTX
}

// NewStreakRepository creates a new StreakRepository with the provided database pool.
func NewStreakRepository(db postgres.DBTX) *StreakRepository {
	return &StreakRepository{db: db}
}

// Load retrieves the streak record of a user. Inside a transaction the
// row stays locked until commit.
func (r *StreakRepository) Load(ctx context.Context, userID int64) (*entities.StreakRecord, error) {
	query := `
		SELECT last_date, streak, best
		FROM streaks
		WHERE user_id = $1
		FOR UPDATE
	`

	var (
		lastDate time.Time
		rec      entities.StreakRecord
	)
	err := postgres.Conn(ctx, r.db).QueryRow(ctx, query, userID).Scan(
		&lastDate,
		&rec.Streak,
		&rec.Best,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrStreakNotFound
		}
		return nil, fmt.Errorf("load streak: %w", err)
	}

	rec.Date = entities.DayOf(lastDate)
	return &rec, nil
}

// Save inserts or replaces the streak record of a user.
func (r *StreakRepository) Save(ctx context.Context, userID int64, rec entities.StreakRecord) error {
	query := `
		INSERT INTO streaks (user_id, last_date, streak, best, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			last_date = EXCLUDED.last_date,
			streak = EXCLUDED.streak,
			best = EXCLUDED.best,
			updated_at = NOW()
	`

	_, err := postgres.Conn(ctx, r.db).Exec(ctx, query, userID, rec.Date.Time(), rec.Streak, rec.Best)
	if err != nil {
		return fmt.Errorf("save streak: %w", err)
	}

	return nil
}
