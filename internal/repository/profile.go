package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/DanRulev/codehero.git/internal/models"
	"github.com/jmoiron/sqlx"
)

type ProfileR struct {
	db   QueryI
	bind int
}

func NewProfileRepository(db QueryI, bind int) *ProfileR {
	return &ProfileR{
		db:   db,
		bind: bind,
	}
}

func (p *ProfileR) UpsertProfile(ctx context.Context, profile models.Profile) error {
	query := sqlx.Rebind(p.bind, `
		INSERT INTO profiles (id, username, full_name, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id)
		DO UPDATE SET
			username = EXCLUDED.username,
			full_name = EXCLUDED.full_name,
			updated_at = EXCLUDED.updated_at
	`)

	_, err := p.db.ExecContext(ctx, query, profile.ID, profile.Username, profile.FullName, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to upsert profile %d: %w", profile.ID, err)
	}

	return nil
}

func (p *ProfileR) ProfilesByIDs(ctx context.Context, ids []int64) ([]models.Profile, error) {
	if len(ids) == 0 {
		return []models.Profile{}, nil
	}

	query, args, err := sqlx.In(`SELECT id, username, full_name FROM profiles WHERE id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build profiles query: %w", err)
	}

	profiles := make([]models.Profile, 0, len(ids))
	err = p.db.SelectContext(ctx, &profiles, sqlx.Rebind(p.bind, query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}

	return profiles, nil
}
