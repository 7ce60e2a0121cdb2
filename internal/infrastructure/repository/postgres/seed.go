package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/team-manager/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the built-in catalog and the demo team into an empty database.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM game_formats WHERE deleted_at IS NULL`); err != nil {
		return crerr.Wrap(err, "count game formats for bootstrap seed")
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin seed tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	catalog := memory.SeedCatalog()
	for idx, f := range catalog.GameFormats {
		var maxSubs any
		if f.MaxSubstitutions != nil {
			maxSubs = *f.MaxSubstitutions
		}
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO game_formats (public_id, name, description, players_per_team, duration_minutes, allow_substitutions, max_substitutions, sort_order)
VALUES (:public_id, :name, :description, :players_per_team, :duration_minutes, :allow_substitutions, :max_substitutions, :sort_order)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":           f.ID,
			"name":                f.Name,
			"description":         f.Description,
			"players_per_team":    f.PlayersPerTeam,
			"duration_minutes":    f.DurationMinutes,
			"allow_substitutions": f.AllowSubstitutions,
			"max_substitutions":   maxSubs,
			"sort_order":          idx,
		})
		if err != nil {
			return crerr.Wrapf(err, "bind seed game format %s query", f.ID)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return crerr.Wrapf(err, "seed game format %s", f.ID)
		}
	}

	for idx, f := range catalog.Formations {
		positions, err := encodePositions(f.Positions)
		if err != nil {
			return crerr.Wrapf(err, "encode seed formation %s positions", f.ID)
		}
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO formations (public_id, game_format_public_id, name, is_active, positions, sort_order)
VALUES (:public_id, :game_format_public_id, :name, :is_active, CAST(:positions AS JSONB), :sort_order)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":             f.ID,
			"game_format_public_id": f.GameFormatID,
			"name":                  f.Name,
			"is_active":             f.Active,
			"positions":             string(positions),
			"sort_order":            idx,
		})
		if err != nil {
			return crerr.Wrapf(err, "bind seed formation %s query", f.ID)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return crerr.Wrapf(err, "seed formation %s", f.ID)
		}
	}

	for _, t := range memory.SeedTeams() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO teams (public_id, name, description)
VALUES (:public_id, :name, :description)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":   t.ID,
			"name":        t.Name,
			"description": t.Description,
		})
		if err != nil {
			return crerr.Wrapf(err, "bind seed team %s query", t.ID)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return crerr.Wrapf(err, "seed team %s", t.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit seed tx")
	}
	return nil
}
