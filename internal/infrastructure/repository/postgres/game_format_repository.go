package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/team-manager/internal/domain/gameformat"
	qb "github.com/riskibarqy/team-manager/internal/platform/querybuilder"
)

type GameFormatRepository struct {
	db *sqlx.DB
}

func NewGameFormatRepository(db *sqlx.DB) *GameFormatRepository {
	return &GameFormatRepository{db: db}
}

func (r *GameFormatRepository) List(ctx context.Context) ([]gameformat.GameFormat, error) {
	query, args, err := qb.Select("*").From("game_formats").
		Where(qb.IsNull("deleted_at")).
		OrderBy("sort_order", "id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select game formats query")
	}

	var rows []gameFormatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select game formats")
	}

	out := make([]gameformat.GameFormat, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *GameFormatRepository) GetByID(ctx context.Context, formatID string) (gameformat.GameFormat, bool, error) {
	query, args, err := qb.Select("*").From("game_formats").
		Where(
			qb.Eq("public_id", formatID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return gameformat.GameFormat{}, false, crerr.Wrap(err, "build get game format query")
	}

	var row gameFormatTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return gameformat.GameFormat{}, false, nil
		}
		return gameformat.GameFormat{}, false, crerr.Wrapf(err, "get game format %s", formatID)
	}

	return row.toDomain(), true, nil
}
