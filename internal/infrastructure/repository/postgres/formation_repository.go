package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/team-manager/internal/domain/formation"
	qb "github.com/riskibarqy/team-manager/internal/platform/querybuilder"
)

type FormationRepository struct {
	db *sqlx.DB
}

func NewFormationRepository(db *sqlx.DB) *FormationRepository {
	return &FormationRepository{db: db}
}

func (r *FormationRepository) List(ctx context.Context) ([]formation.Formation, error) {
	return r.list(ctx, qb.IsNull("deleted_at"))
}

func (r *FormationRepository) ListByGameFormat(ctx context.Context, gameFormatID string) ([]formation.Formation, error) {
	return r.list(ctx,
		qb.Eq("game_format_public_id", gameFormatID),
		qb.IsNull("deleted_at"),
	)
}

func (r *FormationRepository) GetByID(ctx context.Context, formationID string) (formation.Formation, bool, error) {
	query, args, err := qb.Select("*").From("formations").
		Where(
			qb.Eq("public_id", formationID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return formation.Formation{}, false, crerr.Wrap(err, "build get formation query")
	}

	var row formationTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return formation.Formation{}, false, nil
		}
		return formation.Formation{}, false, crerr.Wrapf(err, "get formation %s", formationID)
	}

	item, err := row.toDomain()
	if err != nil {
		return formation.Formation{}, false, err
	}
	return item, true, nil
}

func (r *FormationRepository) list(ctx context.Context, conditions ...qb.Condition) ([]formation.Formation, error) {
	query, args, err := qb.Select("*").From("formations").
		Where(conditions...).
		OrderBy("sort_order", "id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select formations query")
	}

	var rows []formationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select formations")
	}

	out := make([]formation.Formation, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
