package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/team-manager/internal/domain/team"
	"github.com/riskibarqy/team-manager/internal/domain/teamsetup"
	qb "github.com/riskibarqy/team-manager/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.IsNull("deleted_at")).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select teams query")
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select teams")
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(
			qb.Eq("public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, crerr.Wrap(err, "build get team query")
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, crerr.Wrapf(err, "get team %s", teamID)
	}

	item, err := row.toDomain()
	if err != nil {
		return team.Team{}, false, err
	}
	return item, true, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) error {
	query, args, err := qb.InsertModel("teams", teamInsertModel{
		PublicID:    item.ID,
		Name:        item.Name,
		Description: item.Description,
	}, "")
	if err != nil {
		return crerr.Wrap(err, "build insert team query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err, teamsNameUniqueIndex) {
			return team.ErrDuplicateName
		}
		return crerr.Wrapf(err, "insert team %s", item.ID)
	}
	return nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) error {
	query, args, err := qb.Update("teams").
		Set("name", item.Name).
		Set("description", item.Description).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", item.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build update team query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err, teamsNameUniqueIndex) {
			return team.ErrDuplicateName
		}
		return crerr.Wrapf(err, "update team %s", item.ID)
	}
	return nil
}

func (r *TeamRepository) SaveConfiguration(ctx context.Context, teamID string, cfg teamsetup.Snapshot) error {
	raw, err := encodeConfiguration(cfg)
	if err != nil {
		return crerr.Wrapf(err, "encode configuration of team %s", teamID)
	}

	query, args, err := qb.Update("teams").
		SetExpr("configuration", "?::jsonb", string(raw)).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build save team configuration query")
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return crerr.Wrapf(err, "save configuration of team %s", teamID)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return crerr.Wrapf(err, "save configuration of team %s", teamID)
	}
	if affected == 0 {
		return team.ErrNotFound
	}
	return nil
}

// RecordResult increments the stats columns in place so concurrent results
// never overwrite each other.
func (r *TeamRepository) RecordResult(ctx context.Context, teamID string, goalsFor, goalsAgainst int) (team.Stats, error) {
	query, args, err := recordResultQuery(teamID, goalsFor, goalsAgainst)
	if err != nil {
		return team.Stats{}, crerr.Wrap(err, "build record team result query")
	}

	var row teamStatsModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Stats{}, team.ErrNotFound
		}
		return team.Stats{}, crerr.Wrapf(err, "record result of team %s", teamID)
	}
	return row.toDomain(), nil
}

func recordResultQuery(teamID string, goalsFor, goalsAgainst int) (string, []any, error) {
	delta := team.Stats{}.Record(goalsFor, goalsAgainst)
	return qb.Update("teams").
		SetExpr("played", "played + ?", delta.Played).
		SetExpr("wins", "wins + ?", delta.Wins).
		SetExpr("draws", "draws + ?", delta.Draws).
		SetExpr("losses", "losses + ?", delta.Losses).
		SetExpr("goals_for", "goals_for + ?", delta.GoalsFor).
		SetExpr("goals_against", "goals_against + ?", delta.GoalsAgainst).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		Returning(teamStatsColumns...).
		ToSQL()
}

func (r *TeamRepository) Delete(ctx context.Context, teamID string) error {
	query, args, err := qb.Update("teams").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build soft delete team query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrapf(err, "soft delete team %s", teamID)
	}
	return nil
}
