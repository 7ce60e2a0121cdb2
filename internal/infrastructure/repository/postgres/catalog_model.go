package postgres

import (
	"database/sql"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/team-manager/internal/domain/formation"
	"github.com/riskibarqy/team-manager/internal/domain/gameformat"
)

type gameFormatTableModel struct {
	ID                 int64         `db:"id"`
	PublicID           string        `db:"public_id"`
	Name               string        `db:"name"`
	Description        string        `db:"description"`
	PlayersPerTeam     int           `db:"players_per_team"`
	DurationMinutes    int           `db:"duration_minutes"`
	AllowSubstitutions bool          `db:"allow_substitutions"`
	MaxSubstitutions   sql.NullInt64 `db:"max_substitutions"`
	SortOrder          int           `db:"sort_order"`
	CreatedAt          time.Time     `db:"created_at"`
	UpdatedAt          time.Time     `db:"updated_at"`
	DeletedAt          *time.Time    `db:"deleted_at"`
}

func (m gameFormatTableModel) toDomain() gameformat.GameFormat {
	out := gameformat.GameFormat{
		ID:                 m.PublicID,
		Name:               m.Name,
		Description:        m.Description,
		PlayersPerTeam:     m.PlayersPerTeam,
		DurationMinutes:    m.DurationMinutes,
		AllowSubstitutions: m.AllowSubstitutions,
	}
	if m.MaxSubstitutions.Valid {
		v := int(m.MaxSubstitutions.Int64)
		out.MaxSubstitutions = &v
	}
	return out
}

type formationTableModel struct {
	ID                 int64      `db:"id"`
	PublicID           string     `db:"public_id"`
	GameFormatPublicID string     `db:"game_format_public_id"`
	Name               string     `db:"name"`
	IsActive           bool       `db:"is_active"`
	Positions          []byte     `db:"positions"`
	SortOrder          int        `db:"sort_order"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
	DeletedAt          *time.Time `db:"deleted_at"`
}

func (m formationTableModel) toDomain() (formation.Formation, error) {
	positions, err := decodePositions(m.Positions)
	if err != nil {
		return formation.Formation{}, crerr.Wrapf(err, "decode positions of formation %s", m.PublicID)
	}

	return formation.Formation{
		ID:           m.PublicID,
		Name:         m.Name,
		GameFormatID: m.GameFormatPublicID,
		Active:       m.IsActive,
		Positions:    positions,
	}, nil
}

// positionRecord is the JSONB shape of one position in formations.positions and
// teams.configuration.
type positionRecord struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Abbreviation string  `json:"abbreviation"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
}

func encodePositions(items []formation.Position) ([]byte, error) {
	records := make([]positionRecord, 0, len(items))
	for _, p := range items {
		records = append(records, positionRecord(p))
	}
	return sonic.Marshal(records)
}

func decodePositions(raw []byte) ([]formation.Position, error) {
	if len(raw) == 0 {
		return []formation.Position{}, nil
	}

	var records []positionRecord
	if err := sonic.Unmarshal(raw, &records); err != nil {
		return nil, err
	}

	out := make([]formation.Position, 0, len(records))
	for _, r := range records {
		out = append(out, formation.Position(r))
	}
	return out, nil
}
