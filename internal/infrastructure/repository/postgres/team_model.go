package postgres

import (
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/team-manager/internal/domain/formation"
	"github.com/riskibarqy/team-manager/internal/domain/team"
	"github.com/riskibarqy/team-manager/internal/domain/teamsetup"
)

type teamTableModel struct {
	ID            int64      `db:"id"`
	PublicID      string     `db:"public_id"`
	Name          string     `db:"name"`
	Description   string     `db:"description"`
	Configuration []byte     `db:"configuration"`
	Played        int        `db:"played"`
	Wins          int        `db:"wins"`
	Draws         int        `db:"draws"`
	Losses        int        `db:"losses"`
	GoalsFor      int        `db:"goals_for"`
	GoalsAgainst  int        `db:"goals_against"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	DeletedAt     *time.Time `db:"deleted_at"`
}

var teamStatsColumns = []string{"played", "wins", "draws", "losses", "goals_for", "goals_against"}

type teamStatsModel struct {
	Played       int `db:"played"`
	Wins         int `db:"wins"`
	Draws        int `db:"draws"`
	Losses       int `db:"losses"`
	GoalsFor     int `db:"goals_for"`
	GoalsAgainst int `db:"goals_against"`
}

func (m teamStatsModel) toDomain() team.Stats {
	return team.Stats(m)
}

type teamInsertModel struct {
	PublicID    string `db:"public_id"`
	Name        string `db:"name"`
	Description string `db:"description,omitempty"`
}

func (m teamTableModel) toDomain() (team.Team, error) {
	out := team.Team{
		ID:          m.PublicID,
		Name:        m.Name,
		Description: m.Description,
		Stats: teamStatsModel{
			Played:       m.Played,
			Wins:         m.Wins,
			Draws:        m.Draws,
			Losses:       m.Losses,
			GoalsFor:     m.GoalsFor,
			GoalsAgainst: m.GoalsAgainst,
		}.toDomain(),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	cfg, err := decodeConfiguration(m.Configuration)
	if err != nil {
		return team.Team{}, crerr.Wrapf(err, "decode configuration of team %s", m.PublicID)
	}
	out.Configuration = cfg
	return out, nil
}

// configurationRecord is the JSONB shape of teams.configuration.
type configurationRecord struct {
	GameFormatID string           `json:"game_format_id"`
	FormationID  string           `json:"formation_id"`
	Positions    []positionRecord `json:"positions"`
}

func encodeConfiguration(cfg teamsetup.Snapshot) ([]byte, error) {
	record := configurationRecord{
		GameFormatID: cfg.GameFormatID,
		FormationID:  cfg.FormationID,
		Positions:    make([]positionRecord, 0, len(cfg.Positions)),
	}
	for _, p := range cfg.Positions {
		record.Positions = append(record.Positions, positionRecord(p))
	}
	return sonic.Marshal(record)
}

func decodeConfiguration(raw []byte) (*teamsetup.Snapshot, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var record configurationRecord
	if err := sonic.Unmarshal(raw, &record); err != nil {
		return nil, err
	}

	cfg := teamsetup.Snapshot{
		GameFormatID: record.GameFormatID,
		FormationID:  record.FormationID,
	}
	cfg.Positions = make([]formation.Position, 0, len(record.Positions))
	for _, r := range record.Positions {
		cfg.Positions = append(cfg.Positions, formation.Position(r))
	}
	return &cfg, nil
}
