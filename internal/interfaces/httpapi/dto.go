package httpapi

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/riskibarqy/team-manager/internal/domain/formation"
	"github.com/riskibarqy/team-manager/internal/domain/gameformat"
	"github.com/riskibarqy/team-manager/internal/domain/team"
	"github.com/riskibarqy/team-manager/internal/domain/teamsetup"
	"github.com/riskibarqy/team-manager/internal/usecase"
)

// Positions handed in by clients are kept inside the drawable part of the field.
const (
	minFieldCoordinate = 5.0
	maxFieldCoordinate = 95.0
	maxAbbreviationLen = 3
)

type createTeamRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

type updateTeamRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

type recordResultRequest struct {
	GoalsFor     *int `json:"goals_for" validate:"required,min=0"`
	GoalsAgainst *int `json:"goals_against" validate:"required,min=0"`
}

type selectGameFormatRequest struct {
	GameFormatID string `json:"game_format_id" validate:"required"`
}

type selectFormationRequest struct {
	FormationID string `json:"formation_id" validate:"required"`
}

type addPositionRequest struct {
	ID           string  `json:"id" validate:"omitempty,max=64"`
	Name         string  `json:"name" validate:"required,notblank,max=50"`
	Abbreviation string  `json:"abbreviation" validate:"required,notblank"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
}

type updatePositionRequest struct {
	Name         *string  `json:"name" validate:"omitnil,notblank,max=50"`
	Abbreviation *string  `json:"abbreviation" validate:"omitnil,notblank"`
	X            *float64 `json:"x"`
	Y            *float64 `json:"y"`
}

type gameFormatDTO struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	PlayersPerTeam     int    `json:"players_per_team"`
	DurationMinutes    int    `json:"duration_minutes"`
	AllowSubstitutions bool   `json:"allow_substitutions"`
	MaxSubstitutions   *int   `json:"max_substitutions,omitempty"`
}

type positionDTO struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Abbreviation string  `json:"abbreviation"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
}

type formationDTO struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	GameFormatID string        `json:"game_format_id"`
	Active       bool          `json:"active"`
	Positions    []positionDTO `json:"positions"`
}

type configurationDTO struct {
	GameFormatID string        `json:"game_format_id,omitempty"`
	FormationID  string        `json:"formation_id,omitempty"`
	Positions    []positionDTO `json:"positions"`
}

type statsDTO struct {
	Played         int `json:"played"`
	Wins           int `json:"wins"`
	Draws          int `json:"draws"`
	Losses         int `json:"losses"`
	GoalsFor       int `json:"goals_for"`
	GoalsAgainst   int `json:"goals_against"`
	GoalDifference int `json:"goal_difference"`
	Points         int `json:"points"`
}

type teamDTO struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Configuration *configurationDTO `json:"configuration,omitempty"`
	Stats         statsDTO          `json:"stats"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

type teamDetailsDTO struct {
	teamDTO
	GameFormat *gameFormatDTO `json:"game_format,omitempty"`
	Formation  *formationDTO  `json:"formation,omitempty"`
}

type setupSessionDTO struct {
	ID            string           `json:"id"`
	TeamID        string           `json:"team_id"`
	Mode          string           `json:"mode"`
	Phase         string           `json:"phase"`
	Configuration configurationDTO `json:"configuration"`
	Formations    []formationDTO   `json:"formations"`
	ExpiresAt     time.Time        `json:"expires_at"`
}

func (req addPositionRequest) toPosition() formation.Position {
	return formation.Position{
		ID:           strings.TrimSpace(req.ID),
		Name:         strings.TrimSpace(req.Name),
		Abbreviation: sanitizeAbbreviation(req.Abbreviation),
		X:            clampCoordinate(req.X),
		Y:            clampCoordinate(req.Y),
	}
}

func (req updatePositionRequest) toUpdate() formation.PositionUpdate {
	var update formation.PositionUpdate
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		update.Name = &name
	}
	if req.Abbreviation != nil {
		abbr := sanitizeAbbreviation(*req.Abbreviation)
		update.Abbreviation = &abbr
	}
	if req.X != nil {
		x := clampCoordinate(*req.X)
		update.X = &x
	}
	if req.Y != nil {
		y := clampCoordinate(*req.Y)
		update.Y = &y
	}
	return update
}

func clampCoordinate(v float64) float64 {
	switch {
	case v < minFieldCoordinate:
		return minFieldCoordinate
	case v > maxFieldCoordinate:
		return maxFieldCoordinate
	default:
		return v
	}
}

func sanitizeAbbreviation(v string) string {
	v = strings.ToUpper(strings.TrimSpace(v))
	if utf8.RuneCountInString(v) <= maxAbbreviationLen {
		return v
	}
	return string([]rune(v)[:maxAbbreviationLen])
}

func toGameFormatDTO(item gameformat.GameFormat) gameFormatDTO {
	return gameFormatDTO{
		ID:                 item.ID,
		Name:               item.Name,
		Description:        item.Description,
		PlayersPerTeam:     item.PlayersPerTeam,
		DurationMinutes:    item.DurationMinutes,
		AllowSubstitutions: item.AllowSubstitutions,
		MaxSubstitutions:   item.MaxSubstitutions,
	}
}

func toPositionDTOs(items []formation.Position) []positionDTO {
	out := make([]positionDTO, 0, len(items))
	for _, p := range items {
		out = append(out, positionDTO{
			ID:           p.ID,
			Name:         p.Name,
			Abbreviation: p.Abbreviation,
			X:            p.X,
			Y:            p.Y,
		})
	}
	return out
}

func toFormationDTO(item formation.Formation) formationDTO {
	return formationDTO{
		ID:           item.ID,
		Name:         item.Name,
		GameFormatID: item.GameFormatID,
		Active:       item.Active,
		Positions:    toPositionDTOs(item.Positions),
	}
}

func toFormationDTOs(items []formation.Formation) []formationDTO {
	out := make([]formationDTO, 0, len(items))
	for _, item := range items {
		out = append(out, toFormationDTO(item))
	}
	return out
}

func toConfigurationDTO(snap teamsetup.Snapshot) configurationDTO {
	return configurationDTO{
		GameFormatID: snap.GameFormatID,
		FormationID:  snap.FormationID,
		Positions:    toPositionDTOs(snap.Positions),
	}
}

func toStatsDTO(stats team.Stats) statsDTO {
	return statsDTO{
		Played:         stats.Played,
		Wins:           stats.Wins,
		Draws:          stats.Draws,
		Losses:         stats.Losses,
		GoalsFor:       stats.GoalsFor,
		GoalsAgainst:   stats.GoalsAgainst,
		GoalDifference: stats.GoalDifference(),
		Points:         stats.Points(),
	}
}

func toTeamDTO(item team.Team) teamDTO {
	out := teamDTO{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Stats:       toStatsDTO(item.Stats),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
	if item.HasConfiguration() {
		cfg := toConfigurationDTO(*item.Configuration)
		out.Configuration = &cfg
	}
	return out
}

func toTeamDetailsDTO(details usecase.TeamDetails) teamDetailsDTO {
	out := teamDetailsDTO{teamDTO: toTeamDTO(details.Team)}
	if details.GameFormat != nil {
		format := toGameFormatDTO(*details.GameFormat)
		out.GameFormat = &format
	}
	if details.Formation != nil {
		item := toFormationDTO(*details.Formation)
		out.Formation = &item
	}
	return out
}

func toSetupSessionDTO(view usecase.SessionView) setupSessionDTO {
	return setupSessionDTO{
		ID:            view.SessionID,
		TeamID:        view.TeamID,
		Mode:          string(view.Mode),
		Phase:         string(view.Phase),
		Configuration: toConfigurationDTO(view.Configuration),
		Formations:    toFormationDTOs(view.Formations),
		ExpiresAt:     view.ExpiresAt,
	}
}
