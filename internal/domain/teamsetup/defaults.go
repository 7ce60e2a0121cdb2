package teamsetup

import (
	"github.com/riskibarqy/team-manager/internal/domain/formation"
	"github.com/riskibarqy/team-manager/internal/domain/gameformat"
)

const (
	GameFormat11v11 = "11v11"
	GameFormat9v9   = "9v9"
	GameFormat7v7   = "7v7"
	GameFormat5v5   = "5v5"
)

// DefaultCatalog returns the built-in reference data used to seed storage.
func DefaultCatalog() Catalog {
	return NewCatalog(DefaultGameFormats(), DefaultFormations())
}

func DefaultGameFormats() []gameformat.GameFormat {
	maxSubs11v11 := 5

	return []gameformat.GameFormat{
		{
			ID:                 GameFormat11v11,
			Name:               "11v11",
			Description:        "Full-sided match on a full-size pitch",
			PlayersPerTeam:     11,
			DurationMinutes:    90,
			AllowSubstitutions: true,
			MaxSubstitutions:   &maxSubs11v11,
		},
		{
			ID:                 GameFormat9v9,
			Name:               "9v9",
			Description:        "Youth format on a reduced pitch",
			PlayersPerTeam:     9,
			DurationMinutes:    60,
			AllowSubstitutions: true,
		},
		{
			ID:                 GameFormat7v7,
			Name:               "7v7",
			Description:        "Small-sided format with rolling substitutions",
			PlayersPerTeam:     7,
			DurationMinutes:    50,
			AllowSubstitutions: true,
		},
		{
			ID:                 GameFormat5v5,
			Name:               "5v5",
			Description:        "Futsal-style format",
			PlayersPerTeam:     5,
			DurationMinutes:    40,
			AllowSubstitutions: true,
		},
	}
}

func DefaultFormations() []formation.Formation {
	return []formation.Formation{
		{
			ID:           "4-4-2-11v11",
			Name:         "4-4-2",
			GameFormatID: GameFormat11v11,
			Active:       true,
			Positions: []formation.Position{
				goalkeeper(),
				pos("lb", "Left Back", "LB", 25, 15),
				pos("lcb", "Left Center Back", "LCB", 25, 38),
				pos("rcb", "Right Center Back", "RCB", 25, 62),
				pos("rb", "Right Back", "RB", 25, 85),
				pos("lm", "Left Midfield", "LM", 50, 15),
				pos("lcm", "Left Center Midfield", "LCM", 50, 38),
				pos("rcm", "Right Center Midfield", "RCM", 50, 62),
				pos("rm", "Right Midfield", "RM", 50, 85),
				pos("ls", "Left Striker", "LS", 75, 38),
				pos("rs", "Right Striker", "RS", 75, 62),
			},
		},
		{
			ID:           "4-3-3-11v11",
			Name:         "4-3-3",
			GameFormatID: GameFormat11v11,
			Active:       true,
			Positions: []formation.Position{
				goalkeeper(),
				pos("lb", "Left Back", "LB", 25, 15),
				pos("lcb", "Left Center Back", "LCB", 25, 38),
				pos("rcb", "Right Center Back", "RCB", 25, 62),
				pos("rb", "Right Back", "RB", 25, 85),
				pos("lcm", "Left Center Midfield", "LCM", 48, 30),
				pos("cdm", "Defensive Midfield", "CDM", 42, 50),
				pos("rcm", "Right Center Midfield", "RCM", 48, 70),
				pos("lw", "Left Wing", "LW", 75, 18),
				pos("st", "Striker", "ST", 80, 50),
				pos("rw", "Right Wing", "RW", 75, 82),
			},
		},
		{
			ID:           "3-5-2-11v11",
			Name:         "3-5-2",
			GameFormatID: GameFormat11v11,
			Active:       true,
			Positions: []formation.Position{
				goalkeeper(),
				pos("lcb", "Left Center Back", "LCB", 25, 28),
				pos("cb", "Center Back", "CB", 22, 50),
				pos("rcb", "Right Center Back", "RCB", 25, 72),
				pos("lwb", "Left Wing Back", "LWB", 50, 10),
				pos("lcm", "Left Center Midfield", "LCM", 48, 32),
				pos("cm", "Center Midfield", "CM", 45, 50),
				pos("rcm", "Right Center Midfield", "RCM", 48, 68),
				pos("rwb", "Right Wing Back", "RWB", 50, 90),
				pos("ls", "Left Striker", "LS", 75, 38),
				pos("rs", "Right Striker", "RS", 75, 62),
			},
		},
		{
			ID:           "3-3-2-9v9",
			Name:         "3-3-2",
			GameFormatID: GameFormat9v9,
			Active:       true,
			Positions: []formation.Position{
				goalkeeper(),
				pos("lb", "Left Back", "LB", 28, 22),
				pos("cb", "Center Back", "CB", 25, 50),
				pos("rb", "Right Back", "RB", 28, 78),
				pos("lm", "Left Midfield", "LM", 52, 20),
				pos("cm", "Center Midfield", "CM", 50, 50),
				pos("rm", "Right Midfield", "RM", 52, 80),
				pos("ls", "Left Striker", "LS", 75, 38),
				pos("rs", "Right Striker", "RS", 75, 62),
			},
		},
		{
			ID:           "3-2-3-9v9",
			Name:         "3-2-3",
			GameFormatID: GameFormat9v9,
			Active:       true,
			Positions: []formation.Position{
				goalkeeper(),
				pos("lb", "Left Back", "LB", 28, 22),
				pos("cb", "Center Back", "CB", 25, 50),
				pos("rb", "Right Back", "RB", 28, 78),
				pos("lcm", "Left Center Midfield", "LCM", 48, 35),
				pos("rcm", "Right Center Midfield", "RCM", 48, 65),
				pos("lw", "Left Wing", "LW", 75, 18),
				pos("st", "Striker", "ST", 80, 50),
				pos("rw", "Right Wing", "RW", 75, 82),
			},
		},
		{
			ID:           "2-3-1-7v7",
			Name:         "2-3-1",
			GameFormatID: GameFormat7v7,
			Active:       true,
			Positions: []formation.Position{
				goalkeeper(),
				pos("lcb", "Left Center Back", "LCB", 28, 32),
				pos("rcb", "Right Center Back", "RCB", 28, 68),
				pos("lm", "Left Midfield", "LM", 50, 18),
				pos("cm", "Center Midfield", "CM", 50, 50),
				pos("rm", "Right Midfield", "RM", 50, 82),
				pos("st", "Striker", "ST", 75, 50),
			},
		},
		{
			ID:           "2-1-1-5v5",
			Name:         "2-1-1",
			GameFormatID: GameFormat5v5,
			Active:       true,
			Positions: []formation.Position{
				goalkeeper(),
				pos("lcb", "Left Center Back", "LCB", 30, 32),
				pos("rcb", "Right Center Back", "RCB", 30, 68),
				pos("cm", "Center Midfield", "CM", 52, 50),
				pos("st", "Striker", "ST", 75, 50),
			},
		},
	}
}

func goalkeeper() formation.Position {
	return pos("gk", "Goalkeeper", "GK", 10, 50)
}

func pos(id, name, abbreviation string, x, y float64) formation.Position {
	return formation.Position{ID: id, Name: name, Abbreviation: abbreviation, X: x, Y: y}
}
