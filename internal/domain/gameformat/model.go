package gameformat

import "fmt"

// GameFormat is a named player-count and duration configuration such as 11v11.
type GameFormat struct {
	ID                 string
	Name               string
	Description        string
	PlayersPerTeam     int
	DurationMinutes    int
	AllowSubstitutions bool
	MaxSubstitutions   *int
}

func (f GameFormat) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("game format id is required")
	}
	if f.Name == "" {
		return fmt.Errorf("game format name is required")
	}
	if f.PlayersPerTeam <= 0 {
		return fmt.Errorf("players per team must be greater than zero")
	}
	if f.DurationMinutes <= 0 {
		return fmt.Errorf("duration minutes must be greater than zero")
	}
	if f.MaxSubstitutions != nil && *f.MaxSubstitutions < 0 {
		return fmt.Errorf("max substitutions cannot be negative")
	}

	return nil
}

// Clone returns a copy that does not share the optional substitution limit.
func (f GameFormat) Clone() GameFormat {
	copied := f
	if f.MaxSubstitutions != nil {
		limit := *f.MaxSubstitutions
		copied.MaxSubstitutions = &limit
	}
	return copied
}
