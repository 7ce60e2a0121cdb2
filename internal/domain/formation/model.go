package formation

import "fmt"

// Position is one slot on a normalized field. X and Y are percentages in [0,100];
// X grows from the own goal line towards the opponent's.
type Position struct {
	ID           string
	Name         string
	Abbreviation string
	X            float64
	Y            float64
}

// PositionUpdate carries a partial edit. Nil fields are left untouched.
type PositionUpdate struct {
	Name         *string
	Abbreviation *string
	X            *float64
	Y            *float64
}

func (u PositionUpdate) IsEmpty() bool {
	return u.Name == nil && u.Abbreviation == nil && u.X == nil && u.Y == nil
}

// Apply merges the update into p and returns the result.
func (u PositionUpdate) Apply(p Position) Position {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Abbreviation != nil {
		p.Abbreviation = *u.Abbreviation
	}
	if u.X != nil {
		p.X = *u.X
	}
	if u.Y != nil {
		p.Y = *u.Y
	}
	return p
}

// Formation is a named arrangement of positions valid for one game format.
type Formation struct {
	ID           string
	Name         string
	GameFormatID string
	Active       bool
	Positions    []Position
}

func (f Formation) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("formation id is required")
	}
	if f.Name == "" {
		return fmt.Errorf("formation name is required")
	}
	if f.GameFormatID == "" {
		return fmt.Errorf("formation game format id is required")
	}
	if len(f.Positions) == 0 {
		return fmt.Errorf("formation positions are required")
	}

	seen := make(map[string]struct{}, len(f.Positions))
	for _, p := range f.Positions {
		if p.ID == "" {
			return fmt.Errorf("position id is required in formation %s", f.ID)
		}
		if _, exists := seen[p.ID]; exists {
			return fmt.Errorf("duplicate position id %s in formation %s", p.ID, f.ID)
		}
		seen[p.ID] = struct{}{}
	}

	return nil
}

// Clone returns a copy whose position slice is not shared with f.
func (f Formation) Clone() Formation {
	copied := f
	copied.Positions = ClonePositions(f.Positions)
	return copied
}

// ClonePositions copies a position list. A nil input yields an empty, non-nil slice.
func ClonePositions(items []Position) []Position {
	out := make([]Position, len(items))
	copy(out, items)
	return out
}
