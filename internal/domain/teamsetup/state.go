package teamsetup

import (
	"github.com/riskibarqy/team-manager/internal/domain/formation"
	"github.com/riskibarqy/team-manager/internal/domain/gameformat"
)

// Phase is the coarse state of a team configuration.
type Phase string

const (
	PhaseEmpty             Phase = "empty"
	PhaseFormatSelected    Phase = "format_selected"
	PhaseFormationSelected Phase = "formation_selected"
)

// Snapshot is the plain-data view of a State handed to persistence.
// Empty ids mean "not selected".
type Snapshot struct {
	GameFormatID string
	FormationID  string
	Positions    []formation.Position
}

func (s Snapshot) IsEmpty() bool {
	return s.GameFormatID == "" && s.FormationID == "" && len(s.Positions) == 0
}

func (s Snapshot) Clone() Snapshot {
	copied := s
	copied.Positions = formation.ClonePositions(s.Positions)
	return copied
}

// State tracks the in-progress game format, formation and position edits of one
// editing session. It is not safe for concurrent use; callers confine a State to
// a single owner.
//
// Lookups that find nothing are silent no-ops.
type State struct {
	catalog Catalog

	gameFormatID  string
	hasGameFormat bool
	formationID   string
	hasFormation  bool
	positions     []formation.Position
}

// New returns an empty State reading from catalog.
func New(catalog Catalog) *State {
	return &State{
		catalog:   NewCatalog(catalog.GameFormats, catalog.Formations),
		positions: []formation.Position{},
	}
}

// GameFormats returns the full game format table in table order.
func (s *State) GameFormats() []gameformat.GameFormat {
	out := make([]gameformat.GameFormat, 0, len(s.catalog.GameFormats))
	for _, f := range s.catalog.GameFormats {
		out = append(out, f.Clone())
	}
	return out
}

// FormationsForSelectedFormat returns the formations of the selected game format,
// or an empty list when no format is selected.
func (s *State) FormationsForSelectedFormat() []formation.Formation {
	if !s.hasGameFormat {
		return []formation.Formation{}
	}
	return s.catalog.FormationsFor(s.gameFormatID)
}

// SelectGameFormat selects formatID without checking it against the catalog.
// The formation and positions are always cleared, even when formatID is unchanged.
func (s *State) SelectGameFormat(formatID string) {
	s.gameFormatID = formatID
	s.hasGameFormat = true
	s.clearFormation()
}

// SelectFormation looks formationID up in the whole formation table, not only the
// selected format's, and replaces positions with a fresh copy of its template.
func (s *State) SelectFormation(formationID string) {
	item, ok := s.catalog.Formation(formationID)
	if !ok {
		return
	}

	s.formationID = item.ID
	s.hasFormation = true
	s.positions = formation.ClonePositions(item.Positions)
}

// UpdatePosition merges u into every working position whose id is positionID.
func (s *State) UpdatePosition(positionID string, u formation.PositionUpdate) {
	for i := range s.positions {
		if s.positions[i].ID == positionID {
			s.positions[i] = u.Apply(s.positions[i])
		}
	}
}

// AddPosition appends p. Id uniqueness is the caller's responsibility.
func (s *State) AddPosition(p formation.Position) {
	s.positions = append(s.positions, p)
}

// RemovePosition drops every working position whose id is positionID.
func (s *State) RemovePosition(positionID string) {
	kept := make([]formation.Position, 0, len(s.positions))
	for _, p := range s.positions {
		if p.ID != positionID {
			kept = append(kept, p)
		}
	}
	s.positions = kept
}

// Reset returns the State to its initial empty value.
func (s *State) Reset() {
	s.gameFormatID = ""
	s.hasGameFormat = false
	s.clearFormation()
}

func (s *State) SelectedGameFormatID() (string, bool) {
	return s.gameFormatID, s.hasGameFormat
}

func (s *State) SelectedFormationID() (string, bool) {
	return s.formationID, s.hasFormation
}

// Positions returns a copy of the working position list.
func (s *State) Positions() []formation.Position {
	return formation.ClonePositions(s.positions)
}

func (s *State) Phase() Phase {
	switch {
	case s.hasFormation:
		return PhaseFormationSelected
	case s.hasGameFormat:
		return PhaseFormatSelected
	default:
		return PhaseEmpty
	}
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		GameFormatID: s.gameFormatID,
		FormationID:  s.formationID,
		Positions:    formation.ClonePositions(s.positions),
	}
}

// Restore loads a previously saved configuration. The catalog is not consulted, so
// positions edited before the save survive as they were.
func (s *State) Restore(snap Snapshot) {
	s.Reset()
	if snap.GameFormatID == "" {
		return
	}

	s.gameFormatID = snap.GameFormatID
	s.hasGameFormat = true
	if snap.FormationID == "" {
		return
	}

	s.formationID = snap.FormationID
	s.hasFormation = true
	s.positions = formation.ClonePositions(snap.Positions)
}

func (s *State) clearFormation() {
	s.formationID = ""
	s.hasFormation = false
	s.positions = []formation.Position{}
}
