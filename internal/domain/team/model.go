package team

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/riskibarqy/team-manager/internal/domain/teamsetup"
)

const MaxNameLength = 100

var (
	ErrDuplicateName = errors.New("team name already exists")
	ErrNotFound      = errors.New("team not found")
)

// Team is a squad managed by a coach, with its saved field configuration.
type Team struct {
	ID            string
	Name          string
	Description   string
	Configuration *teamsetup.Snapshot
	Stats         Stats
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if utf8.RuneCountInString(t.Name) > MaxNameLength {
		return fmt.Errorf("team name must be at most %d characters", MaxNameLength)
	}

	return nil
}

func (t Team) HasConfiguration() bool {
	return t.Configuration != nil && !t.Configuration.IsEmpty()
}

// Clone returns a copy that does not share the saved configuration.
func (t Team) Clone() Team {
	copied := t
	if t.Configuration != nil {
		cfg := t.Configuration.Clone()
		copied.Configuration = &cfg
	}
	return copied
}

// Stats are cumulative match results.
type Stats struct {
	Played       int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
}

// Record adds one finished match to the totals.
func (s Stats) Record(goalsFor, goalsAgainst int) Stats {
	s.Played++
	s.GoalsFor += goalsFor
	s.GoalsAgainst += goalsAgainst
	switch {
	case goalsFor > goalsAgainst:
		s.Wins++
	case goalsFor < goalsAgainst:
		s.Losses++
	default:
		s.Draws++
	}
	return s
}

func (s Stats) Points() int {
	return s.Wins*3 + s.Draws
}

func (s Stats) GoalDifference() int {
	return s.GoalsFor - s.GoalsAgainst
}
