package team

import (
	"strings"
	"testing"

	"github.com/riskibarqy/team-manager/internal/domain/formation"
	"github.com/riskibarqy/team-manager/internal/domain/teamsetup"
)

func TestTeam_Validate(t *testing.T) {
	cases := []struct {
		name    string
		item    Team
		wantErr bool
	}{
		{name: "valid", item: Team{ID: "t1", Name: "Riverside FC"}},
		{name: "missing id", item: Team{Name: "Riverside FC"}, wantErr: true},
		{name: "missing name", item: Team{ID: "t1"}, wantErr: true},
		{name: "name too long", item: Team{ID: "t1", Name: strings.Repeat("a", MaxNameLength+1)}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.item.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestStats_Record(t *testing.T) {
	var stats Stats
	stats = stats.Record(3, 1)
	stats = stats.Record(0, 0)
	stats = stats.Record(1, 2)

	want := Stats{Played: 3, Wins: 1, Draws: 1, Losses: 1, GoalsFor: 4, GoalsAgainst: 3}
	if stats != want {
		t.Fatalf("unexpected stats:\nwant: %+v\ngot:  %+v", want, stats)
	}
	if stats.Points() != 4 {
		t.Fatalf("unexpected points: %d", stats.Points())
	}
	if stats.GoalDifference() != 1 {
		t.Fatalf("unexpected goal difference: %d", stats.GoalDifference())
	}
}

func TestTeam_CloneDoesNotShareConfiguration(t *testing.T) {
	original := Team{
		ID:   "t1",
		Name: "Riverside FC",
		Configuration: &teamsetup.Snapshot{
			GameFormatID: "5v5",
			FormationID:  "2-1-1-5v5",
			Positions:    []formation.Position{{ID: "gk", Name: "Goalkeeper", Abbreviation: "GK", X: 10, Y: 50}},
		},
	}

	copied := original.Clone()
	copied.Configuration.Positions[0].X = 90

	if original.Configuration.Positions[0].X != 10 {
		t.Fatalf("clone shares configuration positions")
	}
	if !original.HasConfiguration() {
		t.Fatalf("expected configuration to be present")
	}
}
