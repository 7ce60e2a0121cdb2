package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/lib/pq"
	"github.com/riskibarqy/team-manager/internal/domain/formation"
	"github.com/riskibarqy/team-manager/internal/domain/teamsetup"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(crerr.Wrap(sql.ErrNoRows, "get team")) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(fmt.Errorf("boom")) {
		t.Fatalf("expected unrelated error not to be not found")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Run("matches constraint", func(t *testing.T) {
		err := &pq.Error{Code: "23505", Constraint: teamsNameUniqueIndex}
		if !isUniqueViolation(crerr.Wrap(err, "insert team"), teamsNameUniqueIndex) {
			t.Fatalf("expected unique violation on %s", teamsNameUniqueIndex)
		}
	})

	t.Run("ignores other constraint", func(t *testing.T) {
		err := &pq.Error{Code: "23505", Constraint: "teams_public_id_key"}
		if isUniqueViolation(err, teamsNameUniqueIndex) {
			t.Fatalf("expected false for another constraint")
		}
	})

	t.Run("ignores other codes", func(t *testing.T) {
		err := &pq.Error{Code: "23503", Constraint: teamsNameUniqueIndex}
		if isUniqueViolation(err, "") {
			t.Fatalf("expected false for foreign key violation")
		}
	})
}

func TestConfigurationJSONB(t *testing.T) {
	cfg := teamsetup.Snapshot{
		GameFormatID: "7v7",
		FormationID:  "2-3-1-7v7",
		Positions: []formation.Position{
			{ID: "gk", Name: "Goalkeeper", Abbreviation: "GK", X: 12, Y: 48},
		},
	}

	raw, err := encodeConfiguration(cfg)
	if err != nil {
		t.Fatalf("encode configuration: %v", err)
	}

	got, err := decodeConfiguration(raw)
	if err != nil {
		t.Fatalf("decode configuration: %v", err)
	}
	if got == nil || got.FormationID != cfg.FormationID || got.Positions[0] != cfg.Positions[0] {
		t.Fatalf("unexpected decoded configuration: %+v", got)
	}

	empty, err := decodeConfiguration(nil)
	if err != nil || empty != nil {
		t.Fatalf("expected nil configuration for NULL column, got %+v err=%v", empty, err)
	}
}

func TestDecodePositions_RejectsMalformedJSON(t *testing.T) {
	if _, err := decodePositions([]byte(`{"id":`)); err == nil {
		t.Fatalf("expected error for malformed positions")
	}
}

func TestRecordResultQuery_IncrementsInPlace(t *testing.T) {
	query, args, err := recordResultQuery("team-demo", 1, 3)
	if err != nil {
		t.Fatalf("build record result query: %v", err)
	}

	wantQuery := "UPDATE teams SET played = played + $1, wins = wins + $2, draws = draws + $3, losses = losses + $4, " +
		"goals_for = goals_for + $5, goals_against = goals_against + $6, updated_at = NOW() " +
		"WHERE public_id = $7 AND deleted_at IS NULL " +
		"RETURNING played, wins, draws, losses, goals_for, goals_against"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}

	wantArgs := []any{1, 0, 0, 1, 1, 3, "team-demo"}
	if fmt.Sprint(args) != fmt.Sprint(wantArgs) {
		t.Fatalf("unexpected args: got=%v want=%v", args, wantArgs)
	}
}

func TestTeamStatsModel_ToDomain(t *testing.T) {
	got := teamStatsModel{Played: 3, Wins: 2, Draws: 1, GoalsFor: 7, GoalsAgainst: 2}.toDomain()
	if got.Points() != 7 || got.GoalDifference() != 5 {
		t.Fatalf("unexpected stats: %+v", got)
	}
}
