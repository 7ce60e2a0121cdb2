package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/riskibarqy/team-manager/internal/domain/formation"
	"github.com/riskibarqy/team-manager/internal/domain/team"
	"github.com/riskibarqy/team-manager/internal/domain/teamsetup"
)

func TestTeamRepository_CreateRejectsDuplicateName(t *testing.T) {
	repo := NewTeamRepository(SeedTeams())

	err := repo.Create(context.Background(), team.Team{ID: "t2", Name: "riverside juniors"})
	if !errors.Is(err, team.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestTeamRepository_SaveConfigurationIsIsolated(t *testing.T) {
	repo := NewTeamRepository(SeedTeams())
	cfg := teamsetup.Snapshot{
		GameFormatID: teamsetup.GameFormat5v5,
		FormationID:  "2-1-1-5v5",
		Positions:    []formation.Position{{ID: "gk", Name: "Goalkeeper", Abbreviation: "GK", X: 10, Y: 50}},
	}

	if err := repo.SaveConfiguration(context.Background(), TeamIDDemo, cfg); err != nil {
		t.Fatalf("save configuration: %v", err)
	}
	cfg.Positions[0].X = 80

	item, exists, err := repo.GetByID(context.Background(), TeamIDDemo)
	if err != nil || !exists {
		t.Fatalf("get team: exists=%t err=%v", exists, err)
	}
	if item.Configuration == nil || item.Configuration.Positions[0].X != 10 {
		t.Fatalf("stored configuration was mutated through caller slice: %+v", item.Configuration)
	}
}

func TestTeamRepository_DeleteKeepsOrder(t *testing.T) {
	repo := NewTeamRepository([]team.Team{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B"},
		{ID: "c", Name: "C"},
	})

	if err := repo.Delete(context.Background(), "b"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	items, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 || items[0].ID != "a" || items[1].ID != "c" {
		t.Fatalf("unexpected teams after delete: %+v", items)
	}
}

func TestTeamRepository_WritesToMissingTeam(t *testing.T) {
	repo := NewTeamRepository(SeedTeams())
	ctx := context.Background()

	if err := repo.SaveConfiguration(ctx, "team-missing", teamsetup.Snapshot{GameFormatID: teamsetup.GameFormat5v5}); !errors.Is(err, team.ErrNotFound) {
		t.Fatalf("expected ErrNotFound from SaveConfiguration, got %v", err)
	}
	if _, err := repo.RecordResult(ctx, "team-missing", 1, 0); !errors.Is(err, team.ErrNotFound) {
		t.Fatalf("expected ErrNotFound from RecordResult, got %v", err)
	}
}

func TestTeamRepository_RecordResultIsAtomic(t *testing.T) {
	repo := NewTeamRepository(SeedTeams())
	const results = 50

	var wg sync.WaitGroup
	for i := 0; i < results; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.RecordResult(context.Background(), TeamIDDemo, 1, 0); err != nil {
				t.Errorf("record result: %v", err)
			}
		}()
	}
	wg.Wait()

	item, _, err := repo.GetByID(context.Background(), TeamIDDemo)
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if item.Stats.Played != results || item.Stats.Wins != results || item.Stats.GoalsFor != results {
		t.Fatalf("unexpected stats after concurrent results: %+v", item.Stats)
	}
}
