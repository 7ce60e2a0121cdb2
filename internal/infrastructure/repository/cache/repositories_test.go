package cache

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/team-manager/internal/domain/formation"
	"github.com/riskibarqy/team-manager/internal/domain/team"
	"github.com/riskibarqy/team-manager/internal/infrastructure/repository/memory"
	formationmock "github.com/riskibarqy/team-manager/internal/mocks/domain/formation"
	basecache "github.com/riskibarqy/team-manager/internal/platform/cache"
	"github.com/stretchr/testify/mock"
)

func TestFormationRepository_LoadsOnceAndIsolatesCallers(t *testing.T) {
	next := formationmock.NewRepository(t)
	next.On("ListByGameFormat", mock.Anything, "7v7").
		Return([]formation.Formation{{
			ID:           "2-3-1-7v7",
			GameFormatID: "7v7",
			Positions:    []formation.Position{{ID: "gk", X: 10, Y: 50}},
		}}, nil).
		Once()

	repo := NewFormationRepository(next, basecache.NewStore(time.Minute))

	first, err := repo.ListByGameFormat(context.Background(), "7v7")
	if err != nil {
		t.Fatalf("first list: %v", err)
	}
	first[0].Positions[0].X = 99

	second, err := repo.ListByGameFormat(context.Background(), "7v7")
	if err != nil {
		t.Fatalf("second list: %v", err)
	}
	if second[0].Positions[0].X != 10 {
		t.Fatalf("cached formation was mutated through a caller copy: %+v", second[0].Positions[0])
	}
}

func TestFormationRepository_CachesMissingLookups(t *testing.T) {
	next := formationmock.NewRepository(t)
	next.On("GetByID", mock.Anything, "missing").Return(formation.Formation{}, false, nil).Once()

	repo := NewFormationRepository(next, basecache.NewStore(time.Minute))
	for range 3 {
		if _, exists, err := repo.GetByID(context.Background(), "missing"); err != nil || exists {
			t.Fatalf("expected cached miss, exists=%t err=%v", exists, err)
		}
	}
}

func TestTeamRepository_WriteInvalidatesReads(t *testing.T) {
	ctx := context.Background()
	repo := NewTeamRepository(memory.NewTeamRepository(memory.SeedTeams()), basecache.NewStore(time.Minute))

	before, _, err := repo.GetByID(ctx, memory.TeamIDDemo)
	if err != nil {
		t.Fatalf("get team: %v", err)
	}

	if _, err := repo.RecordResult(ctx, memory.TeamIDDemo, 2, 0); err != nil {
		t.Fatalf("record result: %v", err)
	}

	after, _, err := repo.GetByID(ctx, memory.TeamIDDemo)
	if err != nil {
		t.Fatalf("get team after write: %v", err)
	}
	if before.Stats.Played != 0 || after.Stats.Played != 1 || after.Stats.Wins != 1 {
		t.Fatalf("expected fresh stats after write, before=%+v after=%+v", before.Stats, after.Stats)
	}
}

// writeDuringReadRepository records a result while serving its first read, so the
// read returns pre-write data that overlaps the write's invalidation.
type writeDuringReadRepository struct {
	team.Repository
	writer team.Repository
	once   bool
}

func (r *writeDuringReadRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	item, exists, err := r.Repository.GetByID(ctx, teamID)
	if !r.once {
		r.once = true
		if _, werr := r.writer.RecordResult(ctx, teamID, 1, 0); werr != nil {
			return team.Team{}, false, werr
		}
	}
	return item, exists, err
}

func TestTeamRepository_ReadOverlappingWriteIsNotCached(t *testing.T) {
	ctx := context.Background()
	backing := memory.NewTeamRepository(memory.SeedTeams())
	next := &writeDuringReadRepository{Repository: backing}
	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))
	next.writer = repo

	stale, _, err := repo.GetByID(ctx, memory.TeamIDDemo)
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if stale.Stats.Played != 0 {
		t.Fatalf("expected first read to see pre-write stats, got %+v", stale.Stats)
	}

	fresh, _, err := repo.GetByID(ctx, memory.TeamIDDemo)
	if err != nil {
		t.Fatalf("get team again: %v", err)
	}
	if fresh.Stats.Played != 1 {
		t.Fatalf("stale read was cached: %+v", fresh.Stats)
	}
}
