package memory

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/team-manager/internal/domain/setupsession"
	"github.com/riskibarqy/team-manager/internal/domain/teamsetup"
)

func TestSessionRepository_PurgeExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := NewSessionRepository()
	catalog := SeedCatalog()

	_ = repo.Create(context.Background(), setupsession.New("old", TeamIDDemo, setupsession.ModeSetup, teamsetup.New(catalog), now.Add(-time.Hour), time.Minute))
	_ = repo.Create(context.Background(), setupsession.New("live", TeamIDDemo, setupsession.ModeSetup, teamsetup.New(catalog), now, time.Hour))

	purged, err := repo.PurgeExpired(context.Background(), now)
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if purged != 1 {
		t.Fatalf("expected 1 purged session, got %d", purged)
	}
	if len(repo.items) != 1 {
		t.Fatalf("expected one live session left, got %d", len(repo.items))
	}
}
