package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/team-manager/internal/domain/formation"
	"github.com/riskibarqy/team-manager/internal/domain/gameformat"
	"github.com/riskibarqy/team-manager/internal/domain/teamsetup"
	"github.com/riskibarqy/team-manager/internal/infrastructure/repository/memory"
	formationmock "github.com/riskibarqy/team-manager/internal/mocks/domain/formation"
	gameformatmock "github.com/riskibarqy/team-manager/internal/mocks/domain/gameformat"
	"github.com/stretchr/testify/mock"
)

func newMemoryCatalogService() *CatalogService {
	catalog := memory.SeedCatalog()
	return NewCatalogService(
		memory.NewGameFormatRepository(catalog.GameFormats),
		memory.NewFormationRepository(catalog.Formations),
		2,
		nil,
	)
}

func TestCatalogService_ListFormations_FiltersByFormat(t *testing.T) {
	service := newMemoryCatalogService()

	items, err := service.ListFormations(t.Context(), teamsetup.GameFormat7v7)
	if err != nil {
		t.Fatalf("list formations: %v", err)
	}
	if len(items) != 1 || items[0].ID != "2-3-1-7v7" {
		t.Fatalf("unexpected 7v7 formations: %+v", items)
	}

	all, err := service.ListFormations(t.Context(), "  ")
	if err != nil {
		t.Fatalf("list all formations: %v", err)
	}
	if len(all) != len(memory.SeedCatalog().Formations) {
		t.Fatalf("expected every formation for empty format id, got %d", len(all))
	}
}

func TestCatalogService_ListFormations_UnknownFormat(t *testing.T) {
	service := newMemoryCatalogService()

	_, err := service.ListFormations(t.Context(), "3v3")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogService_GetFormation(t *testing.T) {
	service := newMemoryCatalogService()

	if _, err := service.GetFormation(t.Context(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty id, got %v", err)
	}
	if _, err := service.GetFormation(t.Context(), "9-9-9"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}

	item, err := service.GetFormation(t.Context(), "4-4-2-11v11")
	if err != nil {
		t.Fatalf("get formation: %v", err)
	}
	if len(item.Positions) != 11 {
		t.Fatalf("expected 11 positions, got %d", len(item.Positions))
	}
}

func TestCatalogService_Catalog_BuildsFromRepositoriesUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	formatRepo := gameformatmock.NewRepository(t)
	formationRepo := formationmock.NewRepository(t)

	formats := []gameformat.GameFormat{{ID: "7v7", Name: "7v7", PlayersPerTeam: 7}}
	formations := []formation.Formation{{ID: "f1", Name: "F1", GameFormatID: "7v7", Positions: []formation.Position{{ID: "gk"}}}}

	formatRepo.On("List", mock.Anything).Return(formats, nil).Once()
	formationRepo.On("List", mock.Anything).Return(formations, nil).Once()

	service := NewCatalogService(formatRepo, formationRepo, 1, nil)
	got, err := service.Catalog(ctx)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	if _, ok := got.Formation("f1"); !ok {
		t.Fatalf("expected formation f1 in catalog")
	}
	if len(got.FormationsFor("7v7")) != 1 {
		t.Fatalf("expected one formation for 7v7")
	}
}

func TestCatalogService_Warmup_ReadsEveryFormatUsingMockery(t *testing.T) {
	t.Parallel()

	formatRepo := gameformatmock.NewRepository(t)
	formationRepo := formationmock.NewRepository(t)

	formats := []gameformat.GameFormat{{ID: "11v11"}, {ID: "7v7"}, {ID: "5v5"}}
	formatRepo.On("List", mock.Anything).Return(formats, nil).Once()
	formationRepo.On("List", mock.Anything).Return([]formation.Formation{}, nil).Once()
	for _, f := range formats {
		formationRepo.On("ListByGameFormat", mock.Anything, f.ID).Return([]formation.Formation{}, nil).Once()
	}

	service := NewCatalogService(formatRepo, formationRepo, 2, nil)
	if err := service.Warmup(t.Context()); err != nil {
		t.Fatalf("warmup: %v", err)
	}
}

func TestCatalogService_Warmup_ReportsLoadFailureUsingMockery(t *testing.T) {
	t.Parallel()

	formatRepo := gameformatmock.NewRepository(t)
	formationRepo := formationmock.NewRepository(t)
	loadErr := errors.New("connection reset")

	formatRepo.On("List", mock.Anything).Return([]gameformat.GameFormat{{ID: "7v7"}}, nil).Once()
	formationRepo.On("List", mock.Anything).Return([]formation.Formation{}, nil).Once()
	formationRepo.On("ListByGameFormat", mock.Anything, "7v7").Return(nil, loadErr).Once()

	service := NewCatalogService(formatRepo, formationRepo, 4, nil)
	err := service.Warmup(t.Context())
	if !errors.Is(err, loadErr) {
		t.Fatalf("expected wrapped load error, got %v", err)
	}
}
