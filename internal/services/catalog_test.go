package services_test

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/abrezinsky/skinvault/internal/errors"
	"github.com/abrezinsky/skinvault/internal/loadout"
	"github.com/abrezinsky/skinvault/internal/logger"
	"github.com/abrezinsky/skinvault/internal/repository/mock"
	"github.com/abrezinsky/skinvault/internal/services"
	"github.com/abrezinsky/skinvault/internal/testutil"
	"github.com/abrezinsky/skinvault/pkg/skinapi"
)

const mockCatalogSize = 23 // DefaultMockSkins + DefaultMockAgents

func newCatalogService(t *testing.T, opts ...skinapi.MockOption) *services.CatalogService {
	t.Helper()
	repo := testutil.NewTestRepository(t)
	return services.NewCatalogService(logger.Discard(), repo, skinapi.NewMockClient(opts...), loadout.DefaultCatalog())
}

func seededCatalogService(t *testing.T) *services.CatalogService {
	t.Helper()
	svc := newCatalogService(t)
	if _, err := svc.SeedMockCatalog(context.Background()); err != nil {
		t.Fatalf("SeedMockCatalog failed: %v", err)
	}
	return svc
}

func TestCatalogService_SeedMockCatalog(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	added, err := svc.SeedMockCatalog(ctx)
	if err != nil {
		t.Fatalf("SeedMockCatalog failed: %v", err)
	}
	if added != mockCatalogSize {
		t.Errorf("expected %d skins added, got %d", mockCatalogSize, added)
	}

	// Seeding again only updates
	added, err = svc.SeedMockCatalog(ctx)
	if err != nil {
		t.Fatalf("second SeedMockCatalog failed: %v", err)
	}
	if added != 0 {
		t.Errorf("expected 0 skins added on reseed, got %d", added)
	}

	skins, err := svc.ListSkins(ctx)
	if err != nil {
		t.Fatalf("ListSkins failed: %v", err)
	}
	if len(skins) != mockCatalogSize {
		t.Errorf("expected %d skins, got %d", mockCatalogSize, len(skins))
	}
}

func TestCatalogService_SeedMockCatalog_RepoError(t *testing.T) {
	mockRepo := mock.NewRepository(testutil.NewTestRepository(t))
	mockRepo.UpsertSkinError = errors.New("database error")
	svc := services.NewCatalogService(logger.Discard(), mockRepo, skinapi.NewMockClient(), loadout.DefaultCatalog())

	added, err := svc.SeedMockCatalog(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if added != 0 {
		t.Errorf("expected 0 added, got %d", added)
	}
}

func TestCatalogService_Sections(t *testing.T) {
	svc := newCatalogService(t)

	sections := svc.Sections()
	if len(sections) == 0 {
		t.Fatal("expected sections")
	}
	if sections[0].Slots[0].Key != "knife" {
		t.Errorf("expected first slot to be knife, got %q", sections[0].Slots[0].Key)
	}
}

func TestCatalogService_GetSkin(t *testing.T) {
	svc := seededCatalogService(t)
	ctx := context.Background()

	skins, _ := svc.ListSkins(ctx)
	skin, err := svc.GetSkin(ctx, skins[0].ID)
	if err != nil {
		t.Fatalf("GetSkin failed: %v", err)
	}
	if skin.Name != skins[0].Name {
		t.Errorf("expected %q, got %q", skins[0].Name, skin.Name)
	}

	if _, err := svc.GetSkin(ctx, 99999); err != services.ErrSkinNotFound {
		t.Errorf("expected ErrSkinNotFound, got %v", err)
	}
}

func TestCatalogService_SearchSkins(t *testing.T) {
	svc := seededCatalogService(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		query     string
		limit     int
		wantCount int
		wantFirst string
	}{
		{"empty query lists all", "", 0, mockCatalogSize, ""},
		{"substring matches", "awp", 0, 2, ""},
		{"substring is case insensitive", "DRAGON", 0, 2, ""},
		{"limit applies", "awp", 1, 1, ""},
		{"folds case around symbols", "★ KARAMBIT", 0, 1, "★ Karambit | Fade"},
		{"typo still matches", "ak47 redline", 0, 1, "AK-47 | Redline"},
		{"nothing close", "qqqqqqqqqqqqqqqqqq", 0, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skins, err := svc.SearchSkins(ctx, tt.query, tt.limit)
			if err != nil {
				t.Fatalf("SearchSkins failed: %v", err)
			}
			if len(skins) != tt.wantCount {
				t.Fatalf("expected %d results, got %d", tt.wantCount, len(skins))
			}
			if tt.wantFirst != "" && skins[0].Name != tt.wantFirst {
				t.Errorf("expected first result %q, got %q", tt.wantFirst, skins[0].Name)
			}
		})
	}
}

func TestCatalogService_SearchSkins_SubstringBeforeFuzzy(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	testutil.SeedSkin(t, repo, "AWP | Asiimov", "AWP", "Rifles")
	testutil.SeedSkin(t, repo, "P90 | Asiimov", "P90", "SMGs")
	testutil.SeedSkin(t, repo, "AWP | Asimov", "AWP", "Rifles")
	svc := services.NewCatalogService(logger.Discard(), repo, skinapi.NewMockClient(), loadout.DefaultCatalog())

	skins, err := svc.SearchSkins(context.Background(), "awp | asiimov", 0)
	if err != nil {
		t.Fatalf("SearchSkins failed: %v", err)
	}
	if len(skins) < 2 {
		t.Fatalf("expected at least 2 results, got %d", len(skins))
	}
	if skins[0].Name != "AWP | Asiimov" {
		t.Errorf("expected exact substring first, got %q", skins[0].Name)
	}
	if skins[1].Name != "AWP | Asimov" {
		t.Errorf("expected closest fuzzy match second, got %q", skins[1].Name)
	}
}

func TestCatalogService_SearchSkins_RepoError(t *testing.T) {
	mockRepo := mock.NewRepository(testutil.NewTestRepository(t))
	mockRepo.ListSkinsError = errors.New("database error")
	svc := services.NewCatalogService(logger.Discard(), mockRepo, skinapi.NewMockClient(), loadout.DefaultCatalog())

	if _, err := svc.SearchSkins(context.Background(), "awp", 0); err == nil {
		t.Error("expected error")
	}
}

func TestCatalogService_FindSkinByName(t *testing.T) {
	svc := seededCatalogService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		input    string
		want     string
		wantKind apperrors.Kind
		wantErr  bool
	}{
		{"exact", "AWP | Dragon Lore", "AWP | Dragon Lore", 0, false},
		{"case insensitive", "awp | dragon lore", "AWP | Dragon Lore", 0, false},
		{"surrounding spaces", "  P90 | Asiimov  ", "P90 | Asiimov", 0, false},
		{"one typo", "AWP | Asimov", "AWP | Asiimov", 0, false},
		{"empty", "   ", "", apperrors.ErrValidation, true},
		{"no match", "Completely Unknown Thing", "", apperrors.ErrNotFound, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skin, err := svc.FindSkinByName(ctx, tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", skin.Name)
				}
				if kind := apperrors.KindOf(err); kind != tt.wantKind {
					t.Errorf("expected kind %v, got %v", tt.wantKind, kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("FindSkinByName failed: %v", err)
			}
			if skin.Name != tt.want {
				t.Errorf("expected %q, got %q", tt.want, skin.Name)
			}
		})
	}
}

func TestCatalogService_FindSkinByName_RepoErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("lookup error", func(t *testing.T) {
		mockRepo := mock.NewRepository(testutil.NewTestRepository(t))
		mockRepo.GetSkinByNameError = errors.New("database error")
		svc := services.NewCatalogService(logger.Discard(), mockRepo, skinapi.NewMockClient(), loadout.DefaultCatalog())

		if _, err := svc.FindSkinByName(ctx, "AWP | Asiimov"); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("list error", func(t *testing.T) {
		mockRepo := mock.NewRepository(testutil.NewTestRepository(t))
		mockRepo.ListSkinsError = errors.New("database error")
		svc := services.NewCatalogService(logger.Discard(), mockRepo, skinapi.NewMockClient(), loadout.DefaultCatalog())

		if _, err := svc.FindSkinByName(ctx, "AWP | Asiimov"); err == nil {
			t.Error("expected error")
		}
	})
}

func TestCatalogService_SlotSkins(t *testing.T) {
	svc := seededCatalogService(t)
	ctx := context.Background()

	knives, err := svc.SlotSkins(ctx, "knife")
	if err != nil {
		t.Fatalf("SlotSkins(knife) failed: %v", err)
	}
	if len(knives.Items) != 2 {
		t.Errorf("expected 2 knives, got %d", len(knives.Items))
	}
	if len(knives.Groups) != 2 {
		t.Errorf("expected 2 knife groups, got %d", len(knives.Groups))
	}

	aks, err := svc.SlotSkins(ctx, "ak-47")
	if err != nil {
		t.Fatalf("SlotSkins(ak-47) failed: %v", err)
	}
	if len(aks.Items) != 2 {
		t.Errorf("expected 2 AK-47 skins, got %d", len(aks.Items))
	}
	if aks.Groups != nil {
		t.Error("expected weapon slots to be ungrouped")
	}

	agents, err := svc.SlotSkins(ctx, "agent")
	if err != nil {
		t.Fatalf("SlotSkins(agent) failed: %v", err)
	}
	if len(agents.Items) != 4 {
		t.Errorf("expected 4 agents, got %d", len(agents.Items))
	}

	_, err = svc.SlotSkins(ctx, "bazooka")
	if !apperrors.IsNotFound(err) {
		t.Errorf("expected not found for unknown slot, got %v", err)
	}
}

func TestCatalogService_SyncFromAPI(t *testing.T) {
	client := skinapi.NewMockClient()
	repo := testutil.NewTestRepository(t)
	svc := services.NewCatalogService(logger.Discard(), repo, client, loadout.DefaultCatalog())
	ctx := context.Background()

	result, err := svc.SyncFromAPI(ctx, "http://catalog.local")
	if err != nil {
		t.Fatalf("SyncFromAPI failed: %v", err)
	}
	if result.Created != mockCatalogSize {
		t.Errorf("expected %d created, got %d", mockCatalogSize, result.Created)
	}
	if result.Total != mockCatalogSize {
		t.Errorf("expected total %d, got %d", mockCatalogSize, result.Total)
	}
	if client.BaseURL() != "http://catalog.local" {
		t.Errorf("expected client base URL to be updated, got %q", client.BaseURL())
	}

	// Second sync updates in place
	result, err = svc.SyncFromAPI(ctx, "http://catalog.local")
	if err != nil {
		t.Fatalf("second SyncFromAPI failed: %v", err)
	}
	if result.Created != 0 || result.Updated != mockCatalogSize {
		t.Errorf("expected 0 created and %d updated, got %+v", mockCatalogSize, result)
	}

	karambit, err := repo.GetSkinByName(ctx, "★ Karambit | Fade")
	if err != nil {
		t.Fatalf("GetSkinByName failed: %v", err)
	}
	if karambit.Type != "Knife" {
		t.Errorf("expected knife type, got %q", karambit.Type)
	}
}

func TestCatalogService_SyncFromAPI_NoURL(t *testing.T) {
	svc := newCatalogService(t)

	_, err := svc.SyncFromAPI(context.Background(), "")
	if err != services.ErrCatalogURLNotConfigured {
		t.Errorf("expected ErrCatalogURLNotConfigured, got %v", err)
	}
}

func TestCatalogService_SyncFromAPI_SkinsError(t *testing.T) {
	svc := newCatalogService(t, skinapi.WithSkinsError(errors.New("connection refused")))

	if _, err := svc.SyncFromAPI(context.Background(), "http://catalog.local"); err == nil {
		t.Error("expected error when skins cannot be fetched")
	}
}

func TestCatalogService_SyncFromAPI_AgentsErrorKeepsSkins(t *testing.T) {
	svc := newCatalogService(t, skinapi.WithAgentsError(errors.New("404")))

	result, err := svc.SyncFromAPI(context.Background(), "http://catalog.local")
	if err != nil {
		t.Fatalf("SyncFromAPI failed: %v", err)
	}
	if result.Created != len(skinapi.DefaultMockSkins()) {
		t.Errorf("expected %d created, got %d", len(skinapi.DefaultMockSkins()), result.Created)
	}
}

func TestCatalogService_SyncFromAPI_SkipsNamelessItems(t *testing.T) {
	svc := newCatalogService(t,
		skinapi.WithSkins([]skinapi.Item{{ID: "1", Name: "AWP | Asiimov"}, {ID: "2", Name: "  "}}),
		skinapi.WithAgents(nil),
	)

	result, err := svc.SyncFromAPI(context.Background(), "http://catalog.local")
	if err != nil {
		t.Fatalf("SyncFromAPI failed: %v", err)
	}
	if result.Created != 1 || result.Skipped != 1 {
		t.Errorf("expected 1 created and 1 skipped, got %+v", result)
	}
}

func TestCatalogService_SyncFromAPI_UpsertError(t *testing.T) {
	mockRepo := mock.NewRepository(testutil.NewTestRepository(t))
	mockRepo.UpsertSkinError = errors.New("database error")
	svc := services.NewCatalogService(logger.Discard(), mockRepo, skinapi.NewMockClient(), loadout.DefaultCatalog())

	result, err := svc.SyncFromAPI(context.Background(), "http://catalog.local")
	if err == nil {
		t.Fatal("expected error")
	}
	if result.Errors != mockCatalogSize {
		t.Errorf("expected %d errors, got %d", mockCatalogSize, result.Errors)
	}
}

func TestSkinFromAPI(t *testing.T) {
	tests := []struct {
		name     string
		item     skinapi.Item
		wantType string
	}{
		{"knife", skinapi.Item{Name: "★ Karambit | Fade", Category: &skinapi.Ref{Name: "Knives"}}, "Knife"},
		{"gloves", skinapi.Item{Name: "★ Sport Gloves | Vice", Category: &skinapi.Ref{Name: "Gloves"}}, "Gloves"},
		{"agent category", skinapi.Item{Name: "Agent | FBI", Category: &skinapi.Ref{Name: "Agents"}}, "Agent"},
		{"agent by team", skinapi.Item{Name: "Agent | SAS", Team: &skinapi.Ref{Name: "counter-terrorists"}}, "Agent"},
		{"rifle", skinapi.Item{Name: "AK-47 | Redline", Weapon: &skinapi.Ref{Name: "AK-47"}, Category: &skinapi.Ref{Name: "Rifles"}}, "Rifles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skin := services.SkinFromAPI(tt.item)
			if skin.Type != tt.wantType {
				t.Errorf("expected type %q, got %q", tt.wantType, skin.Type)
			}
			if skin.Name != tt.item.Name {
				t.Errorf("expected name %q, got %q", tt.item.Name, skin.Name)
			}
		})
	}
}
