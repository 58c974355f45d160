package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"

	"github.com/abrezinsky/skinvault/internal/errors"
	"github.com/abrezinsky/skinvault/internal/loadout"
	"github.com/abrezinsky/skinvault/internal/logger"
	"github.com/abrezinsky/skinvault/internal/models"
	"github.com/abrezinsky/skinvault/internal/repository"
	"github.com/abrezinsky/skinvault/pkg/skinapi"
)

// CatalogService handles the skin catalog and the slot layout
type CatalogService struct {
	log     logger.Logger
	repo    repository.SkinRepository
	client  skinapi.Client
	catalog *loadout.Catalog
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(log logger.Logger, repo repository.SkinRepository, client skinapi.Client, catalog *loadout.Catalog) *CatalogService {
	return &CatalogService{
		log:     log,
		repo:    repo,
		client:  client,
		catalog: catalog,
	}
}

// Sections returns the slot layout in display order
func (s *CatalogService) Sections() []loadout.Section {
	return s.catalog.Sections()
}

// ListSkins returns the whole catalog
func (s *CatalogService) ListSkins(ctx context.Context) ([]models.Skin, error) {
	return s.repo.ListSkins(ctx)
}

// GetSkin returns a catalog skin by ID
func (s *CatalogService) GetSkin(ctx context.Context, id int64) (*models.Skin, error) {
	skin, err := s.repo.GetSkin(ctx, id)
	if err == repository.ErrNotFound {
		return nil, ErrSkinNotFound
	}
	return skin, err
}

// SearchSkins ranks catalog skins against query. Substring matches come
// first, then names within a small edit distance. An empty query lists
// everything. limit <= 0 means no limit.
func (s *CatalogService) SearchSkins(ctx context.Context, query string, limit int) ([]models.Skin, error) {
	skins, err := s.repo.ListSkins(ctx)
	if err != nil {
		return nil, err
	}

	q := foldName(query)
	if q != "" {
		skins = rankSkins(skins, q)
	}
	if limit > 0 && len(skins) > limit {
		skins = skins[:limit]
	}
	return skins, nil
}

type rankedSkin struct {
	skin  models.Skin
	tier  int
	score int
}

func rankSkins(skins []models.Skin, q string) []models.Skin {
	maxDist := maxEditDistance(q)
	var ranked []rankedSkin
	for _, skin := range skins {
		name := foldName(skin.Name)
		if strings.Contains(name, q) {
			ranked = append(ranked, rankedSkin{skin: skin, tier: 0, score: utf8.RuneCountInString(name)})
			continue
		}
		if d := levenshtein.ComputeDistance(q, name); d <= maxDist {
			ranked = append(ranked, rankedSkin{skin: skin, tier: 1, score: d})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].tier != ranked[j].tier {
			return ranked[i].tier < ranked[j].tier
		}
		return ranked[i].score < ranked[j].score
	})

	out := make([]models.Skin, len(ranked))
	for i, r := range ranked {
		out[i] = r.skin
	}
	return out
}

// foldName case-folds a skin name for comparison
func foldName(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// maxEditDistance allows roughly one typo per four characters
func maxEditDistance(q string) int {
	return utf8.RuneCountInString(q)/4 + 1
}

// FindSkinByName resolves a typed skin name to a catalog skin. An exact
// (case-insensitive) match wins; otherwise the closest name within the edit
// distance budget is used.
func (s *CatalogService) FindSkinByName(ctx context.Context, name string) (*models.Skin, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.Validation("skin name is required")
	}

	skin, err := s.repo.GetSkinByName(ctx, name)
	if err == nil {
		return skin, nil
	}
	if err != repository.ErrNotFound {
		return nil, err
	}

	skins, err := s.repo.ListSkins(ctx)
	if err != nil {
		return nil, err
	}

	q := foldName(name)
	best, bestDist := -1, maxEditDistance(q)+1
	for i, candidate := range skins {
		d := levenshtein.ComputeDistance(q, foldName(candidate.Name))
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return nil, errors.NotFoundf("no skin named %q", name)
	}

	s.log.Debug("Fuzzy skin match", "query", name, "match", skins[best].Name, "distance", bestDist)
	return &skins[best], nil
}

// SlotSkins lists the catalog skins eligible for a slot, for manual picking
type SlotSkins struct {
	Slot   *loadout.Slot         `json:"slot"`
	Items  []loadout.CatalogItem `json:"items"`
	Groups []loadout.ItemGroup   `json:"groups,omitempty"`
}

// SlotSkins returns the catalog skins that fit slotKey. Knife and glove slots
// are also grouped by base name.
func (s *CatalogService) SlotSkins(ctx context.Context, slotKey string) (*SlotSkins, error) {
	slot, ok := s.catalog.Slot(slotKey)
	if !ok {
		return nil, errors.NotFoundf("unknown slot %q", slotKey)
	}

	skins, err := s.repo.ListSkins(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]loadout.CatalogItem, len(skins))
	for i, skin := range skins {
		items[i] = loadout.ItemFromSkin(skin)
	}

	result := &SlotSkins{Slot: slot, Items: loadout.ItemsForSlot(slot, items)}
	if slot.Grouped {
		result.Groups = loadout.GroupItems(result.Items)
	}
	return result, nil
}

// SyncResult contains the result of a catalog sync
type SyncResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
	Errors  int `json:"errors"`
	Total   int `json:"total"`
}

// SyncFromAPI pulls skins and agents from the external catalog and upserts them.
// Agents are optional: a failed agent fetch is logged and the skins are kept.
func (s *CatalogService) SyncFromAPI(ctx context.Context, catalogURL string) (*SyncResult, error) {
	if catalogURL == "" {
		return nil, ErrCatalogURLNotConfigured
	}
	s.client.SetBaseURL(catalogURL)

	items, err := s.client.FetchSkins(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch skins: %w", err)
	}

	agents, err := s.client.FetchAgents(ctx)
	if err != nil {
		s.log.Warn("Agent fetch failed, syncing skins only", "error", err)
	} else {
		items = append(items[:len(items):len(items)], agents...)
	}

	result := &SyncResult{}
	var firstError error
	for _, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			result.Skipped++
			continue
		}
		created, err := s.repo.UpsertSkin(ctx, SkinFromAPI(item))
		if err != nil {
			result.Errors++
			if firstError == nil {
				firstError = fmt.Errorf("failed to save skin %q: %w", item.Name, err)
			}
			continue
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}
	result.Total = result.Created + result.Updated

	s.log.Info("Catalog sync complete", "url", catalogURL, "created", result.Created,
		"updated", result.Updated, "skipped", result.Skipped, "errors", result.Errors)

	return result, firstError
}

// SeedMockCatalog loads the built-in sample catalog and returns the number of new skins
func (s *CatalogService) SeedMockCatalog(ctx context.Context) (int, error) {
	items := append(skinapi.DefaultMockSkins(), skinapi.DefaultMockAgents()...)

	var addedCount int
	var firstError error
	for _, item := range items {
		created, err := s.repo.UpsertSkin(ctx, SkinFromAPI(item))
		if err != nil {
			if firstError == nil {
				firstError = fmt.Errorf("failed to seed skin %q: %w", item.Name, err)
			}
			continue
		}
		if created {
			addedCount++
		}
	}

	s.log.Info("Seeded mock catalog", "added", addedCount)
	return addedCount, firstError
}

// SkinFromAPI converts an external catalog record into a catalog skin
func SkinFromAPI(item skinapi.Item) models.Skin {
	return models.Skin{
		Name:       strings.TrimSpace(item.Name),
		Rarity:     item.RarityName(),
		Type:       itemType(item),
		Weapon:     item.WeaponName(),
		Collection: item.CollectionName(),
		ImageURL:   item.Image,
	}
}

// itemType maps catalog categories onto the item types slots understand
func itemType(item skinapi.Item) string {
	switch strings.ToLower(item.CategoryName()) {
	case "knives", "knife":
		return "Knife"
	case "gloves":
		return "Gloves"
	case "agents", "agent":
		return "Agent"
	}
	if item.Team != nil && item.Weapon == nil {
		return "Agent"
	}
	return item.CategoryName()
}
