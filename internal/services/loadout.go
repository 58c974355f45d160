package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"

	"github.com/abrezinsky/skinvault/internal/loadout"
	"github.com/abrezinsky/skinvault/internal/logger"
	"github.com/abrezinsky/skinvault/internal/models"
	"github.com/abrezinsky/skinvault/internal/repository"
)

// LoadoutServiceRepository defines the repository methods needed by LoadoutService
type LoadoutServiceRepository interface {
	repository.InventoryRepository
	repository.LoadoutRepository
	GetSkin(ctx context.Context, id int64) (*models.Skin, error)
}

// SkinFinder resolves typed skin names for manual picks
type SkinFinder interface {
	FindSkinByName(ctx context.Context, name string) (*models.Skin, error)
}

// SessionBroadcaster pushes session changes to subscribed clients
type SessionBroadcaster interface {
	BroadcastSession(state *SessionState)
	SessionClosed(id string)
}

// SessionState is a snapshot of one cooker session
type SessionState struct {
	ID        string                 `json:"id"`
	State     loadout.State          `json:"state"`
	Outcome   string                 `json:"outcome,omitempty"`
	Head      *loadout.PendingChoice `json:"head,omitempty"`
	Pending   int                    `json:"pending"`
	Selection loadout.Selection      `json:"selection"`
	Ledger    loadout.Ledger         `json:"ledger"`
	Entries   []models.LoadoutEntry  `json:"entries"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// AssignRequest names the item for a manual pick. Exactly one field must be set.
type AssignRequest struct {
	SkinID      *int64 `json:"skin_id,omitempty"`
	InventoryID *int64 `json:"inventory_id,omitempty"`
	SkinName    string `json:"skin_name,omitempty"`
}

type session struct {
	id        string
	cooker    *loadout.Cooker
	outcome   string
	updatedAt time.Time
}

const shareCodeAttempts = 5

// LoadoutService runs cooker sessions and persists finished loadouts.
// Sessions live in memory only.
type LoadoutService struct {
	log         logger.Logger
	repo        LoadoutServiceRepository
	skins       SkinFinder
	settings    SettingsServicer
	catalog     *loadout.Catalog
	classifier  *loadout.Classifier
	broadcaster SessionBroadcaster

	mu       sync.Mutex
	sessions map[string]*session

	newID func() string
	now   func() time.Time
}

// NewLoadoutService creates a new LoadoutService
func NewLoadoutService(log logger.Logger, repo LoadoutServiceRepository, skins SkinFinder, settings SettingsServicer, catalog *loadout.Catalog, classifier *loadout.Classifier) *LoadoutService {
	return &LoadoutService{
		log:        log,
		repo:       repo,
		skins:      skins,
		settings:   settings,
		catalog:    catalog,
		classifier: classifier,
		sessions:   make(map[string]*session),
		newID:      func() string { return uuid.New().String() },
		now:        time.Now,
	}
}

// SetBroadcaster sets the broadcaster for sending session updates to clients
func (s *LoadoutService) SetBroadcaster(b SessionBroadcaster) {
	s.broadcaster = b
}

// ==================== Sessions ====================

// CreateSession starts an empty cooker session
func (s *LoadoutService) CreateSession(ctx context.Context) (*SessionState, error) {
	s.mu.Lock()
	sess := &session{
		id:        s.newID(),
		cooker:    loadout.NewCooker(s.catalog, s.classifier),
		updatedAt: s.now(),
	}
	s.sessions[sess.id] = sess
	state := sess.snapshot()
	s.mu.Unlock()

	s.log.Info("Session created", "session", sess.id)
	return state, nil
}

// GetSession returns the current state of a session
func (s *LoadoutService) GetSession(ctx context.Context, id string) (*SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess.snapshot(), nil
}

// DeleteSession discards a session
func (s *LoadoutService) DeleteSession(ctx context.Context, id string) error {
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	if s.broadcaster != nil {
		s.broadcaster.SessionClosed(id)
	}
	s.log.Info("Session deleted", "session", id)
	return nil
}

// SessionCount returns the number of live sessions
func (s *LoadoutService) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// PruneIdleSessions drops sessions untouched for longer than maxIdle and
// returns how many were removed
func (s *LoadoutService) PruneIdleSessions(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	var removed int
	for id, sess := range s.sessions {
		if sess.updatedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	s.mu.Unlock()

	if removed > 0 {
		s.log.Info("Pruned idle sessions", "removed", removed)
	}
	return removed
}

// AutoEquip rebuilds the session's loadout from the current inventory
func (s *LoadoutService) AutoEquip(ctx context.Context, id string) (*SessionState, error) {
	items, err := s.repo.ListInventory(ctx)
	if err != nil {
		return nil, err
	}

	state, err := s.mutate(id, func(sess *session) error {
		sess.outcome = sess.cooker.AutoEquip(items).String()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Auto-equip finished", "session", id, "inventory", len(items),
		"assigned", len(state.Entries), "pending", state.Pending, "outcome", state.Outcome)
	return state, nil
}

// Pending returns the choice currently waiting for the user, or nil
func (s *LoadoutService) Pending(ctx context.Context, id string) (*loadout.PendingChoice, error) {
	state, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	return state.Head, nil
}

// Resolve answers the head choice with one of its options
func (s *LoadoutService) Resolve(ctx context.Context, id string, inventoryID int64) (*SessionState, error) {
	state, err := s.mutate(id, func(sess *session) error {
		_, err := sess.cooker.Resolve(inventoryID)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug("Choice resolved", "session", id, "inventory_id", inventoryID, "pending", state.Pending)
	return state, nil
}

// Skip drops the head choice without assigning anything
func (s *LoadoutService) Skip(ctx context.Context, id string) (*SessionState, error) {
	state, err := s.mutate(id, func(sess *session) error {
		_, err := sess.cooker.Skip()
		return err
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug("Choice skipped", "session", id, "pending", state.Pending)
	return state, nil
}

// Assign puts an item into a slot/team pair regardless of budgets
func (s *LoadoutService) Assign(ctx context.Context, id, slotKey, team string, req AssignRequest) (*SessionState, error) {
	side, err := loadout.ParseSide(team)
	if err != nil {
		return nil, err
	}
	if _, err := s.GetSession(ctx, id); err != nil {
		return nil, err
	}

	item, inventoryID, err := s.resolveItem(ctx, req)
	if err != nil {
		return nil, err
	}

	state, err := s.mutate(id, func(sess *session) error {
		return sess.cooker.AssignManually(slotKey, side, item, inventoryID)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("Manual pick", "session", id, "slot", slotKey, "team", side, "item", item.Name)
	return state, nil
}

// Unassign empties a slot/team pair
func (s *LoadoutService) Unassign(ctx context.Context, id, slotKey, team string) (*SessionState, error) {
	side, err := loadout.ParseSide(team)
	if err != nil {
		return nil, err
	}
	return s.mutate(id, func(sess *session) error {
		return sess.cooker.Unassign(slotKey, side)
	})
}

// resolveItem loads the item a manual pick refers to
func (s *LoadoutService) resolveItem(ctx context.Context, req AssignRequest) (loadout.CatalogItem, *int64, error) {
	name := strings.TrimSpace(req.SkinName)
	set := 0
	for _, ok := range []bool{req.SkinID != nil, req.InventoryID != nil, name != ""} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return loadout.CatalogItem{}, nil, ErrAssignSource
	}

	switch {
	case req.InventoryID != nil:
		inv, err := s.repo.GetInventoryItem(ctx, *req.InventoryID)
		if err == repository.ErrNotFound {
			return loadout.CatalogItem{}, nil, ErrInventoryItemNotFound
		}
		if err != nil {
			return loadout.CatalogItem{}, nil, err
		}
		id := inv.ID
		return loadout.ItemFromInventory(*inv), &id, nil
	case req.SkinID != nil:
		skin, err := s.repo.GetSkin(ctx, *req.SkinID)
		if err == repository.ErrNotFound {
			return loadout.CatalogItem{}, nil, ErrSkinNotFound
		}
		if err != nil {
			return loadout.CatalogItem{}, nil, err
		}
		return loadout.ItemFromSkin(*skin), nil, nil
	default:
		skin, err := s.skins.FindSkinByName(ctx, name)
		if err != nil {
			return loadout.CatalogItem{}, nil, err
		}
		return loadout.ItemFromSkin(*skin), nil, nil
	}
}

// mutate runs fn against a session under the lock, then broadcasts the new state
func (s *LoadoutService) mutate(id string, fn func(*session) error) (*SessionState, error) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	if err := fn(sess); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	sess.updatedAt = s.now()
	state := sess.snapshot()
	s.mu.Unlock()

	if s.broadcaster != nil {
		s.broadcaster.BroadcastSession(state)
	}
	return state, nil
}

func (sess *session) snapshot() *SessionState {
	pending := sess.cooker.Pending()
	state := &SessionState{
		ID:        sess.id,
		State:     sess.cooker.State(),
		Outcome:   sess.outcome,
		Pending:   len(pending),
		Selection: sess.cooker.Selection(),
		Ledger:    sess.cooker.Ledger(),
		Entries:   sess.cooker.Entries(),
		UpdatedAt: sess.updatedAt,
	}
	if len(pending) > 0 {
		state.Head = &pending[0]
	}
	if state.Entries == nil {
		state.Entries = []models.LoadoutEntry{}
	}
	return state
}

// ==================== Saved loadouts ====================

// Save persists the session's current selection under a new share code
func (s *LoadoutService) Save(ctx context.Context, id, name string) (*models.SavedLoadout, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrLoadoutNameRequired
	}

	state, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(state.Entries) == 0 {
		return nil, ErrEmptyLoadout
	}

	if err := s.detachMissingInventory(ctx, state.Entries); err != nil {
		return nil, err
	}

	code, err := s.newShareCode(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.CreateLoadout(ctx, name, code, state.Entries); err != nil {
		return nil, err
	}

	s.log.Info("Loadout saved", "session", id, "name", name, "code", code, "entries", len(state.Entries))
	return s.GetLoadout(ctx, code)
}

// detachMissingInventory clears the inventory link of entries whose owned item
// was deleted after it was assigned. The skin snapshot is kept.
func (s *LoadoutService) detachMissingInventory(ctx context.Context, entries []models.LoadoutEntry) error {
	for i := range entries {
		id := entries[i].InventoryItemID
		if id == nil {
			continue
		}
		_, err := s.repo.GetInventoryItem(ctx, *id)
		if err == repository.ErrNotFound {
			s.log.Debug("Saving entry without deleted inventory item", "slot", entries[i].SlotKey, "inventory_id", *id)
			entries[i].InventoryItemID = nil
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// newShareCode returns an unused 8 character code
func (s *LoadoutService) newShareCode(ctx context.Context) (string, error) {
	for i := 0; i < shareCodeAttempts; i++ {
		code := s.newID()[:8]
		exists, err := s.repo.ShareCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique share code after %d attempts", shareCodeAttempts)
}

// ListLoadouts returns saved loadouts without their entries
func (s *LoadoutService) ListLoadouts(ctx context.Context) ([]models.SavedLoadout, error) {
	return s.repo.ListLoadouts(ctx)
}

// GetLoadout returns a saved loadout with its entries
func (s *LoadoutService) GetLoadout(ctx context.Context, code string) (*models.SavedLoadout, error) {
	l, err := s.repo.GetLoadoutByCode(ctx, code)
	if err == repository.ErrNotFound {
		return nil, ErrLoadoutNotFound
	}
	return l, err
}

// DeleteLoadout removes a saved loadout
func (s *LoadoutService) DeleteLoadout(ctx context.Context, code string) error {
	err := s.repo.DeleteLoadout(ctx, code)
	if err == repository.ErrNotFound {
		return ErrLoadoutNotFound
	}
	if err != nil {
		return err
	}
	s.log.Info("Loadout deleted", "code", code)
	return nil
}

// ShareURL returns the link that opens a saved loadout in the web UI
func (s *LoadoutService) ShareURL(ctx context.Context, code string) (string, error) {
	if _, err := s.GetLoadout(ctx, code); err != nil {
		return "", err
	}
	baseURL, err := s.settings.GetBaseURL(ctx)
	if err != nil {
		return "", err
	}
	if baseURL == "" {
		return "", ErrBaseURLNotConfigured
	}
	return fmt.Sprintf("%s/?loadout=%s", strings.TrimSuffix(baseURL, "/"), url.QueryEscape(code)), nil
}

// LoadoutQR returns a PNG QR code of the loadout's share link
func (s *LoadoutService) LoadoutQR(ctx context.Context, code string) ([]byte, error) {
	link, err := s.ShareURL(ctx, code)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(link, qrcode.Medium, 256)
}
