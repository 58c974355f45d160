package repository

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"github.com/abrezinsky/skinvault/internal/models"
)

// Repository provides data access methods
type Repository struct {
	db *sql.DB
}

// New creates a new Repository
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign key constraints
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, err
	}

	// SQLite works best with a single connection, and :memory: needs it
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	repo := &Repository{db: db}

	if err := repo.migrate(); err != nil {
		return nil, err
	}

	return repo, nil
}

// DB returns the underlying database connection (for transactions)
func (r *Repository) DB() *sql.DB {
	return r.db
}

// Close closes the database connection
func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping checks if the database connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// migrate runs database migrations
func (r *Repository) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS skins (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT UNIQUE NOT NULL COLLATE NOCASE,
			rarity TEXT,
			type TEXT,
			weapon TEXT,
			image_url TEXT,
			default_price REAL,
			synced_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS inventory_items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			skin_id INTEGER NOT NULL,
			price REAL NOT NULL DEFAULT 0,
			acquired_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (skin_id) REFERENCES skins(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS loadouts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			share_code TEXT UNIQUE NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS loadout_entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			loadout_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			slot_key TEXT NOT NULL,
			team TEXT NOT NULL,
			inventory_item_id INTEGER,
			skin_id INTEGER,
			skin_name TEXT NOT NULL,
			image_url TEXT,
			weapon TEXT,
			type TEXT,
			FOREIGN KEY (loadout_id) REFERENCES loadouts(id) ON DELETE CASCADE,
			FOREIGN KEY (inventory_item_id) REFERENCES inventory_items(id) ON DELETE SET NULL,
			FOREIGN KEY (skin_id) REFERENCES skins(id) ON DELETE SET NULL,
			UNIQUE(loadout_id, slot_key, team)
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_inventory_skin ON inventory_items(skin_id)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_loadout ON loadout_entries(loadout_id)`,
		`CREATE INDEX IF NOT EXISTS idx_loadouts_code ON loadouts(share_code)`,
	}

	additionalMigrations := []string{
		`ALTER TABLE skins ADD COLUMN collection TEXT`,
	}

	for _, migration := range migrations {
		if _, err := r.db.Exec(migration); err != nil {
			return err
		}
	}

	for _, migration := range additionalMigrations {
		r.db.Exec(migration) // Ignore errors - columns may already exist
	}

	// base_url is set by app.go with the detected LAN address on startup
	defaultSettings := map[string]string{
		"catalog_url": "",
	}

	for key, value := range defaultSettings {
		_, err := r.db.Exec(`INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)`, key, value)
		if err != nil {
			return err
		}
	}

	return nil
}

// ==================== Skin Methods ====================

const skinColumns = `id, name, rarity, type, weapon, collection, image_url, default_price`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSkin(row rowScanner) (models.Skin, error) {
	var s models.Skin
	var rarity, skinType, weapon, collection, imageURL sql.NullString
	var price sql.NullFloat64
	if err := row.Scan(&s.ID, &s.Name, &rarity, &skinType, &weapon, &collection, &imageURL, &price); err != nil {
		return s, err
	}
	s.Rarity = rarity.String
	s.Type = skinType.String
	s.Weapon = weapon.String
	s.Collection = collection.String
	s.ImageURL = imageURL.String
	if price.Valid {
		p := price.Float64
		s.DefaultPrice = &p
	}
	return s, nil
}

// ListSkins returns the whole catalog ordered by name
func (r *Repository) ListSkins(ctx context.Context) ([]models.Skin, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+skinColumns+` FROM skins ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skins []models.Skin
	for rows.Next() {
		s, err := scanSkin(rows)
		if err != nil {
			return nil, err
		}
		skins = append(skins, s)
	}
	return skins, rows.Err()
}

// GetSkin returns a catalog skin by ID
func (r *Repository) GetSkin(ctx context.Context, id int64) (*models.Skin, error) {
	s, err := scanSkin(r.db.QueryRowContext(ctx, `SELECT `+skinColumns+` FROM skins WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetSkinByName returns a catalog skin by exact name, ignoring case
func (r *Repository) GetSkinByName(ctx context.Context, name string) (*models.Skin, error) {
	s, err := scanSkin(r.db.QueryRowContext(ctx, `SELECT `+skinColumns+` FROM skins WHERE name = ?`, name))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// UpsertSkin creates or updates a skin by name and reports whether it was created
func (r *Repository) UpsertSkin(ctx context.Context, skin models.Skin) (bool, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM skins WHERE name = ?`, skin.Name).Scan(&id)
	if err != nil && err != sql.ErrNoRows {
		return false, err
	}

	if err == nil {
		_, err := r.db.ExecContext(ctx, `
			UPDATE skins SET rarity = ?, type = ?, weapon = ?, collection = ?, image_url = ?,
				default_price = COALESCE(?, default_price), synced_at = CURRENT_TIMESTAMP
			WHERE id = ?`,
			skin.Rarity, skin.Type, skin.Weapon, skin.Collection, skin.ImageURL, skin.DefaultPrice, id)
		return false, err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO skins (name, rarity, type, weapon, collection, image_url, default_price)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		skin.Name, skin.Rarity, skin.Type, skin.Weapon, skin.Collection, skin.ImageURL, skin.DefaultPrice)
	return true, err
}

// CountSkins returns the catalog size
func (r *Repository) CountSkins(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM skins`).Scan(&count)
	return count, err
}

// ==================== Inventory Methods ====================

const inventoryQuery = `
	SELECT i.id, i.skin_id, s.name, s.weapon, s.type, s.image_url, i.price
	FROM inventory_items i
	JOIN skins s ON s.id = i.skin_id`

func scanInventoryItem(row rowScanner) (models.InventoryItem, error) {
	var item models.InventoryItem
	var weapon, itemType, imageURL sql.NullString
	if err := row.Scan(&item.ID, &item.SkinID, &item.SkinName, &weapon, &itemType, &imageURL, &item.Price); err != nil {
		return item, err
	}
	item.Weapon = weapon.String
	item.Type = itemType.String
	item.ImageURL = imageURL.String
	return item, nil
}

// ListInventory returns the owned items in acquisition order
func (r *Repository) ListInventory(ctx context.Context) ([]models.InventoryItem, error) {
	rows, err := r.db.QueryContext(ctx, inventoryQuery+` ORDER BY i.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.InventoryItem
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetInventoryItem returns an owned item by ID
func (r *Repository) GetInventoryItem(ctx context.Context, id int64) (*models.InventoryItem, error) {
	item, err := scanInventoryItem(r.db.QueryRowContext(ctx, inventoryQuery+` WHERE i.id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// AddInventoryItem records a copy of a catalog skin as owned
func (r *Repository) AddInventoryItem(ctx context.Context, skinID int64, price float64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `INSERT INTO inventory_items (skin_id, price) VALUES (?, ?)`, skinID, price)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// DeleteInventoryItem removes an owned item
func (r *Repository) DeleteInventoryItem(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM inventory_items WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ==================== Loadout Methods ====================

// CreateLoadout stores a named loadout and its entries in one transaction
func (r *Repository) CreateLoadout(ctx context.Context, name, shareCode string, entries []models.LoadoutEntry) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `INSERT INTO loadouts (name, share_code) VALUES (?, ?)`, name, shareCode)
	if err != nil {
		return 0, err
	}
	loadoutID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	for i, e := range entries {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO loadout_entries
				(loadout_id, position, slot_key, team, inventory_item_id, skin_id, skin_name, image_url, weapon, type)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			loadoutID, i, e.SlotKey, e.Team, e.InventoryItemID, e.SkinID, e.SkinName, e.ImageURL, e.Weapon, e.Type)
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return loadoutID, nil
}

// ListLoadouts returns saved loadouts, newest first, without their entries
func (r *Repository) ListLoadouts(ctx context.Context) ([]models.SavedLoadout, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT l.id, l.name, l.share_code, l.created_at, COUNT(e.id)
		FROM loadouts l
		LEFT JOIN loadout_entries e ON e.loadout_id = l.id
		GROUP BY l.id
		ORDER BY l.id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loadouts []models.SavedLoadout
	for rows.Next() {
		var l models.SavedLoadout
		if err := rows.Scan(&l.ID, &l.Name, &l.ShareCode, &l.CreatedAt, &l.EntryCount); err != nil {
			return nil, err
		}
		loadouts = append(loadouts, l)
	}
	return loadouts, rows.Err()
}

// GetLoadoutByCode returns a saved loadout with its entries in stored order
func (r *Repository) GetLoadoutByCode(ctx context.Context, shareCode string) (*models.SavedLoadout, error) {
	var l models.SavedLoadout
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, share_code, created_at FROM loadouts WHERE share_code = ?`, shareCode,
	).Scan(&l.ID, &l.Name, &l.ShareCode, &l.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT slot_key, team, inventory_item_id, skin_id, skin_name, image_url, weapon, type
		FROM loadout_entries WHERE loadout_id = ? ORDER BY position
	`, l.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var e models.LoadoutEntry
		var inventoryID, skinID sql.NullInt64
		var imageURL, weapon, itemType sql.NullString
		if err := rows.Scan(&e.SlotKey, &e.Team, &inventoryID, &skinID, &e.SkinName, &imageURL, &weapon, &itemType); err != nil {
			return nil, err
		}
		if inventoryID.Valid {
			id := inventoryID.Int64
			e.InventoryItemID = &id
		}
		if skinID.Valid {
			id := skinID.Int64
			e.SkinID = &id
		}
		e.ImageURL = imageURL.String
		e.Weapon = weapon.String
		e.Type = itemType.String
		l.Entries = append(l.Entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	l.EntryCount = len(l.Entries)
	return &l, nil
}

// DeleteLoadout removes a saved loadout and its entries
func (r *Repository) DeleteLoadout(ctx context.Context, shareCode string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM loadouts WHERE share_code = ?`, shareCode)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ShareCodeExists reports whether a share code is taken
func (r *Repository) ShareCodeExists(ctx context.Context, shareCode string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM loadouts WHERE share_code = ?)`, shareCode).Scan(&exists)
	return exists, err
}

// ==================== Settings Methods ====================

// GetSetting retrieves a setting value
func (r *Repository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	return value, err
}

// SetSetting updates a setting value
func (r *Repository) SetSetting(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, key, value)
	return err
}

// ==================== Stats Methods ====================

// GetStats returns row counts for the dashboard
func (r *Repository) GetStats(ctx context.Context) (map[string]any, error) {
	stats := make(map[string]any)

	counts := []struct {
		key   string
		query string
	}{
		{"total_skins", `SELECT COUNT(*) FROM skins`},
		{"inventory_items", `SELECT COUNT(*) FROM inventory_items`},
		{"saved_loadouts", `SELECT COUNT(*) FROM loadouts`},
	}
	for _, c := range counts {
		var n int
		if err := r.db.QueryRowContext(ctx, c.query).Scan(&n); err != nil {
			return nil, err
		}
		stats[c.key] = n
	}

	var value sql.NullFloat64
	if err := r.db.QueryRowContext(ctx, `SELECT SUM(price) FROM inventory_items`).Scan(&value); err != nil {
		return nil, err
	}
	stats["inventory_value"] = value.Float64

	return stats, nil
}

// ==================== Database Management Methods ====================

// validTables defines which tables can be safely cleared
var validTables = map[string]bool{
	"skins": true, "inventory_items": true, "loadouts": true, "loadout_entries": true, "settings": true,
}

// ClearTable clears all data from a table
// Only allows clearing whitelisted tables to prevent SQL injection
func (r *Repository) ClearTable(ctx context.Context, table string) error {
	if !validTables[table] {
		return ErrInvalidTable
	}

	// Safe to use string concatenation now that we've validated the table name
	_, err := r.db.ExecContext(ctx, "DELETE FROM "+table)
	return err
}
