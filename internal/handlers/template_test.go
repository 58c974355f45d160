package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/abrezinsky/skinvault/internal/handlers"
	"github.com/abrezinsky/skinvault/internal/loadout"
	"github.com/abrezinsky/skinvault/internal/logger"
	"github.com/abrezinsky/skinvault/internal/services"
	"github.com/abrezinsky/skinvault/internal/testutil"
	"github.com/abrezinsky/skinvault/internal/websocket"
	"github.com/abrezinsky/skinvault/pkg/skinapi"
)

func newFullHandlers(t *testing.T, templates fstest.MapFS) (*handlers.Handlers, error) {
	t.Helper()
	log := logger.Discard()
	repo := testutil.NewTestRepository(t)
	slots := loadout.DefaultCatalog()

	catalogSvc := services.NewCatalogService(log, repo, skinapi.NewMockClient(), slots)
	settingsSvc := services.NewSettingsService(log, repo)
	loadoutSvc := services.NewLoadoutService(log, repo, catalogSvc, settingsSvc, slots, loadout.NewClassifier(nil))

	static := fstest.MapFS{
		"style.css": &fstest.MapFile{Data: []byte("body{}")},
	}

	return handlers.New(
		catalogSvc,
		services.NewInventoryService(log, repo),
		loadoutSvc,
		settingsSvc,
		templates,
		handlers.NewStaticServer(static),
		websocket.New(log, loadoutSvc),
		log,
	)
}

func TestNew_MissingTemplate(t *testing.T) {
	_, err := newFullHandlers(t, fstest.MapFS{})
	if err == nil {
		t.Fatal("expected error for missing index template")
	}
}

func TestIndexPage(t *testing.T) {
	h, err := newFullHandlers(t, fstest.MapFS{
		"index.html": &fstest.MapFile{Data: []byte(`<title>{{.Title}}</title><body data-loadout="{{.LoadoutCode}}"></body>`)},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	router := h.Router()

	t.Run("plain", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "<title>SkinVault</title>") {
			t.Errorf("expected title, got %q", rec.Body.String())
		}
	})

	t.Run("shared loadout", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?loadout=<ab12>", nil))

		body := rec.Body.String()
		if !strings.Contains(body, `data-loadout="&lt;ab12&gt;"`) {
			t.Errorf("expected escaped loadout code, got %q", body)
		}
	})
}

func TestStaticFiles(t *testing.T) {
	h, err := newFullHandlers(t, fstest.MapFS{
		"index.html": &fstest.MapFile{Data: []byte("ok")},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/style.css", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "body{}" {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}

func TestWebSocketRoute_RejectsPlainGET(t *testing.T) {
	h, err := newFullHandlers(t, fstest.MapFS{
		"index.html": &fstest.MapFile{Data: []byte("ok")},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws", nil))

	// A request without upgrade headers is refused by the upgrader
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
