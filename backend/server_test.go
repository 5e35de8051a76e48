package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kampfschwein/schweinchen-tcg/backend/config"
	"github.com/kampfschwein/schweinchen-tcg/backend/handlers"
	"github.com/kampfschwein/schweinchen-tcg/backend/handlers/mock"
	"github.com/kampfschwein/schweinchen-tcg/backend/models"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain/album"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain/catalog"
	"github.com/kampfschwein/schweinchen-tcg/internal/domain/draw"
	"github.com/kampfschwein/schweinchen-tcg/internal/gateways/images"
	"go.uber.org/mock/gomock"
)

type testEnv struct {
	server *Server
	draws  *mock.MockDrawService
	albums *mock.MockAlbumService
}

func newTestEnv(t *testing.T, ping func() error) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	env := &testEnv{
		draws:  mock.NewMockDrawService(ctrl),
		albums: mock.NewMockAlbumService(ctrl),
	}

	webApp := &handlers.WebApp{
		Catalog: catalog.Default(),
		Draw:    env.draws,
		Album:   env.albums,
		Images:  images.NewStaticResolver("", "cards"),
		Version: "test",
	}
	if ping != nil {
		webApp.Ping = func(_ context.Context) error { return ping() }
	}

	env.server = New(config.Config{}, webApp)
	return env
}

func (env *testEnv) do(t *testing.T, method, target string) (int, string) {
	t.Helper()
	resp, err := env.server.App().Test(httptest.NewRequest(method, target, nil), -1)
	if err != nil {
		t.Fatalf("%s %s error = %v", method, target, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func vampirschwein(t *testing.T) catalog.Card {
	t.Helper()
	card, ok := catalog.Default().Card("Vampirschwein")
	if !ok {
		t.Fatal("Vampirschwein missing from default catalog")
	}
	return card
}

func TestRandomCard(t *testing.T) {
	persistErr := &domain.PersistenceError{Op: "insert user card", Username: "alice", Err: errors.New("connection reset")}
	validationErr := &domain.ValidationError{Field: "username", Err: domain.ErrMissingUsername}

	tests := []struct {
		name       string
		target     string
		card       catalog.Card
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "plain card name",
			target:     "/random/Alice",
			card:       vampirschwein(t),
			wantStatus: http.StatusOK,
			wantBody:   "Vampirschwein",
		},
		{
			name:       "with position",
			target:     "/random/Alice?position=true",
			card:       vampirschwein(t),
			wantStatus: http.StatusOK,
			wantBody:   "Vampirschwein 1/12",
		},
		{
			name:       "blank username",
			target:     "/random/%20",
			err:        validationErr,
			wantStatus: http.StatusBadRequest,
			wantBody:   handlers.MsgMissingUsername,
		},
		{
			name:       "store failure",
			target:     "/random/Alice",
			err:        persistErr,
			wantStatus: http.StatusInternalServerError,
			wantBody:   handlers.MsgSaveFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, nil)
			env.draws.EXPECT().Draw(gomock.Any(), gomock.Any()).Return(tt.card, tt.err)

			status, body := env.do(t, http.MethodGet, tt.target)
			if status != tt.wantStatus || body != tt.wantBody {
				t.Errorf("GET %s = %d %q, want %d %q", tt.target, status, body, tt.wantStatus, tt.wantBody)
			}
		})
	}
}

func TestRandomCard_PassesUsername(t *testing.T) {
	env := newTestEnv(t, nil)
	env.draws.EXPECT().Draw(gomock.Any(), "Miss Piggy").Return(vampirschwein(t), nil)

	if status, _ := env.do(t, http.MethodGet, "/random/Miss%20Piggy"); status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
}

type envelope[T any] struct {
	Success bool             `json:"success"`
	Data    T                `json:"data"`
	Error   *models.APIError `json:"error"`
}

func decode[T any](t *testing.T, body string) envelope[T] {
	t.Helper()
	var out envelope[T]
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		t.Fatalf("json.Unmarshal(%q) error = %v", body, err)
	}
	return out
}

func TestAlbumAPI(t *testing.T) {
	first := time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)
	env := newTestEnv(t, nil)
	env.albums.EXPECT().BuildAlbum(gomock.Any(), "Bob").Return(album.Album{
		Username: "bob",
		Owned:    1,
		Total:    2,
		Pages: []album.Page{{
			Generation: 1,
			Owned:      1,
			Entries: []album.Entry{
				{CardName: "Vampirschwein", Rarity: catalog.Common, Owned: true, Count: 2, FirstObtained: &first, Generation: 1, Position: 1, Number: 1, ImageKey: "01"},
				{CardName: "Ninja Schwein", Rarity: catalog.Rare, DisplayIndex: 1, Generation: 1, Position: 2, Number: 2, ImageKey: "02_blurred"},
			},
		}},
	}, nil)

	status, body := env.do(t, http.MethodGet, "/api/album/Bob")
	if status != http.StatusOK {
		t.Fatalf("status = %d, body %s", status, body)
	}

	resp := decode[models.AlbumView](t, body)
	if !resp.Success || resp.Data.Username != "bob" || len(resp.Data.Pages) != 1 {
		t.Fatalf("album = %+v", resp)
	}

	owned, missing := resp.Data.Pages[0].Entries[0], resp.Data.Pages[0].Entries[1]
	if owned.DisplayText != "2x Vampirschwein 1/2" || owned.ImageURL != "/cards/01.png" ||
		owned.FirstObtainedDisplay != "07.03.2025" || owned.Color != "#A0A0A0" {
		t.Errorf("owned entry = %+v", owned)
	}
	if missing.DisplayText != "??? 2/2" || missing.ImageURL != "/cards/02_blurred.png" || missing.FirstObtained != nil {
		t.Errorf("missing entry = %+v", missing)
	}
}

func TestAlbumAPI_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "blank username",
			err:        &domain.ValidationError{Field: "username", Err: domain.ErrMissingUsername},
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
			wantMsg:    handlers.MsgMissingUsername,
		},
		{
			name:       "store failure",
			err:        &domain.PersistenceError{Op: "select user cards", Err: errors.New("timeout")},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
			wantMsg:    handlers.MsgLoadFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, nil)
			env.albums.EXPECT().BuildAlbum(gomock.Any(), gomock.Any()).Return(album.Album{}, tt.err)

			status, body := env.do(t, http.MethodGet, "/api/album/carol")
			resp := decode[any](t, body)
			if status != tt.wantStatus || resp.Success || resp.Error == nil {
				t.Fatalf("GET = %d %s", status, body)
			}
			if resp.Error.Code != tt.wantCode || resp.Error.Message != tt.wantMsg {
				t.Errorf("error = %+v, want %s %q", resp.Error, tt.wantCode, tt.wantMsg)
			}
		})
	}
}

func TestDrawAPI(t *testing.T) {
	env := newTestEnv(t, nil)
	env.draws.EXPECT().Draw(gomock.Any(), "dave").Return(vampirschwein(t), nil)

	status, body := env.do(t, http.MethodPost, "/api/draw/dave")
	resp := decode[handlers.DrawView](t, body)
	if status != http.StatusOK || resp.Data.Name != "Vampirschwein" {
		t.Fatalf("POST = %d %s", status, body)
	}
	if resp.Data.GenerationSize != 12 || resp.Data.ImageURL != "/cards/01.png" || resp.Data.RarityName != "Common" {
		t.Errorf("draw view = %+v", resp.Data)
	}
}

func TestOddsAPI(t *testing.T) {
	env := newTestEnv(t, nil)
	env.draws.EXPECT().Odds().Return(draw.Odds{
		TotalWeight: 45,
		Rarities:    []draw.RarityOdds{{Rarity: catalog.Common, Name: "Common", Weight: 40, Cards: 1, Probability: 40.0 / 45}},
	})

	status, body := env.do(t, http.MethodGet, "/api/odds")
	resp := decode[draw.Odds](t, body)
	if status != http.StatusOK || resp.Data.TotalWeight != 45 || len(resp.Data.Rarities) != 1 {
		t.Errorf("GET /api/odds = %d %s", status, body)
	}
}

func TestCardsAPI(t *testing.T) {
	env := newTestEnv(t, nil)

	status, body := env.do(t, http.MethodGet, "/api/cards")
	all := decode[[]catalog.Card](t, body)
	if status != http.StatusOK || len(all.Data) != catalog.Default().Len() {
		t.Errorf("GET /api/cards = %d, %d cards", status, len(all.Data))
	}

	status, body = env.do(t, http.MethodGet, "/api/cards?q=ninja&limit=3")
	found := decode[[]catalog.Card](t, body)
	if status != http.StatusOK || len(found.Data) == 0 || found.Data[0].Name != "Ninja Schwein" {
		t.Errorf("GET /api/cards?q=ninja = %d %s", status, body)
	}

	if status, _ := env.do(t, http.MethodGet, "/api/cards?q=ninja&limit=zero"); status != http.StatusBadRequest {
		t.Errorf("bad limit status = %d, want 400", status)
	}
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		ping       func() error
		wantStatus int
		wantState  string
	}{
		{"no database check", nil, http.StatusOK, "ok"},
		{"database up", func() error { return nil }, http.StatusOK, "ok"},
		{"database down", func() error { return errors.New("refused") }, http.StatusServiceUnavailable, "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := newTestEnv(t, tt.ping).do(t, http.MethodGet, "/healthz")
			var health models.HealthCheck
			if err := json.Unmarshal([]byte(body), &health); err != nil {
				t.Fatalf("json.Unmarshal() error = %v", err)
			}
			if status != tt.wantStatus || health.Status != tt.wantState {
				t.Errorf("GET /healthz = %d %q, want %d %q", status, health.Status, tt.wantStatus, tt.wantState)
			}
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	status, _ := newTestEnv(t, nil).do(t, http.MethodGet, "/nope/nope")
	if status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
}
