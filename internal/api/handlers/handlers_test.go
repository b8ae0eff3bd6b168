package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/photoflow/photoflow/internal/client"
	"github.com/photoflow/photoflow/internal/models"
	"github.com/photoflow/photoflow/internal/notify"
	"github.com/photoflow/photoflow/internal/transfer"
	"github.com/photoflow/photoflow/internal/viewmodel"
)

// testBackend stubs the content API and counts the requests it receives.
type testBackend struct {
	mu    sync.Mutex
	calls map[string]int
	srv   *httptest.Server
}

func newTestBackend(t *testing.T) *testBackend {
	t.Helper()
	b := &testBackend{calls: map[string]int{}}
	mux := http.NewServeMux()
	mux.HandleFunc("/content/generate-ideas", func(w http.ResponseWriter, r *http.Request) {
		b.count(r.URL.Path)
		var req transfer.IdeasRequest
		json.NewDecoder(r.Body).Decode(&req)
		ideas := make([]models.ContentIdea, req.Count)
		for i := range ideas {
			ideas[i] = models.ContentIdea{ID: "i", Niche: req.Niche, Title: "Idea", SuggestedCaption: "cap"}
		}
		json.NewEncoder(w).Encode(transfer.IdeasResponse{Ideas: ideas})
	})
	mux.HandleFunc("/content/generate-image", func(w http.ResponseWriter, r *http.Request) {
		b.count(r.URL.Path)
		json.NewEncoder(w).Encode(transfer.ImageResponse{Provider: "gemini", ImageBase64: "aGVsbG8="})
	})
	mux.HandleFunc("/analytics", func(w http.ResponseWriter, r *http.Request) {
		b.count(r.URL.Path)
		json.NewEncoder(w).Encode(models.AnalyticsSnapshot{})
	})
	mux.HandleFunc("/calendar", func(w http.ResponseWriter, r *http.Request) {
		b.count(r.URL.Path)
		json.NewEncoder(w).Encode(transfer.CalendarResponse{Calendar: []models.ScheduledPost{
			{ID: "s1", ScheduledDate: "2025-06-10", Status: models.SchedulePending},
		}})
	})
	mux.HandleFunc("/content", func(w http.ResponseWriter, r *http.Request) {
		b.count(r.URL.Path)
		json.NewEncoder(w).Encode(transfer.ContentListResponse{})
	})
	mux.HandleFunc("/hashtags/", func(w http.ResponseWriter, r *http.Request) {
		b.count(r.URL.Path)
		json.NewEncoder(w).Encode(transfer.HashtagsResponse{
			Niche:    models.NicheWedding,
			Hashtags: []string{"#wedding", "#bride"},
		})
	})
	mux.HandleFunc("/viral-hooks/generate", func(w http.ResponseWriter, r *http.Request) {
		b.count(r.URL.Path)
		json.NewEncoder(w).Encode(transfer.HooksResponse{Hooks: []models.ViralHook{
			{Hook: "Stop scrolling", FullCaption: "..."},
		}})
	})
	b.srv = httptest.NewServer(mux)
	t.Cleanup(b.srv.Close)
	return b
}

func (b *testBackend) count(path string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls[path]++
}

func (b *testBackend) callsTo(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[path]
}

func (b *testBackend) client() *client.Client {
	return client.New(b.srv.URL, 5*time.Second)
}

type envelope struct {
	Data          json.RawMessage       `json:"data"`
	Notifications []notify.Notification `json:"notifications"`
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var env envelope
	raw, _ := io.ReadAll(resp.Body)
	json.Unmarshal(raw, &env)
	return resp.StatusCode, env
}

func hasNotification(env envelope, level notify.Level, message string) bool {
	for _, n := range env.Notifications {
		if n.Level == level && n.Message == message {
			return true
		}
	}
	return false
}

func TestGenerateIdeasReturnsCards(t *testing.T) {
	b := newTestBackend(t)
	n := notify.NewCenter()
	h := NewIdeasHandler(
		viewmodel.NewIdeasForm(b.client(), n),
		viewmodel.NewTipsForm(b.client(), n),
		viewmodel.NewContentMixForm(b.client(), n),
		viewmodel.NewSeasonalForm(b.client(), n),
		viewmodel.NewDraftSaver(b.client(), n, time.Second),
		n)

	app := fiber.New()
	app.Post("/ideas/generate", h.GenerateIdeas)

	status, env := doJSON(t, app, fiber.MethodPost, "/ideas/generate",
		fiber.Map{"niche": "wedding", "count": 5})

	if status != fiber.StatusOK {
		t.Fatalf("status = %d", status)
	}
	var page struct {
		Ideas []models.ContentIdea `json:"ideas"`
		Cards []models.Card        `json:"cards"`
	}
	if err := json.Unmarshal(env.Data, &page); err != nil {
		t.Fatal(err)
	}
	if len(page.Ideas) != 5 || len(page.Cards) != 5 {
		t.Errorf("ideas = %d, cards = %d, want 5 each", len(page.Ideas), len(page.Cards))
	}
	if !hasNotification(env, notify.LevelSuccess, "Generated 5 content ideas!") {
		t.Errorf("notifications = %+v", env.Notifications)
	}
}

func TestGenerateImageEmptyPromptSkipsBackend(t *testing.T) {
	b := newTestBackend(t)
	n := notify.NewCenter()
	h := NewContentHandler(viewmodel.NewCreator(b.client(), n), b.client(), n)

	app := fiber.New()
	app.Post("/create/image", h.GenerateImage)

	status, env := doJSON(t, app, fiber.MethodPost, "/create/image",
		fiber.Map{"prompt": "   "})

	if status != fiber.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if got := b.callsTo("/content/generate-image"); got != 0 {
		t.Errorf("backend called %d times", got)
	}
	if !hasNotification(env, notify.LevelError, "Please enter an image prompt") {
		t.Errorf("notifications = %+v", env.Notifications)
	}
}

func TestGenerateImageBuildsDataURL(t *testing.T) {
	b := newTestBackend(t)
	n := notify.NewCenter()
	h := NewContentHandler(viewmodel.NewCreator(b.client(), n), b.client(), n)

	app := fiber.New()
	app.Post("/create/image", h.GenerateImage)

	_, env := doJSON(t, app, fiber.MethodPost, "/create/image",
		fiber.Map{"prompt": "bride under veil"})

	var page struct {
		Image *viewmodel.GeneratedImage `json:"image"`
	}
	if err := json.Unmarshal(env.Data, &page); err != nil {
		t.Fatal(err)
	}
	if page.Image == nil {
		t.Fatal("no image in page state")
	}
	if page.Image.DataURL != "data:image/png;base64,aGVsbG8=" {
		t.Errorf("data url = %q", page.Image.DataURL)
	}
}

func TestNicheHashtagsLookup(t *testing.T) {
	b := newTestBackend(t)
	n := notify.NewCenter()
	h := NewContentHandler(viewmodel.NewCreator(b.client(), n), b.client(), n)

	app := fiber.New()
	app.Get("/create/hashtags/:niche", h.GetNicheHashtags)

	status, env := doJSON(t, app, fiber.MethodGet, "/create/hashtags/wedding", nil)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d", status)
	}
	var out transfer.HashtagsResponse
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatal(err)
	}
	if len(out.Hashtags) != 2 {
		t.Errorf("hashtags = %v", out.Hashtags)
	}

	status, _ = doJSON(t, app, fiber.MethodGet, "/create/hashtags/astro", nil)
	if status != fiber.StatusBadRequest {
		t.Errorf("unknown niche status = %d, want 400", status)
	}
}

func TestAnalyticsZeroPosts(t *testing.T) {
	b := newTestBackend(t)
	n := notify.NewCenter()
	h := NewAnalyticsHandler(viewmodel.NewAnalyticsView(b.client()), n)

	app := fiber.New()
	app.Get("/analytics", h.GetAnalytics)

	status, env := doJSON(t, app, fiber.MethodGet, "/analytics", nil)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d", status)
	}
	var page viewmodel.AnalyticsPage
	if err := json.Unmarshal(env.Data, &page); err != nil {
		t.Fatal(err)
	}
	if page.CompletionRate != 0 {
		t.Errorf("completion rate = %d", page.CompletionRate)
	}
}

func TestNavigateRejectsUnknownDirection(t *testing.T) {
	b := newTestBackend(t)
	n := notify.NewCenter()
	vm := viewmodel.NewCalendarView(b.client(), n, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	h := NewCalendarHandler(vm, n)

	app := fiber.New()
	app.Post("/calendar/navigate", h.Navigate)

	status, _ := doJSON(t, app, fiber.MethodPost, "/calendar/navigate",
		fiber.Map{"direction": "sideways"})
	if status != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
	if got := b.callsTo("/calendar"); got != 0 {
		t.Errorf("backend called %d times", got)
	}
}

func TestViewItemNotFound(t *testing.T) {
	b := newTestBackend(t)
	n := notify.NewCenter()
	vm := viewmodel.NewCalendarView(b.client(), n, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	h := NewCalendarHandler(vm, n)

	app := fiber.New()
	app.Get("/calendar/:id", h.ViewItem)

	status, _ := doJSON(t, app, fiber.MethodGet, "/calendar/nope", nil)
	if status != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
}

func TestCalendarPageEnvelope(t *testing.T) {
	b := newTestBackend(t)
	n := notify.NewCenter()
	vm := viewmodel.NewCalendarView(b.client(), n, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	h := NewCalendarHandler(vm, n)

	app := fiber.New()
	app.Get("/calendar", h.GetCalendar)

	status, env := doJSON(t, app, fiber.MethodGet, "/calendar", nil)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d", status)
	}
	var page viewmodel.MonthPage
	if err := json.Unmarshal(env.Data, &page); err != nil {
		t.Fatal(err)
	}
	if page.Month != "June 2025" || len(page.Days) != 30 {
		t.Errorf("month = %q, days = %d", page.Month, len(page.Days))
	}
	if len(page.Upcoming) != 1 {
		t.Errorf("upcoming = %+v", page.Upcoming)
	}
}

func TestGrowthCopyRequiresID(t *testing.T) {
	b := newTestBackend(t)
	n := notify.NewCenter()
	h := NewGrowthHandler(
		viewmodel.NewHooksForm(b.client(), n),
		viewmodel.NewReelsForm(b.client(), n),
		viewmodel.NewMagnetForm(b.client(), n),
		b.client(), n)

	app := fiber.New()
	app.Post("/growth/copy", h.Copy)

	status, _ := doJSON(t, app, fiber.MethodPost, "/growth/copy", fiber.Map{"id": ""})
	if status != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
}

func TestGrowthHooksFlow(t *testing.T) {
	b := newTestBackend(t)
	n := notify.NewCenter()
	h := NewGrowthHandler(
		viewmodel.NewHooksForm(b.client(), n),
		viewmodel.NewReelsForm(b.client(), n),
		viewmodel.NewMagnetForm(b.client(), n),
		b.client(), n)

	app := fiber.New()
	app.Post("/growth/hooks", h.GenerateHooks)
	app.Post("/growth/copy", h.Copy)

	_, env := doJSON(t, app, fiber.MethodPost, "/growth/hooks",
		fiber.Map{"hook_type": "curiosity", "niche": "portrait", "count": 1})

	var page struct {
		Hooks    []models.Card `json:"hooks"`
		CopiedID string        `json:"copied_id"`
	}
	if err := json.Unmarshal(env.Data, &page); err != nil {
		t.Fatal(err)
	}
	if len(page.Hooks) != 1 || page.Hooks[0].Title != "Stop scrolling" {
		t.Errorf("hooks = %+v", page.Hooks)
	}

	_, env = doJSON(t, app, fiber.MethodPost, "/growth/copy", fiber.Map{"id": "hook-0"})
	if err := json.Unmarshal(env.Data, &page); err != nil {
		t.Fatal(err)
	}
	if page.CopiedID != "hook-0" {
		t.Errorf("copied id = %q", page.CopiedID)
	}
	if !hasNotification(env, notify.LevelSuccess, "Caption copied to clipboard!") {
		t.Errorf("notifications = %+v", env.Notifications)
	}
}

func TestDashboardEnvelope(t *testing.T) {
	b := newTestBackend(t)
	n := notify.NewCenter()
	h := NewDashboardHandler(viewmodel.NewDashboardView(b.client(), n), n)

	app := fiber.New()
	app.Get("/", h.GetDashboard)

	status, env := doJSON(t, app, fiber.MethodGet, "/", nil)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if env.Data == nil {
		t.Error("no data in envelope")
	}
}
