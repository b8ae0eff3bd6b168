package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/photoflow/photoflow/internal/models"
	"github.com/photoflow/photoflow/internal/transfer"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second)
}

func TestGenerateCaption(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/content/generate-caption" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		var req transfer.CaptionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Niche != models.NicheWedding || !req.IncludeCTA {
			t.Errorf("request = %+v", req)
		}
		json.NewEncoder(w).Encode(transfer.CaptionResponse{
			Caption:  "A day to remember.",
			Hashtags: []string{"#wedding"},
		})
	})

	got, err := c.GenerateCaption(context.Background(), transfer.CaptionRequest{
		Niche:      models.NicheWedding,
		Tone:       models.ToneProfessional,
		IncludeCTA: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.Caption != "A day to remember." || len(got.Hashtags) != 1 {
		t.Errorf("response = %+v", got)
	}
}

func TestCalendarQueryParams(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendar" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("month") != "02" || q.Get("year") != "2025" {
			t.Errorf("query = %v", q)
		}
		json.NewEncoder(w).Encode(transfer.CalendarResponse{
			Calendar: []models.ScheduledPost{{ID: "s1", ScheduledDate: "2025-02-14"}},
		})
	})

	ref := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)
	items, err := c.Calendar(context.Background(), ref)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].ID != "s1" {
		t.Errorf("items = %+v", items)
	}
}

func TestSchedulePostSendsQueryNotBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("content_id") != "c1" || q.Get("scheduled_date") != "2025-02-14" || q.Get("scheduled_time") != "09:00" {
			t.Errorf("query = %v", q)
		}
		if r.ContentLength > 0 {
			t.Error("expected no request body")
		}
		json.NewEncoder(w).Encode(transfer.ScheduleResponse{Message: "scheduled"})
	})

	resp, err := c.SchedulePost(context.Background(), "c1", "2025-02-14", "09:00")
	if err != nil {
		t.Fatal(err)
	}
	if resp.Message != "scheduled" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestCancelSchedule(t *testing.T) {
	var gotMethod, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusOK)
	})

	if err := c.CancelSchedule(context.Background(), "s9"); err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/calendar/s9" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
}

func TestListContentStatusFilter(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(transfer.ContentListResponse{})
	})

	if _, err := c.ListContent(context.Background(), models.StatusDraft); err != nil {
		t.Fatal(err)
	}
	if gotQuery != "status=draft" {
		t.Errorf("query = %q", gotQuery)
	}

	if _, err := c.ListContent(context.Background(), ""); err != nil {
		t.Fatal(err)
	}
	if gotQuery != "" {
		t.Errorf("unfiltered query = %q", gotQuery)
	}
}

func TestNonSuccessStatusIsAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"boom"}`, http.StatusBadGateway)
	})

	_, err := c.Analytics(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway || apiErr.Path != "/analytics" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestSeasonalIdeasLowercasesMonth(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("month"); got != "june" {
			t.Errorf("month = %q", got)
		}
		json.NewEncoder(w).Encode(transfer.SeasonalResponse{Ideas: []string{"golden hour minis"}})
	})

	ideas, err := c.SeasonalIdeas(context.Background(), "June")
	if err != nil {
		t.Fatal(err)
	}
	if len(ideas) != 1 {
		t.Errorf("ideas = %v", ideas)
	}
}

func TestBaseURLTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/niches" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(transfer.NichesResponse{})
	}))
	defer srv.Close()

	c := New(srv.URL+"/", 5*time.Second)
	if _, err := c.Niches(context.Background()); err != nil {
		t.Fatal(err)
	}
}
