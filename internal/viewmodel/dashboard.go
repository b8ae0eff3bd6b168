package viewmodel

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"github.com/photoflow/photoflow/internal/client"
	"github.com/photoflow/photoflow/internal/models"
	"github.com/photoflow/photoflow/internal/notify"
)

// recentLimit caps the recent-content list on the dashboard.
const recentLimit = 4

// DashboardView holds the analytics snapshot and the recent content shown on
// the landing page. Both are fetched together and swapped atomically.
type DashboardView struct {
	api      *client.Client
	notifier *notify.Center

	mu        sync.Mutex
	analytics *models.AnalyticsSnapshot
	recent    []models.ContentDraft
	loading   bool
}

func NewDashboardView(api *client.Client, n *notify.Center) *DashboardView {
	return &DashboardView{api: api, notifier: n}
}

// Load fetches analytics and the content list together. Either failure keeps
// the prior state.
func (v *DashboardView) Load(ctx context.Context) {
	v.mu.Lock()
	v.loading = true
	v.mu.Unlock()

	analytics, analyticsErr := v.api.Analytics(ctx)
	content, contentErr := v.api.ListContent(ctx, "")

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if analyticsErr != nil || contentErr != nil {
		if analyticsErr != nil {
			slog.Info(analyticsErr.Error())
		}
		if contentErr != nil {
			slog.Info(contentErr.Error())
		}
		return
	}
	v.analytics = analytics
	if len(content) > recentLimit {
		content = content[:recentLimit]
	}
	v.recent = content
}

// RefreshAnalytics re-fetches the snapshot alone; the background job uses it.
func (v *DashboardView) RefreshAnalytics(ctx context.Context) {
	analytics, err := v.api.Analytics(ctx)
	if err != nil {
		slog.Info(err.Error())
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.analytics = analytics
}

// StatCard is one headline number on the dashboard.
type StatCard struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DashboardPage is the assembled landing page state.
type DashboardPage struct {
	Stats   []StatCard            `json:"stats"`
	Recent  []models.ContentDraft `json:"recent"`
	Loading bool                  `json:"loading"`
}

func (v *DashboardView) Page() DashboardPage {
	v.mu.Lock()
	defer v.mu.Unlock()

	page := DashboardPage{Recent: v.recent, Loading: v.loading}
	if v.analytics == nil {
		return page
	}
	a := v.analytics
	page.Stats = []StatCard{
		{Label: "Total Posts", Value: strconv.Itoa(a.TotalPosts)},
		{Label: "Scheduled", Value: strconv.Itoa(a.ScheduledPosts)},
		{Label: "Ideas Generated", Value: strconv.Itoa(a.ContentIdeasGenerated)},
		{Label: "Best Niche", Value: a.BestPerformingNiche.Label()},
	}
	return page
}

// AnalyticsView is the analytics page; it reads the same snapshot shape but
// keeps its own instance so the pages stay independent.
type AnalyticsView struct {
	api *client.Client

	mu        sync.Mutex
	analytics *models.AnalyticsSnapshot
	loading   bool
}

func NewAnalyticsView(api *client.Client) *AnalyticsView {
	return &AnalyticsView{api: api}
}

func (v *AnalyticsView) Load(ctx context.Context) {
	v.mu.Lock()
	v.loading = true
	v.mu.Unlock()

	analytics, err := v.api.Analytics(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if err != nil {
		slog.Info(err.Error())
		return
	}
	v.analytics = analytics
}

// AnalyticsPage is the assembled analytics page state.
type AnalyticsPage struct {
	Snapshot       *models.AnalyticsSnapshot `json:"snapshot"`
	Distribution   []models.NicheCount       `json:"distribution"`
	CompletionRate int                       `json:"completion_rate"`
	Loading        bool                      `json:"loading"`
}

func (v *AnalyticsView) Page() AnalyticsPage {
	v.mu.Lock()
	defer v.mu.Unlock()

	page := AnalyticsPage{Loading: v.loading}
	if v.analytics != nil {
		page.Snapshot = v.analytics
		page.Distribution = v.analytics.NicheDistribution()
		page.CompletionRate = v.analytics.CompletionRate()
	}
	return page
}
