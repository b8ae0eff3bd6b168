package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/photoflow/photoflow/internal/viewmodel"
)

// AnalyticsRefreshJob keeps the dashboard snapshot warm between visits. It
// only touches the analytics half of the page; recent content still loads on
// page view.
type AnalyticsRefreshJob struct {
	dashboard *viewmodel.DashboardView
}

func NewAnalyticsRefreshJob(dashboard *viewmodel.DashboardView) *AnalyticsRefreshJob {
	return &AnalyticsRefreshJob{dashboard: dashboard}
}

func (j *AnalyticsRefreshJob) Refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	slog.Debug("refreshing analytics snapshot")
	j.dashboard.RefreshAnalytics(ctx)
}
