package viewmodel

import (
	"context"
	"log/slog"
	"time"

	"github.com/photoflow/photoflow/internal/client"
	"github.com/photoflow/photoflow/internal/notify"
	"github.com/photoflow/photoflow/internal/transfer"
)

// DraftSaver turns generated artifacts into drafts. Saving is fire-and-forget:
// the outcome produces a notification and nothing else, the page's displayed
// results are never touched.
type DraftSaver struct {
	api      *client.Client
	notifier *notify.Center
	timeout  time.Duration
}

func NewDraftSaver(api *client.Client, n *notify.Center, timeout time.Duration) *DraftSaver {
	return &DraftSaver{api: api, notifier: n, timeout: timeout}
}

func (s *DraftSaver) SaveAsync(draft transfer.ContentCreate) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		if _, err := s.api.CreateContent(ctx, draft); err != nil {
			slog.Info(err.Error())
			s.notifier.Error("Failed to save idea")
			return
		}
		s.notifier.Success("Idea saved as draft content!")
	}()
}
