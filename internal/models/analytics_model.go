package models

import "math"

type TrendPoint struct {
	Day        string `json:"day"`
	Posts      int    `json:"posts"`
	Engagement int    `json:"engagement"`
}

// AnalyticsSnapshot is recomputed entirely by the backend on each fetch.
type AnalyticsSnapshot struct {
	TotalPosts            int           `json:"total_posts"`
	ScheduledPosts        int           `json:"scheduled_posts"`
	PublishedPosts        int           `json:"published_posts"`
	Drafts                int           `json:"drafts"`
	PostsByNiche          map[Niche]int `json:"posts_by_niche"`
	EngagementTrend       []TrendPoint  `json:"engagement_trend"`
	BestPerformingNiche   Niche         `json:"best_performing_niche"`
	ContentIdeasGenerated int           `json:"content_ideas_generated"`
}

// CompletionRate is the published share of all posts, as a rounded percentage.
// Zero when there are no posts at all.
func (s *AnalyticsSnapshot) CompletionRate() int {
	if s.TotalPosts <= 0 {
		return 0
	}
	return int(math.Round(float64(s.PublishedPosts) / float64(s.TotalPosts) * 100))
}

// NicheCount pairs a niche with its post count for ordered display.
type NicheCount struct {
	Niche Niche `json:"niche"`
	Count int   `json:"count"`
}

// NicheDistribution flattens PostsByNiche into the canonical niche order so
// the chart legend is stable between fetches.
func (s *AnalyticsSnapshot) NicheDistribution() []NicheCount {
	out := make([]NicheCount, 0, len(Niches()))
	for _, n := range Niches() {
		if c, ok := s.PostsByNiche[n]; ok {
			out = append(out, NicheCount{Niche: n, Count: c})
		}
	}
	return out
}
