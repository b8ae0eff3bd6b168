package models

import "testing"

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		published int
		want      int
	}{
		{"no posts", 0, 0, 0},
		{"all published", 4, 4, 100},
		{"half", 10, 5, 50},
		{"rounds up", 3, 2, 67},
		{"rounds down", 3, 1, 33},
		{"none published", 8, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &AnalyticsSnapshot{TotalPosts: tt.total, PublishedPosts: tt.published}
			if got := s.CompletionRate(); got != tt.want {
				t.Errorf("CompletionRate() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNicheDistributionOrder(t *testing.T) {
	s := &AnalyticsSnapshot{
		PostsByNiche: map[Niche]int{
			NicheBabyShower: 1,
			NicheWedding:    7,
			NicheEvent:      3,
		},
	}

	got := s.NicheDistribution()
	want := []NicheCount{
		{NicheWedding, 7},
		{NicheEvent, 3},
		{NicheBabyShower, 1},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
