package models

import (
	"strings"
	"time"
)

// Niche is a category of photography business used to tailor generated content.
type Niche string

const (
	NicheWedding    Niche = "wedding"
	NichePortrait   Niche = "portrait"
	NicheLandscape  Niche = "landscape"
	NicheEvent      Niche = "event"
	NicheHousewarm  Niche = "housewarming"
	NicheBabyShower Niche = "baby_shower"
)

func Niches() []Niche {
	return []Niche{NicheWedding, NichePortrait, NicheLandscape, NicheEvent, NicheHousewarm, NicheBabyShower}
}

func (n Niche) Valid() bool {
	for _, v := range Niches() {
		if n == v {
			return true
		}
	}
	return false
}

// Label is the display form, underscores replaced ("baby_shower" -> "baby shower").
func (n Niche) Label() string {
	return strings.ReplaceAll(string(n), "_", " ")
}

type Tone string

const (
	ToneProfessional  Tone = "professional"
	ToneCasual        Tone = "casual"
	ToneInspirational Tone = "inspirational"
	ToneFun           Tone = "fun"
)

func Tones() []Tone {
	return []Tone{ToneProfessional, ToneCasual, ToneInspirational, ToneFun}
}

type ContentStatus string

const (
	StatusDraft     ContentStatus = "draft"
	StatusScheduled ContentStatus = "scheduled"
	StatusPublished ContentStatus = "published"
)

// ContentDraft is a piece of content held by the backend. The app only ever
// holds a read-only snapshot of it per fetch.
type ContentDraft struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Caption       string        `json:"caption"`
	Hashtags      []string      `json:"hashtags"`
	Niche         Niche         `json:"niche"`
	MediaURL      string        `json:"media_url,omitempty"`
	MediaType     string        `json:"media_type,omitempty"`
	ScheduledDate string        `json:"scheduled_date,omitempty"`
	Status        ContentStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}
