package models

import "strings"

// ArtifactKind tags the heterogeneous records returned by the generation
// endpoints. Every artifact maps itself to a Card explicitly instead of the
// caller probing for whichever field happens to be present.
type ArtifactKind string

const (
	KindIdea   ArtifactKind = "idea"
	KindHook   ArtifactKind = "hook"
	KindReel   ArtifactKind = "reel"
	KindMagnet ArtifactKind = "magnet"
	KindTip    ArtifactKind = "tip"
	KindMix    ArtifactKind = "mix"
)

// Card is the common display shape for one generated artifact. CopyText is
// the full text placed on the clipboard by the card's copy action.
type Card struct {
	Kind     ArtifactKind `json:"kind"`
	Title    string       `json:"title"`
	Body     string       `json:"body"`
	Category string       `json:"category,omitempty"`
	Hashtags []string     `json:"hashtags,omitempty"`
	CopyText string       `json:"copy_text"`
}

// joinCopy assembles clipboard text from non-empty parts separated by blank
// lines, matching the copy buttons of the original pages.
func joinCopy(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n\n")
}

// ContentIdea is one AI-generated post idea.
type ContentIdea struct {
	ID                string   `json:"id"`
	Niche             Niche    `json:"niche"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	SuggestedCaption  string   `json:"suggested_caption"`
	SuggestedHashtags []string `json:"suggested_hashtags"`
	BestTimeToPost    string   `json:"best_time_to_post"`
	ContentType       string   `json:"content_type"` // photo, carousel, reel, story
}

func (i ContentIdea) Card() Card {
	return Card{
		Kind:     KindIdea,
		Title:    i.Title,
		Body:     i.SuggestedCaption,
		Category: string(i.Niche),
		Hashtags: i.SuggestedHashtags,
		CopyText: joinCopy(i.SuggestedCaption, strings.Join(i.SuggestedHashtags, " ")),
	}
}

// ViralHook is an attention-grabbing opening line with its full caption.
type ViralHook struct {
	Hook        string   `json:"hook"`
	FullCaption string   `json:"full_caption"`
	BestFor     string   `json:"best_for"`
	Hashtags    []string `json:"hashtags"`
}

func (h ViralHook) Card() Card {
	return Card{
		Kind:     KindHook,
		Title:    h.Hook,
		Body:     h.FullCaption,
		Category: h.BestFor,
		Hashtags: h.Hashtags,
		CopyText: joinCopy(h.Hook, h.FullCaption, strings.Join(h.Hashtags, " ")),
	}
}

// ReelIdea is a short-form video concept.
type ReelIdea struct {
	Title                   string   `json:"title"`
	Concept                 string   `json:"concept"`
	Hook                    string   `json:"hook"`
	ScriptOutline           string   `json:"script_outline"`
	TrendingAudioSuggestion string   `json:"trending_audio_suggestion"`
	Duration                string   `json:"duration"`
	Hashtags                []string `json:"hashtags"`
}

func (r ReelIdea) Card() Card {
	hookLine := ""
	if r.Hook != "" {
		hookLine = "Hook: " + r.Hook
	}
	return Card{
		Kind:     KindReel,
		Title:    r.Title,
		Body:     r.Concept,
		Category: r.Duration,
		Hashtags: r.Hashtags,
		CopyText: joinCopy(r.Title, r.Concept, hookLine, strings.Join(r.Hashtags, " ")),
	}
}

// ClientMagnet is a single post template built to attract client enquiries.
type ClientMagnet struct {
	Caption     string   `json:"caption"`
	CTA         string   `json:"cta"`
	Hashtags    []string `json:"hashtags"`
	PostingTips []string `json:"posting_tips"`
}

func (m ClientMagnet) Card() Card {
	return Card{
		Kind:     KindMagnet,
		Title:    "Client Magnet Post",
		Body:     m.Caption,
		Category: m.CTA,
		Hashtags: m.Hashtags,
		CopyText: joinCopy(m.Caption, m.CTA, strings.Join(m.Hashtags, " ")),
	}
}

// Tip is one photography tip within its category.
type Tip struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

func (t Tip) Card() Card {
	return Card{
		Kind:     KindTip,
		Title:    strings.ReplaceAll(t.Category, "_", " "),
		Body:     t.Text,
		Category: t.Category,
		CopyText: t.Text,
	}
}

// MixIdea is one content-mix suggestion (behind the scenes, educational, ...).
type MixIdea struct {
	Category string `json:"category"`
	Idea     string `json:"idea"`
}

func (m MixIdea) Card() Card {
	return Card{
		Kind:     KindMix,
		Title:    strings.ReplaceAll(m.Category, "_", " "),
		Body:     m.Idea,
		Category: m.Category,
		CopyText: m.Idea,
	}
}

// Cards maps a slice of any artifact type onto the display shape.
func Cards[T interface{ Card() Card }](items []T) []Card {
	out := make([]Card, 0, len(items))
	for _, it := range items {
		out = append(out, it.Card())
	}
	return out
}
