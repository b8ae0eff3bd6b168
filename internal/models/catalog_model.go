package models

// Parameter catalogs for the generation forms. These mirror the options the
// backend accepts; the forms validate against them before any network call.

type HookType string

const (
	HookCuriosity    HookType = "curiosity"
	HookStorytelling HookType = "storytelling"
	HookValue        HookType = "value"
	HookEngagement   HookType = "engagement"
	HookSocialProof  HookType = "social_proof"
)

func HookTypes() []HookType {
	return []HookType{HookCuriosity, HookStorytelling, HookValue, HookEngagement, HookSocialProof}
}

type ReelCategory string

const (
	ReelTrending    ReelCategory = "trending"
	ReelEducational ReelCategory = "educational"
	ReelEngagement  ReelCategory = "engagement_boosters"
)

func ReelCategories() []ReelCategory {
	return []ReelCategory{ReelTrending, ReelEducational, ReelEngagement}
}

type MagnetType string

const (
	MagnetTestimonial MagnetType = "testimonial"
	MagnetPortfolio   MagnetType = "portfolio"
	MagnetValuePosts  MagnetType = "value_posts"
)

func MagnetTypes() []MagnetType {
	return []MagnetType{MagnetTestimonial, MagnetPortfolio, MagnetValuePosts}
}

type CTAType string

const (
	CTABooking    CTAType = "booking"
	CTAEngagement CTAType = "engagement"
	CTALeadGen    CTAType = "lead_generation"
)

func CTATypes() []CTAType {
	return []CTAType{CTABooking, CTAEngagement, CTALeadGen}
}

type TipCategory string

const (
	TipLighting       TipCategory = "lighting"
	TipComposition    TipCategory = "composition"
	TipCameraSettings TipCategory = "camera_settings"
	TipPosing         TipCategory = "posing"
	TipBusiness       TipCategory = "business"
	TipEditing        TipCategory = "editing"
)

func TipCategories() []TipCategory {
	return []TipCategory{TipLighting, TipComposition, TipCameraSettings, TipPosing, TipBusiness, TipEditing}
}

type ImageProvider string

const (
	ProviderGemini ImageProvider = "gemini"
	ProviderOpenAI ImageProvider = "openai"
)

// MonthNames are the lowercase month names the seasonal endpoint accepts.
func MonthNames() []string {
	return []string{
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	}
}
