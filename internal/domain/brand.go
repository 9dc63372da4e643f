package domain

// BrandBrief describes the brand side of an audience-fit check.
type BrandBrief struct {
	BrandID        string   `json:"brand_id,omitempty"`
	TargetAgeGroup string   `json:"target_age_group,omitempty"`
	Interests      []string `json:"interests,omitempty"`
	ContentStyle   string   `json:"content_style,omitempty"`
	SafetyStrict   bool     `json:"safety_strict,omitempty"`
}

// Age groups recognized by audience-fit and timing scoring.
const (
	AgeGroupTeen       = "13-17"
	AgeGroupYoungAdult = "18-24"
	AgeGroupAdult      = "25-34"
	AgeGroupMiddle     = "35-44"
	AgeGroupSenior     = "45+"
)
