package dashboard

import "strings"

// Risk is the coarse risk class of a crafting opportunity.
type Risk int

const (
	RiskUnknown Risk = iota
	RiskLow
	RiskMedium
	RiskHigh
)

// ClassifyRisk maps the backend's free-form risk string onto a Risk. Matching
// ignores case and surrounding space; anything else is RiskUnknown.
func ClassifyRisk(s string) Risk {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return RiskLow
	case "medium":
		return RiskMedium
	case "high":
		return RiskHigh
	default:
		return RiskUnknown
	}
}

func (r Risk) Label() string {
	switch r {
	case RiskLow:
		return "Low"
	case RiskMedium:
		return "Medium"
	case RiskHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// Icon is a single-cell glyph for the class. Medium and High share a glyph
// and differ by colour only.
func (r Risk) Icon() string {
	switch r {
	case RiskLow:
		return "✔"
	case RiskMedium, RiskHigh:
		return "▲"
	default:
		return "●"
	}
}

func (r Risk) String() string {
	return r.Label()
}
