package encounter

// Tier is an encounter difficulty tier.
type Tier int

const (
	TierEasy Tier = iota
	TierMedium
	TierHard
	TierDeadly
)

// Tiers returns every tier in output order.
func Tiers() []Tier {
	return []Tier{TierEasy, TierMedium, TierHard, TierDeadly}
}

// String returns the capitalized tier name used in outcome lines.
func (t Tier) String() string {
	switch t {
	case TierEasy:
		return "Easy"
	case TierMedium:
		return "Medium"
	case TierHard:
		return "Hard"
	case TierDeadly:
		return "Deadly"
	default:
		return "Unknown"
	}
}

// ParseDifficulty maps a single lowercase letter to a tier.
//
// Only "e", "m", "h" and "d" select a tier. Any other value, including the
// empty string, reports ok == false, which callers treat as "all tiers".
// No error is returned for unrecognized letters.
func ParseDifficulty(raw string) (Tier, bool) {
	switch raw {
	case "e":
		return TierEasy, true
	case "m":
		return TierMedium, true
	case "h":
		return TierHard, true
	case "d":
		return TierDeadly, true
	default:
		return 0, false
	}
}
