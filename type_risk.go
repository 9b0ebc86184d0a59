package advisor

import "strings"

// RiskTolerance is how much volatility the user accepts.
type RiskTolerance int

const (
	LowRisk RiskTolerance = iota
	ModerateRisk
	HighRisk
)

func (r RiskTolerance) String() string {
	switch r {
	case LowRisk:
		return "low"
	case ModerateRisk:
		return "moderate"
	case HighRisk:
		return "high"
	default:
		return "unknown"
	}
}

// ParseRiskTolerance parses a string into a RiskTolerance.
func ParseRiskTolerance(s string) (RiskTolerance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "faible":
		return LowRisk, nil
	case "moderate", "medium", "modéré":
		return ModerateRisk, nil
	case "high", "élevé":
		return HighRisk, nil
	default:
		return 0, invalidf("unknown risk tolerance %q (low, moderate, high)", s)
	}
}

func (r RiskTolerance) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *RiskTolerance) UnmarshalText(text []byte) (err error) {
	*r, err = ParseRiskTolerance(string(text))
	return err
}

// Knowledge is the user's self-assessed financial literacy.
type Knowledge int

const (
	Beginner Knowledge = iota
	Intermediate
	Advanced
)

func (k Knowledge) String() string {
	switch k {
	case Beginner:
		return "beginner"
	case Intermediate:
		return "intermediate"
	case Advanced:
		return "advanced"
	default:
		return "unknown"
	}
}

// ParseKnowledge parses a string into a Knowledge level.
func ParseKnowledge(s string) (Knowledge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner":
		return Beginner, nil
	case "intermediate":
		return Intermediate, nil
	case "advanced":
		return Advanced, nil
	default:
		return 0, invalidf("unknown knowledge level %q (beginner, intermediate, advanced)", s)
	}
}

func (k Knowledge) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Knowledge) UnmarshalText(text []byte) (err error) {
	*k, err = ParseKnowledge(string(text))
	return err
}
