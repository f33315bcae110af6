// Package strength scores passwords with a length and character-variety
// heuristic.
package strength

import "unicode/utf8"

// MaxScore is the normalisation divisor. The highest attainable raw score
// is 6, so Percentage never reaches 100.
const MaxScore = 7

const (
	strongThreshold = 80
	mediumThreshold = 50
)

// Tier is a coarse strength label.
type Tier int

const (
	Weak Tier = iota
	Medium
	Strong
)

func (t Tier) String() string {
	switch t {
	case Strong:
		return "strong"
	case Medium:
		return "medium"
	default:
		return "weak"
	}
}

// MarshalText renders the tier as its lowercase name.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Color is the strength bar colour for the tier.
func (t Tier) Color() string {
	switch t {
	case Strong:
		return "#48bb78"
	case Medium:
		return "#f6ad55"
	default:
		return "#f56565"
	}
}

// Assessment is the result of scoring a password.
type Assessment struct {
	Raw        int     `json:"score"`
	Percentage float64 `json:"percentage"`
	Tier       Tier    `json:"tier"`
}

// Score computes the strength of password. It is pure and never fails.
func Score(password string) Assessment {
	raw := 0

	switch n := utf8.RuneCountInString(password); {
	case n >= 12:
		raw += 2
	case n >= 8:
		raw++
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	for _, present := range []bool{hasUpper, hasLower, hasDigit, hasSpecial} {
		if present {
			raw++
		}
	}

	pct := min(float64(raw)/MaxScore*100, 100)

	return Assessment{
		Raw:        raw,
		Percentage: pct,
		Tier:       tierFor(pct),
	}
}

func tierFor(pct float64) Tier {
	switch {
	case pct >= strongThreshold:
		return Strong
	case pct >= mediumThreshold:
		return Medium
	default:
		return Weak
	}
}
