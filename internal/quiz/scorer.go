// Package quiz maps a set of Likert-scale answers to a personality type.
package quiz

// PersonalityType is one of five fixed labels used as a scoring bonus
// category by the match engine.
type PersonalityType string

const (
	TypeTechEnthusiast      PersonalityType = "Tech Enthusiast"
	TypeCreativeThinker     PersonalityType = "Creative Thinker"
	TypeAnalyticalMind      PersonalityType = "Analytical Mind"
	TypeCommunicativeLeader PersonalityType = "Communicative Leader"
	TypeBalanced            PersonalityType = "Balanced"
)

// neutralValue is substituted for any trait the caller did not answer.
const neutralValue = 3

// traits lists the quiz traits in priority order: when two traits share
// the maximum value, the one declared first here wins.
var traits = []string{"tech", "art", "data", "communication", "math", "research"}

// traitTypes maps each winning trait to its personality type.
var traitTypes = map[string]PersonalityType{
	"tech":          TypeTechEnthusiast,
	"art":           TypeCreativeThinker,
	"data":          TypeAnalyticalMind,
	"communication": TypeCommunicativeLeader,
	"math":          TypeAnalyticalMind,
	"research":      TypeAnalyticalMind,
}

// Traits returns the recognized trait names in declaration order.
func Traits() []string {
	out := make([]string, len(traits))
	copy(out, traits)
	return out
}

// Score derives a personality type from Likert answers (1..5 per trait).
// A nil or empty answer set means no quiz was taken and yields Balanced;
// this is distinct from a submission where every trait is neutral, which
// is scored like any other answer set. Unknown answer names are ignored
// and missing traits count as neutral. Values are clamped to 1..5.
func Score(answers map[string]int) PersonalityType {
	if len(answers) == 0 {
		return TypeBalanced
	}
	best := traits[0]
	bestValue := -1
	for _, trait := range traits {
		v, ok := answers[trait]
		if !ok {
			v = neutralValue
		}
		if v < 1 {
			v = 1
		} else if v > 5 {
			v = 5
		}
		if v > bestValue {
			best = trait
			bestValue = v
		}
	}
	return traitTypes[best]
}
