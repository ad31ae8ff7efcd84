// Package match scores the career catalog against a caller's declared
// skills and quiz-derived personality type.
package match

import (
	"sort"
	"strings"

	"github.com/skillsmatch/careermatch/internal/catalog"
	"github.com/skillsmatch/careermatch/internal/quiz"
)

// Scoring weights. The combo bonus is added before the non-negative
// clamp, so a rule can at most lift a low score back to positive, never
// hide behind the floor.
const (
	overlapWeight = 3
	missingWeight = 1
	typeFitBonus  = 5
)

const alreadyFitDetail = "You already match the key skills—great fit!"

// Result is one scored catalog row. Results are computed fresh per
// request and never persisted.
type Result struct {
	Career     string `json:"career"`
	University string `json:"university"`
	Score      int    `json:"score"`
	Details    string `json:"details"`
	Image      string `json:"image,omitempty"`
}

// ComboRule grants a flat bonus to one named career when the caller has
// every listed skill. Rules naming a career absent from the catalog are
// inert.
type ComboRule struct {
	Skills []string
	Career string
	Bonus  int
}

// DefaultComboRules returns the built-in skill-combination bonuses.
func DefaultComboRules() []ComboRule {
	return []ComboRule{
		{Skills: []string{"art", "math"}, Career: "Architect", Bonus: 2},
		{Skills: []string{"programming", "design"}, Career: "Web Developer", Bonus: 2},
		{Skills: []string{"marketing", "writing"}, Career: "Content Creator", Bonus: 2},
	}
}

// Engine ranks catalog entries for a caller. The catalog is injected so
// the engine stays independently testable.
type Engine struct {
	catalog *catalog.Catalog
	combos  []ComboRule
}

// NewEngine builds an engine over the given catalog and combo rules.
func NewEngine(c *catalog.Catalog, combos []ComboRule) *Engine {
	return &Engine{catalog: c, combos: combos}
}

// Score ranks every catalog entry against the caller's skills text and
// personality type, highest score first. Equal scores keep catalog
// declaration order. Empty skills text is a valid input yielding an
// empty skill set, not an error.
func (e *Engine) Score(skillsText string, personality quiz.PersonalityType) []Result {
	skills := catalog.ParseSkills(skillsText)
	entries := e.catalog.Entries()
	results := make([]Result, 0, len(entries))
	for i := range entries {
		results = append(results, e.scoreEntry(&entries[i], skills, personality))
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// Search scores as Score does, then keeps only results whose career,
// university, or detail text contains the lower-cased query as a
// substring. Filtering happens after scoring so the ranking among
// survivors is unchanged. An empty query keeps everything.
func (e *Engine) Search(skillsText string, personality quiz.PersonalityType, query string) []Result {
	results := e.Score(skillsText, personality)
	if query == "" {
		return results
	}
	q := strings.ToLower(query)
	kept := results[:0]
	for _, r := range results {
		if strings.Contains(strings.ToLower(r.Career), q) ||
			strings.Contains(strings.ToLower(r.University), q) ||
			strings.Contains(strings.ToLower(r.Details), q) {
			kept = append(kept, r)
		}
	}
	return kept
}

func (e *Engine) scoreEntry(entry *catalog.Entry, skills map[string]struct{}, personality quiz.PersonalityType) Result {
	overlap := 0
	missing := make([]string, 0, len(entry.RequiredSkills))
	for req := range entry.RequiredSkills {
		if _, ok := skills[req]; ok {
			overlap++
		} else {
			missing = append(missing, req)
		}
	}
	sort.Strings(missing)

	typeFit := 0
	if entry.FitsType(personality) {
		typeFit = typeFitBonus
	}

	score := overlap*overlapWeight + typeFit - len(missing)*missingWeight
	score += e.comboBonus(entry.Career, skills)
	if score < 0 {
		score = 0
	}

	details := alreadyFitDetail
	if len(missing) > 0 {
		details = "Grow by learning " + strings.Join(missing, ", ")
	}

	return Result{
		Career:     entry.Career,
		University: entry.Universities,
		Score:      score,
		Details:    details,
		Image:      entry.Image,
	}
}

func (e *Engine) comboBonus(career string, skills map[string]struct{}) int {
	bonus := 0
	for _, rule := range e.combos {
		if rule.Career != career {
			continue
		}
		have := true
		for _, s := range rule.Skills {
			if _, ok := skills[s]; !ok {
				have = false
				break
			}
		}
		if have {
			bonus += rule.Bonus
		}
	}
	return bonus
}
