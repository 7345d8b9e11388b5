package matcher

import (
	"context"
	"sort"
	"strings"

	"jobconnect/internal/catalog"
)

// Query carries the candidate attributes a recommendation request filters on.
// Experience is already coerced to a non-negative integer by the caller.
type Query struct {
	Skills      string
	Designation string
	Experience  int
}

// Match is one recommended posting. Company and Domain start empty and are
// filled in later by the recorder when the company id is known.
type Match struct {
	JobID       int64  `json:"job_id"`
	CompanyID   int64  `json:"company_id"`
	Title       string `json:"title"`
	Designation string `json:"designation"`
	Skills      string `json:"skills"`
	Experience  int    `json:"experience"`
	Score       int    `json:"score"`
	Company     string `json:"company,omitempty"`
	Domain      string `json:"domain,omitempty"`
}

// Policy scores a posting against a query. A false return excludes the
// posting regardless of score.
type Policy interface {
	Score(p catalog.Posting, q Query) (int, bool)
}

// Matcher recommends postings from the catalog. It holds no state across
// calls; the catalog is re-read on every Recommend.
type Matcher struct {
	loader catalog.Loader
	policy Policy
}

func New(loader catalog.Loader, policy Policy) *Matcher {
	if policy == nil {
		policy = DefaultPolicy{}
	}
	return &Matcher{loader: loader, policy: policy}
}

// Recommend returns matching postings ordered by descending score, ties
// broken by ascending job id so identical inputs always produce the same
// sequence. An empty result is not an error; an unreadable catalog is.
func (m *Matcher) Recommend(ctx context.Context, q Query) ([]Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	postings, err := m.loader.Load()
	if err != nil {
		return nil, err
	}

	out := make([]Match, 0, len(postings))
	for _, p := range postings {
		score, ok := m.policy.Score(p, q)
		if !ok {
			continue
		}
		out = append(out, Match{
			JobID:       p.JobID,
			CompanyID:   p.CompanyID,
			Title:       p.Title,
			Designation: p.Designation,
			Skills:      p.Skills,
			Experience:  p.Experience,
			Score:       score,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].JobID < out[j].JobID
	})

	return out, nil
}

// DefaultPolicy awards one point per overlapping skill and two points for an
// exact designation match, both case-insensitive. Postings requiring more
// experience than the candidate has are excluded, as are postings that match
// on nothing at all.
type DefaultPolicy struct{}

func (DefaultPolicy) Score(p catalog.Posting, q Query) (int, bool) {
	if p.Experience > q.Experience {
		return 0, false
	}

	score := 0
	want := SplitSkills(q.Skills)
	if len(want) > 0 {
		have := map[string]struct{}{}
		for _, s := range SplitSkills(p.Skills) {
			have[s] = struct{}{}
		}
		for _, s := range want {
			if _, ok := have[s]; ok {
				score++
			}
		}
	}

	if q.Designation != "" && strings.EqualFold(strings.TrimSpace(p.Designation), strings.TrimSpace(q.Designation)) {
		score += 2
	}

	if score == 0 {
		return 0, false
	}
	return score, true
}

// SplitSkills normalizes a comma-delimited skills string into lowercase,
// trimmed, de-duplicated tokens.
func SplitSkills(s string) []string {
	parts := strings.Split(s, ",")
	seen := map[string]struct{}{}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
