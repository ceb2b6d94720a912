package recommend

import (
	"sort"
	"strings"

	types "github.com/yungbote/carryhelper-backend/internal/domain"
)

// Scores maps item names to summed rule weights and remembers the order in
// which each name was first seen.
type Scores struct {
	order []string
	byKey map[string]int
}

func NewScores() *Scores {
	return &Scores{byKey: map[string]int{}}
}

func (s *Scores) Add(item string, weight int) {
	item = strings.TrimSpace(item)
	if item == "" {
		return
	}
	if _, ok := s.byKey[item]; !ok {
		s.order = append(s.order, item)
	}
	s.byKey[item] += weight
}

// Merge adds every entry of o, keeping s's first-seen order in front.
func (s *Scores) Merge(o *Scores) {
	if o == nil {
		return
	}
	for _, item := range o.order {
		s.Add(item, o.byKey[item])
	}
}

func (s *Scores) Get(item string) (int, bool) {
	v, ok := s.byKey[item]
	return v, ok
}

func (s *Scores) Len() int { return len(s.order) }

// Items returns names in first-seen order.
func (s *Scores) Items() []string {
	return append([]string(nil), s.order...)
}

// Ranked returns names by descending score; ties keep first-seen order.
func (s *Scores) Ranked() []string {
	out := s.Items()
	sort.SliceStable(out, func(i, j int) bool { return s.byKey[out[i]] > s.byKey[out[j]] })
	return out
}

// ScoreRules sums the weight of every eligible, non-default rule per item.
// A rule is eligible when it is generic or bound to worn.
func ScoreRules(rules []*types.ActivityItemRule, worn string) *Scores {
	s := NewScores()
	for _, r := range byID(rules) {
		if r.IsDefault || !r.AppliesTo(worn) {
			continue
		}
		s.Add(r.ItemName, r.Weight())
	}
	return s
}

// DefaultItems returns the must-carry items among the eligible rules.
func DefaultItems(rules []*types.ActivityItemRule, worn string) []string {
	var out []string
	for _, r := range byID(rules) {
		if r.IsDefault && r.AppliesTo(worn) {
			out = append(out, r.ItemName)
		}
	}
	return out
}

// Overlap returns the names scored for both a and b.
func Overlap(a, b *Scores) map[string]struct{} {
	out := map[string]struct{}{}
	if a == nil || b == nil {
		return out
	}
	for _, item := range a.order {
		if _, ok := b.byKey[item]; ok {
			out[item] = struct{}{}
		}
	}
	return out
}
