package recommend

import (
	"context"
	"fmt"
	"sort"
	"strings"

	types "github.com/yungbote/carryhelper-backend/internal/domain"
)

// SelectEvents splits an ascending upcoming list into current and next.
func SelectEvents(events []*types.Event) (current, next *types.Event) {
	if len(events) > 0 {
		current = events[0]
	}
	if len(events) > 1 {
		next = events[1]
	}
	return current, next
}

// DefaultShoe returns the shoe type of the lowest-id rule for activity that
// names one, or "" when there is none.
func DefaultShoe(ctx context.Context, store RuleStore, activity string) (string, error) {
	if strings.TrimSpace(activity) == "" {
		return "", nil
	}
	rules, err := store.Rules(ctx, activity)
	if err != nil {
		return "", fmt.Errorf("rules for %q: %w", activity, err)
	}
	for _, r := range byID(rules) {
		if r.ShoeType != nil && strings.TrimSpace(*r.ShoeType) != "" {
			return strings.TrimSpace(*r.ShoeType), nil
		}
	}
	return "", nil
}

// ShouldContinue reports whether the next event is folded into the
// recommendation: the user already wears what next calls for and not what
// current calls for.
func ShouldContinue(worn, currentDefault string, next *types.Event, nextDefault string) bool {
	if next == nil || next.Activity() == "" {
		return false
	}
	if nextDefault == "" {
		return false
	}
	return worn == nextDefault && worn != currentDefault
}

// byID returns rules sorted by ascending id without touching the input.
func byID(rules []*types.ActivityItemRule) []*types.ActivityItemRule {
	out := make([]*types.ActivityItemRule, 0, len(rules))
	for _, r := range rules {
		if r != nil {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
