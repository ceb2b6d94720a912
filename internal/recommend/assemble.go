package recommend

import "strings"

// RankExtras picks up to cfg.TopN gated candidates, then tops up to
// cfg.MaxExtras with the remaining candidates that are gated or in overlap.
func RankExtras(scores *Scores, overlap map[string]struct{}, cfg Config) []string {
	if scores == nil || scores.Len() == 0 {
		return nil
	}
	ranked := scores.Ranked()
	picked := make(map[string]struct{}, cfg.MaxExtras)
	var out []string

	for _, item := range ranked {
		if len(out) >= cfg.TopN {
			break
		}
		if v, _ := scores.Get(item); v >= cfg.Gate {
			out = append(out, item)
			picked[item] = struct{}{}
		}
	}

	for _, item := range ranked {
		if len(out) >= cfg.MaxExtras {
			break
		}
		if _, ok := picked[item]; ok {
			continue
		}
		v, _ := scores.Get(item)
		_, shared := overlap[item]
		if shared || v >= cfg.Gate {
			out = append(out, item)
			picked[item] = struct{}{}
		}
	}
	return out
}

// itemList is an ordered set; the first occurrence of a name wins.
type itemList struct {
	seen  map[string]struct{}
	items []string
}

func newItemList() *itemList {
	return &itemList{seen: map[string]struct{}{}, items: []string{}}
}

func (l *itemList) add(names ...string) {
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := l.seen[n]; ok {
			continue
		}
		l.seen[n] = struct{}{}
		l.items = append(l.items, n)
	}
}

func (l *itemList) list() []string { return l.items }
