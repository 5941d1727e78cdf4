package service

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"nftmarket/common/utils"
)

// matchRank scores query against the candidate keys, lower is better, -1 no match.
// Subsequence matches rank by edit distance, a small edit distance also matches
// so that typos still find the record.
func matchRank(query string, keys ...string) int {
	query = strings.TrimSpace(query)
	best := -1
	for _, key := range keys {
		if key == "" {
			continue
		}
		r := fuzzy.RankMatchNormalizedFold(query, key)
		if r < 0 {
			d := fuzzy.LevenshteinDistance(strings.ToLower(query), strings.ToLower(key))
			if d <= len([]rune(query))/3 {
				r = d
			}
		}
		if r >= 0 && (best < 0 || r < best) {
			best = r
		}
	}
	return best
}

// fuzzyFilter keeps the items matching query, best match first.
// An empty query keeps everything in the original order.
func fuzzyFilter[T any](items []T, query string, keys func(T) []string) []T {
	if strings.TrimSpace(query) == "" {
		return items
	}
	type ranked struct {
		item T
		rank int
	}
	var hits []ranked
	for _, it := range items {
		if r := matchRank(query, keys(it)...); r >= 0 {
			hits = append(hits, ranked{it, r})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].rank < hits[j].rank })
	out := make([]T, len(hits))
	for i, h := range hits {
		out[i] = h.item
	}
	return out
}

// sortKey one "field:order" criterion
type sortKey struct {
	Field string
	Desc  bool
}

// parseSort parses "price:asc,bestOffer:desc", the order defaults to asc
func parseSort(s string, allowed ...string) ([]sortKey, error) {
	var keys []sortKey
	for _, part := range utils.SplitList(s) {
		field, order, _ := strings.Cut(part, ":")
		ok := false
		for _, a := range allowed {
			if a == field {
				ok = true
				break
			}
		}
		if !ok {
			return nil, Invalid("sort", "unknown sort field "+field)
		}
		switch strings.ToLower(order) {
		case "", "asc":
			keys = append(keys, sortKey{Field: field})
		case "desc":
			keys = append(keys, sortKey{Field: field, Desc: true})
		default:
			return nil, Invalid("sort", "order must be asc or desc")
		}
	}
	return keys, nil
}

// sortBy stable sorts items by the criteria, value returns the numeric field of an item
func sortBy[T any](items []T, keys []sortKey, value func(T, string) float64) {
	if len(keys) == 0 {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		for _, k := range keys {
			a, b := value(items[i], k.Field), value(items[j], k.Field)
			if a == b {
				continue
			}
			if k.Desc {
				return a > b
			}
			return a < b
		}
		return false
	})
}
