package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ErrNotFound is returned when a path segment names no entry.
var ErrNotFound = errors.New("menu entry not found")

// Resolve picks the entry a segment names: an exact label first, then a
// case-insensitive prefix, then the closest fuzzy match. It returns -1 when
// nothing matches.
func Resolve(labels []string, segment string) int {
	trimmed := strings.TrimSpace(segment)
	if trimmed == "" {
		return -1
	}
	for i, label := range labels {
		if label == trimmed {
			return i
		}
	}
	lower := strings.ToLower(trimmed)
	for i, label := range labels {
		if strings.HasPrefix(strings.ToLower(label), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}

// ResolvePath walks a slash separated path such as "Teste/Teste" and returns
// the index of each segment within its level. Every segment but the last
// must name a sub menu.
func (d Definition) ResolvePath(path string) ([]int, error) {
	trimmed := strings.Trim(strings.TrimSpace(path), "/")
	if trimmed == "" {
		return nil, nil
	}
	segments := strings.Split(trimmed, "/")
	items := d.Items
	indices := make([]int, 0, len(segments))
	for i, segment := range segments {
		labels := make([]string, len(items))
		for j, n := range items {
			labels[j] = n.Label
		}
		idx := Resolve(labels, segment)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, segment)
		}
		if i < len(segments)-1 && !items[idx].IsSub() {
			return nil, fmt.Errorf("%w: %q has no sub menu", ErrNotFound, items[idx].Label)
		}
		indices = append(indices, idx)
		items = items[idx].Items
	}
	return indices, nil
}
