package catalog

import (
	"cmp"
	"slices"

	"github.com/five82/tagdeck/internal/links"
)

// MaxCloudTags bounds the tag cloud.
const MaxCloudTags = 20

// TagCount is one tag cloud entry.
type TagCount struct {
	Tag   string
	Count int
}

// Aggregate counts every tag occurrence across all links, most frequent
// first, truncated to MaxCloudTags. Ties keep first-appearance order.
func Aggregate(all []links.Link) []TagCount {
	index := make(map[string]int)
	var counts []TagCount
	for _, l := range all {
		for _, tag := range l.Tags {
			if i, ok := index[tag]; ok {
				counts[i].Count++
				continue
			}
			index[tag] = len(counts)
			counts = append(counts, TagCount{Tag: tag, Count: 1})
		}
	}
	slices.SortStableFunc(counts, func(a, b TagCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if len(counts) > MaxCloudTags {
		counts = counts[:MaxCloudTags]
	}
	return counts
}

// TotalOccurrences counts tag occurrences, duplicates included.
func TotalOccurrences(all []links.Link) int {
	total := 0
	for _, l := range all {
		total += len(l.Tags)
	}
	return total
}
