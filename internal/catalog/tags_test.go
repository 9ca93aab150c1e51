package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/tagdeck/internal/links"
)

func TestAggregate_Scenario(t *testing.T) {
	got := Aggregate(sample())
	require.Len(t, got, 3)
	assert.Equal(t, TagCount{Tag: "go", Count: 2}, got[0])
	assert.ElementsMatch(t, []TagCount{{"rust", 1}, {"cli", 1}}, got[1:])
}

func TestAggregate_CountsDuplicatesWithinLink(t *testing.T) {
	got := Aggregate([]links.Link{{Tags: []string{"a", "a", "b"}}})
	assert.Equal(t, []TagCount{{"a", 2}, {"b", 1}}, got)
}

func TestAggregate_TiesKeepFirstAppearance(t *testing.T) {
	got := Aggregate([]links.Link{{Tags: []string{"z", "y"}}, {Tags: []string{"x"}}})
	assert.Equal(t, []TagCount{{"z", 1}, {"y", 1}, {"x", 1}}, got)
}

func TestAggregate_Properties(t *testing.T) {
	var all []links.Link
	for i := 0; i < 30; i++ {
		tags := []string{fmt.Sprintf("t%02d", i)}
		for j := 0; j < i%5; j++ {
			tags = append(tags, "common", fmt.Sprintf("t%02d", j))
		}
		all = append(all, links.Link{URL: fmt.Sprintf("u%d", i), Tags: tags})
	}

	got := Aggregate(all)
	assert.LessOrEqual(t, len(got), MaxCloudTags)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Count, got[i].Count, "not sorted at %d", i)
	}
	assert.Equal(t, "common", got[0].Tag)

	small := sample()
	sum := 0
	for _, tc := range Aggregate(small) {
		sum += tc.Count
	}
	assert.Equal(t, TotalOccurrences(small), sum)
}

func TestAggregate_Empty(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
	assert.Empty(t, Aggregate([]links.Link{{URL: "x", Tags: []string{}}}))
}
