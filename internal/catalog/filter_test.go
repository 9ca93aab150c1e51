package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/tagdeck/internal/links"
)

func sample() []links.Link {
	return []links.Link{
		{URL: "https://a.example", Tags: []string{"go", "cli"}},
		{URL: "https://b.example", Tags: []string{"go"}},
		{URL: "https://c.example", Tags: []string{"rust"}},
	}
}

func urls(items []links.Link) []string {
	out := make([]string, 0, len(items))
	for _, l := range items {
		out = append(out, l.URL)
	}
	return out
}

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "go", NormalizeQuery("  Go \t"))
	assert.Equal(t, "", NormalizeQuery("   "))
}

func TestFilterTag_Scenario(t *testing.T) {
	res := FilterTag(sample(), "go")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, urls(res.Links))
	assert.Equal(t, Stats{Visible: 2, Total: 3}, res.Stats)
	assert.Equal(t, "2 of 3 links", res.Stats.String())
}

func TestFilterSubstring_EmptyQueryShowsAll(t *testing.T) {
	res := FilterSubstring(sample(), "")
	assert.Len(t, res.Links, 3)
	assert.False(t, res.Stats.Filtered())
	assert.Equal(t, "3 links", res.Stats.String())
}

func TestFilterSubstring_MatchesInsideTags(t *testing.T) {
	res := FilterSubstring(sample(), "us")
	assert.Equal(t, []string{"https://c.example"}, urls(res.Links))

	res = FilterSubstring(sample(), "  CL ")
	assert.Equal(t, []string{"https://a.example"}, urls(res.Links))

	res = FilterSubstring(sample(), "python")
	assert.Empty(t, res.Links)
	assert.Equal(t, "0 of 3 links", res.Stats.String())
}

func TestFilter_ClearRestoresOriginal(t *testing.T) {
	all := sample()
	before := Apply(all, Filter{})
	for _, q := range []string{"go", "r", "zzz", "cli"} {
		_ = Apply(all, Substring(q))
		after := Apply(all, Filter{})
		require.Equal(t, before, after, "query %q", q)
	}
	assert.Equal(t, sample(), all, "input collection mutated")
}

func TestFilterTag_SubsetOfSubstring(t *testing.T) {
	all := append(sample(), links.Link{URL: "https://d.example", Tags: []string{"golang", "Go"}})
	for _, tc := range Aggregate(all) {
		exact := FilterTag(all, tc.Tag)
		sub := FilterSubstring(all, tc.Tag)
		subURLs := map[string]bool{}
		for _, l := range sub.Links {
			subURLs[l.URL] = true
		}
		for _, l := range exact.Links {
			assert.True(t, subURLs[l.URL], "tag %q: %s missing from substring result", tc.Tag, l.URL)
		}
	}
}

func TestFilterTag_IsCaseSensitiveExact(t *testing.T) {
	all := []links.Link{{URL: "x", Tags: []string{"Go"}}, {URL: "y", Tags: []string{"golang"}}}
	assert.Equal(t, []string{"x"}, urls(FilterTag(all, "Go").Links))
	assert.Empty(t, FilterTag(all, "go").Links)
}

func TestFilterConstructors(t *testing.T) {
	assert.False(t, Substring("   ").Active())
	assert.Equal(t, Filter{Mode: ModeSubstring, Value: "go"}, Substring(" GO "))
	assert.Equal(t, Filter{Mode: ModeTag, Value: "Go"}, Tag("Go"))
	assert.False(t, Tag("").Active())
	assert.Equal(t, "", Filter{}.String())
}

func TestStatsString(t *testing.T) {
	assert.Equal(t, "0 links", Stats{}.String())
	assert.Equal(t, "1 link", Stats{Visible: 1, Total: 1}.String())
	assert.Equal(t, "1 of 4 links", Stats{Visible: 1, Total: 4}.String())
}
