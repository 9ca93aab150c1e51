package links

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkCreatedLayouts(t *testing.T) {
	cases := []struct {
		in   string
		ok   bool
		want time.Time
	}{
		{"2025-12-13T10:11:12Z", true, time.Date(2025, 12, 13, 10, 11, 12, 0, time.UTC)},
		{"2025-12-13T10:11:12.345Z", true, time.Date(2025, 12, 13, 10, 11, 12, 345000000, time.UTC)},
		{"2025-12-13T10:11:12+02:00", true, time.Date(2025, 12, 13, 8, 11, 12, 0, time.UTC)},
		{"2024-01-02T03:04:05", true, time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)},
		{"2024-01-02T03:04:05.123", true, time.Date(2024, 1, 2, 3, 4, 5, 123000000, time.Local)},
		{"2025-12-13", true, time.Date(2025, 12, 13, 0, 0, 0, 0, time.UTC)},
		{"", false, time.Time{}},
		{"yesterday", false, time.Time{}},
	}
	for _, tc := range cases {
		got, ok := Link{CreatedAt: tc.in}.Created()
		require.Equal(t, tc.ok, ok, "Created(%q)", tc.in)
		if ok {
			assert.True(t, got.Equal(tc.want), "Created(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestLinkNullTagsDecodeEmpty(t *testing.T) {
	var l Link
	require.NoError(t, json.Unmarshal([]byte(`{"url":"https://a.example","tags":null}`), &l))
	require.NotNil(t, l.Tags)
	assert.Empty(t, l.Tags)
	assert.Equal(t, "https://a.example", l.URL)
}

func TestLinkDecodeDegradesPerField(t *testing.T) {
	var l Link
	require.NoError(t, json.Unmarshal([]byte(`{
		"url": 42,
		"note": {"text": "nested"},
		"tags": ["go", 7, null, {"x": 1}],
		"source": true,
		"createdAt": 1700000000000
	}`), &l))

	assert.Equal(t, "42", l.URL)
	assert.Empty(t, l.Note)
	assert.Equal(t, []string{"go", "7"}, l.Tags)
	assert.Equal(t, "true", l.Source)

	created, ok := l.Created()
	require.True(t, ok)
	assert.True(t, created.Equal(time.UnixMilli(1700000000000)))
}

func TestLinkDecodeNonObjectIsEmptyRecord(t *testing.T) {
	var l Link
	require.NoError(t, json.Unmarshal([]byte(`"just a string"`), &l))
	assert.Equal(t, Link{Tags: []string{}}, l)
}

func TestLinkDecodeTagsNotArray(t *testing.T) {
	var l Link
	require.NoError(t, json.Unmarshal([]byte(`{"url":"https://a.example","tags":"go"}`), &l))
	assert.Equal(t, []string{}, l.Tags)
}

func TestHasTagIsExact(t *testing.T) {
	l := Link{Tags: []string{"golang", "cli"}}
	assert.False(t, l.HasTag("go"))
	assert.True(t, l.HasTag("cli"))
}

func TestCloneIsDeep(t *testing.T) {
	orig := []Link{{URL: "a", Tags: []string{"x"}}}
	dup := Clone(orig)
	dup[0].Tags[0] = "y"
	assert.Equal(t, "x", orig[0].Tags[0])
	assert.Nil(t, Clone(nil))
}
