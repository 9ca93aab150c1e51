package links

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// dateOnlyLayout covers links captured with a bare calendar date.
const dateOnlyLayout = "2006-01-02"

// Link mirrors one saved bookmark in the /links payload.
type Link struct {
	URL       string   `json:"url"`
	Note      string   `json:"note,omitempty"`
	Tags      []string `json:"tags"`
	Source    string   `json:"source"`
	CreatedAt string   `json:"createdAt"`
}

// timestampLayouts are tried in order by Created. Values without an offset
// are read in local time.
var timestampLayouts = []struct {
	layout string
	local  bool
}{
	{time.RFC3339Nano, false},
	{time.RFC3339, false},
	{"2006-01-02T15:04:05.999999999", true},
	{"2006-01-02T15:04:05", true},
	{dateOnlyLayout, false},
}

// UnmarshalJSON decodes one record field by field. A field of the wrong type
// degrades on its own instead of failing the whole collection: strings are
// taken as-is, numbers and booleans keep their JSON text, and a numeric
// createdAt is read as epoch milliseconds. A missing or null tag list decodes
// as empty.
func (l *Link) UnmarshalJSON(data []byte) error {
	*l = Link{Tags: []string{}}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		// Not an object; keep an empty record so the rest of the list loads.
		return nil
	}

	l.URL = textField(fields["url"])
	l.Note = textField(fields["note"])
	l.Source = textField(fields["source"])
	l.CreatedAt = createdField(fields["createdAt"])

	var tags []json.RawMessage
	if err := json.Unmarshal(fields["tags"], &tags); err == nil {
		for _, raw := range tags {
			if tag := textField(raw); tag != "" {
				l.Tags = append(l.Tags, tag)
			}
		}
	}
	return nil
}

// textField returns a JSON string's value, or the raw JSON text for any other
// scalar. Null, missing, objects and arrays yield "".
func textField(raw json.RawMessage) string {
	raw = json.RawMessage(strings.TrimSpace(string(raw)))
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case 'n', '{', '[':
		return ""
	default:
		return string(raw)
	}
}

func createdField(raw json.RawMessage) string {
	text := textField(raw)
	if trimmed := strings.TrimSpace(string(raw)); trimmed != "" && trimmed[0] != '"' {
		if ms, err := strconv.ParseInt(text, 10, 64); err == nil {
			return time.UnixMilli(ms).UTC().Format(time.RFC3339Nano)
		}
	}
	return text
}

// Created parses CreatedAt. The bool is false when the value is missing or not
// a recognised timestamp; callers fall back to the raw string.
func (l Link) Created() (time.Time, bool) {
	value := strings.TrimSpace(l.CreatedAt)
	if value == "" {
		return time.Time{}, false
	}
	for _, ts := range timestampLayouts {
		loc := time.UTC
		if ts.local {
			loc = time.Local
		}
		if t, err := time.ParseInLocation(ts.layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// HasTag reports whether tag appears verbatim in the link's tag list.
func (l Link) HasTag(tag string) bool {
	for _, t := range l.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Envelope is the top-level response wrapper returned by the links endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Links   []Link `json:"links,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Clone returns a deep copy of the collection.
func Clone(items []Link) []Link {
	if items == nil {
		return nil
	}
	dup := make([]Link, len(items))
	for i, item := range items {
		dup[i] = item
		if item.Tags != nil {
			dup[i].Tags = append([]string(nil), item.Tags...)
		}
	}
	return dup
}
