package format

import (
	"net/url"
	"strings"
)

// Domain returns the lowercased hostname of raw without a leading "www.".
// Values that do not parse as an absolute URL are returned unchanged.
func Domain(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Hostname() == "" {
		return raw
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}
