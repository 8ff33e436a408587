package directory

import (
	"net/url"
	"strconv"
	"strings"

	"charge-finder/core/reconcile"
)

// PhotoURL turns an opaque photo reference into a fetchable URL. v1 media
// names, legacy photo references and synthesized street-level references are
// supported. Blank references yield an empty string.
func (c Config) PhotoURL(ref string) string {
	ref = strings.TrimSpace(ref)
	width := c.PhotoMaxWidth
	if width <= 0 {
		width = 800
	}

	switch {
	case ref == "":
		return ""
	case strings.HasPrefix(ref, reconcile.StreetViewPrefix):
		q := url.Values{}
		q.Set("size", "600x400")
		q.Set("location", strings.TrimPrefix(ref, reconcile.StreetViewPrefix))
		c.sign(q)
		return strings.TrimRight(c.StreetViewURL, "/") + "?" + q.Encode()
	case strings.HasPrefix(ref, "places/"):
		q := url.Values{}
		q.Set("maxWidthPx", strconv.Itoa(width))
		c.sign(q)
		return strings.TrimRight(c.BaseURL, "/") + "/" + ref + "/media?" + q.Encode()
	default:
		q := url.Values{}
		q.Set("maxwidth", strconv.Itoa(width))
		q.Set("photo_reference", ref)
		c.sign(q)
		return strings.TrimRight(c.LegacyBaseURL, "/") + "/photo?" + q.Encode()
	}
}

// PhotoURLs converts a list of references, dropping blanks.
func (c Config) PhotoURLs(refs []string) []string {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		if u := c.PhotoURL(ref); u != "" {
			out = append(out, u)
		}
	}
	return out
}

func (c Config) sign(q url.Values) {
	if c.ApiKey != "" {
		q.Set("key", c.ApiKey)
	}
}
