package util

import (
	"fmt"
	"net/url"
)

// ValidateURL parses a raw URL string and checks it is an absolute HTTP(S)
// URL. A missing scheme is retried with https:// prepended, so bare hosts
// like "youtube.com/watch?v=..." are accepted. Platform support itself is
// yt-dlp's concern; we only reject strings that cannot be a URL at all.
func ValidateURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err == nil && (u.Scheme == "" || u.Host == "") {
		if u2, e2 := url.Parse("https://" + raw); e2 == nil {
			u = u2
		}
	}
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid URL %q", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported URL scheme %q in %q", u.Scheme, raw)
	}
	return u.String(), nil
}
