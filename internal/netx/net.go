package netx

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeBaseURL validates raw as an absolute http(s) URL and strips the
// trailing slash so request paths can be appended directly.
func NormalizeBaseURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("base url %q: unsupported scheme %q", raw, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("base url %q: missing host", raw)
	}

	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}

// BuildURL joins an already normalized base URL with a request path and an
// optional query string. The path must start with "/".
func BuildURL(base, path string, q url.Values) string {
	s := base + path
	if len(q) > 0 {
		s += "?" + q.Encode()
	}
	return s
}
