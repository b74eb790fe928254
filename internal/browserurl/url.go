// Package browserurl parses the restricted URL shape spec.md §6
// accepts as pipeline input: http://host[:port][/path[?query]].
// Grounded in original_source's saba_core::url::Url (ch4), expressed
// in Go as a single Parse function that returns a fresh *URL.
package browserurl

import (
	"strings"

	"toybrowser/internal/browsererr"
)

// URL is the parsed form of an http:// URL string.
type URL struct {
	raw        string
	Host       string
	Port       string
	Path       string
	SearchPart string
}

// Parse parses raw as an http:// URL. Any other scheme, or a missing
// host, is rejected with a browsererr.UnexpectedInput error (spec.md
// §6: "any other scheme is rejected with an input error").
func Parse(raw string) (*URL, error) {
	if !strings.HasPrefix(raw, "http://") {
		return nil, browsererr.New(browsererr.UnexpectedInput, "only the http scheme is supported: %q", raw)
	}

	u := &URL{raw: raw}
	rest := strings.TrimPrefix(raw, "http://")
	parts := strings.SplitN(rest, "/", 2)

	hostPort := parts[0]
	if hostPort == "" {
		return nil, browsererr.New(browsererr.UnexpectedInput, "url has no host: %q", raw)
	}
	if idx := strings.Index(hostPort, ":"); idx >= 0 {
		u.Host = hostPort[:idx]
		u.Port = hostPort[idx+1:]
	} else {
		u.Host = hostPort
		u.Port = "80"
	}

	if len(parts) == 2 {
		pathAndQuery := strings.SplitN(parts[1], "?", 2)
		u.Path = pathAndQuery[0]
		if len(pathAndQuery) == 2 {
			u.SearchPart = pathAndQuery[1]
		}
	}
	return u, nil
}

// String reconstructs the URL from its parsed fields.
func (u *URL) String() string {
	var b strings.Builder
	b.WriteString("http://")
	b.WriteString(u.Host)
	if u.Port != "" && u.Port != "80" {
		b.WriteString(":")
		b.WriteString(u.Port)
	}
	b.WriteString("/")
	b.WriteString(u.Path)
	if u.SearchPart != "" {
		b.WriteString("?")
		b.WriteString(u.SearchPart)
	}
	return b.String()
}
