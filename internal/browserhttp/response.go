// Package browserhttp frames a raw HTTP response (status line, headers,
// body) exactly as original_source's saba_core::http::HttpResponse
// does (ch6): normalize CRLF to LF, split the status line from the
// rest on the first newline, then split headers from the body on the
// first blank line.
package browserhttp

import (
	"strconv"
	"strings"

	"toybrowser/internal/browsererr"
)

// Response is a parsed HTTP response.
type Response struct {
	Version    string
	StatusCode int
	Reason     string
	Headers    []Header
	Body       string
}

// Header is one "name: value" response header.
type Header struct {
	Name  string
	Value string
}

// Parse frames raw into a Response. A response with no newline at all
// (so no complete status line) is a hard Network error (spec.md §7);
// everything past that is tolerant of missing pieces (no headers, no
// body).
func Parse(raw string) (*Response, error) {
	normalized := strings.TrimLeft(strings.ReplaceAll(raw, "\r\n", "\n"), " \t\n")

	statusLine, remaining, ok := strings.Cut(normalized, "\n")
	if !ok {
		return nil, browsererr.New(browsererr.Network, "invalid http response: %q", normalized)
	}

	headerBlock, body, hasBody := strings.Cut(remaining, "\n\n")
	if !hasBody {
		headerBlock = ""
		body = remaining
	}

	var headers []Header
	if headerBlock != "" {
		for _, line := range strings.Split(headerBlock, "\n") {
			name, value, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}
			headers = append(headers, Header{Name: strings.TrimSpace(name), Value: strings.TrimSpace(value)})
		}
	}

	fields := strings.SplitN(statusLine, " ", 3)
	resp := &Response{Headers: headers, Body: body}
	if len(fields) > 0 {
		resp.Version = fields[0]
	}
	if len(fields) > 1 {
		code, err := strconv.Atoi(fields[1])
		if err != nil {
			code = 404
		}
		resp.StatusCode = code
	}
	if len(fields) > 2 {
		resp.Reason = fields[2]
	}
	return resp, nil
}

// HeaderValue returns the value of the first header named name, case
// sensitively, matching the original's header_value lookup.
func (r *Response) HeaderValue(name string) (string, bool) {
	for _, h := range r.Headers {
		if h.Name == name {
			return h.Value, true
		}
	}
	return "", false
}
