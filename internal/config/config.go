// Package config binds the flags cmd/toybrowser's cobra root command
// accepts into a plain struct, per SPEC_FULL.md §2.3.
package config

import "errors"

// Config is the resolved set of options for one toybrowser invocation.
type Config struct {
	URL   string // fetch this URL over net/http
	File  string // or load this local HTML file instead
	Watch bool   // run the dev-preview server and re-render on file changes
	Addr  string // bind address for the dev-preview server
}

var errExactlyOneSource = errors.New("exactly one of --url or --file must be set")

// Validate reports whether exactly one input source was given.
func (c Config) Validate() error {
	if (c.URL == "") == (c.File == "") {
		return errExactlyOneSource
	}
	return nil
}
