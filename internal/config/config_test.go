package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateRequiresExactlyOneSource(t *testing.T) {
	require.ErrorIs(t, Config{}.Validate(), errExactlyOneSource)
	require.ErrorIs(t, Config{URL: "http://example.com", File: "index.html"}.Validate(), errExactlyOneSource)
}

func TestValidateAcceptsURLAlone(t *testing.T) {
	require.NoError(t, Config{URL: "http://example.com"}.Validate())
}

func TestValidateAcceptsFileAlone(t *testing.T) {
	require.NoError(t, Config{File: "index.html"}.Validate())
}
