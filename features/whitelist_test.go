package features

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWhitelist(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "whitelist.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadTrustedDomainsWithHeader(t *testing.T) {
	path := writeWhitelist(t, "origin\nexample.com\ngoogle.com\n")

	trusted, err := LoadTrustedDomains(path)
	require.NoError(t, err)

	assert.Equal(t, 2, trusted.Len())
	assert.True(t, trusted.Contains("example.com"))
	assert.True(t, trusted.Contains("google.com"))
	assert.False(t, trusted.Contains("origin"))
}

func TestLoadTrustedDomainsWithoutHeader(t *testing.T) {
	path := writeWhitelist(t, "example.com\ngoogle.com\n\n")

	trusted, err := LoadTrustedDomains(path)
	require.NoError(t, err)

	assert.Equal(t, 2, trusted.Len())
	assert.True(t, trusted.Contains("example.com"))
}

func TestLoadTrustedDomainsMissingFile(t *testing.T) {
	trusted, err := LoadTrustedDomains(filepath.Join(t.TempDir(), "missing.csv"))
	require.NoError(t, err)

	assert.Equal(t, 0, trusted.Len())
	assert.False(t, trusted.Contains("example.com"))
}

func TestTrustedDomainsNilSafe(t *testing.T) {
	var trusted *TrustedDomains
	assert.False(t, trusted.Contains("example.com"))
	assert.Equal(t, 0, trusted.Len())
}
