package dataset

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phishvet-poc/features"
)

func buildFrom(t *testing.T, input string, trusted *features.TrustedDomains) (BuildStats, [][]string) {
	t.Helper()

	var out bytes.Buffer
	stats, err := Build(strings.NewReader(input), &out, trusted)
	require.NoError(t, err)

	rows, err := csv.NewReader(&out).ReadAll()
	require.NoError(t, err)
	return stats, rows
}

func TestBuildWritesFullTable(t *testing.T) {
	input := "url,label,domain_age,ssl_age\n" +
		"http://paypa1.com/login,1,45,10\n" +
		"https://www.google.com/,0,9000,200\n"

	stats, rows := buildFrom(t, input, features.NewTrustedDomains("google.com"))

	assert.Equal(t, 2, stats.Written)
	assert.Equal(t, 0, stats.Skipped)
	require.Len(t, rows, 3)

	header := rows[0]
	require.Len(t, header, features.NumFeatures+1)
	assert.Equal(t, "len_url", header[0])
	assert.Equal(t, "suspicious_age_combo", header[29])
	assert.Equal(t, "label", header[30])

	phishing := rows[1]
	require.Len(t, phishing, features.NumFeatures+1)
	assert.Equal(t, "45", phishing[27], "domain_age")
	assert.Equal(t, "10", phishing[28], "ssl_age")
	assert.Equal(t, "1", phishing[29], "combo: both young")
	assert.Equal(t, "1", phishing[30], "label")

	benign := rows[2]
	assert.Equal(t, "0", benign[29], "combo: old domain and cert")
	assert.Equal(t, "1", benign[26], "is_whitelisted")
	assert.Equal(t, "0", benign[30], "label")
}

func TestBuildDefaultsMissingAgeColumns(t *testing.T) {
	input := "url,label\nhttp://example.com,0\n"

	stats, rows := buildFrom(t, input, features.NewTrustedDomains())

	assert.Equal(t, 1, stats.Written)
	require.Len(t, rows, 2)

	row := rows[1]
	assert.Equal(t, "-1", row[27])
	assert.Equal(t, "-1", row[28])
	assert.Equal(t, "1", row[29], "both sentinels imply the combo flag")
}

func TestBuildTreatsNAAsSentinel(t *testing.T) {
	input := "url,label,domain_age,ssl_age\n" +
		"http://example.com,0,NA,nan\n" +
		"http://example.org,0,garbage,\n"

	_, rows := buildFrom(t, input, features.NewTrustedDomains())

	require.Len(t, rows, 3)
	for _, row := range rows[1:] {
		assert.Equal(t, "-1", row[27])
		assert.Equal(t, "-1", row[28])
	}
}

func TestBuildHeaderCaseInsensitive(t *testing.T) {
	input := "URL, Label \nhttp://example.com,1\n"

	stats, _ := buildFrom(t, input, features.NewTrustedDomains())
	assert.Equal(t, 1, stats.Written)
}

func TestBuildMissingRequiredColumns(t *testing.T) {
	var out bytes.Buffer

	_, err := Build(strings.NewReader("address,label\nx,1\n"), &out, features.NewTrustedDomains())
	assert.ErrorContains(t, err, "url")

	out.Reset()
	_, err = Build(strings.NewReader("url,class\nx,1\n"), &out, features.NewTrustedDomains())
	assert.ErrorContains(t, err, "label")
}

func TestBuildEmptyInput(t *testing.T) {
	var out bytes.Buffer

	_, err := Build(strings.NewReader(""), &out, features.NewTrustedDomains())
	assert.Error(t, err)
}

func TestBuildMalformedURLStillWritten(t *testing.T) {
	input := "url,label\nhttp://exa mple.com/x,1\n"

	stats, rows := buildFrom(t, input, features.NewTrustedDomains())

	assert.Equal(t, 1, stats.Written)
	require.Len(t, rows, 2)
	// fallback vector is all zeros up to the dynamic tail
	assert.Equal(t, "0", rows[1][0])
	assert.Equal(t, "0", rows[1][26])
}
