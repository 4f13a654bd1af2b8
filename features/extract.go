package features

import (
	"net/url"
	"strings"
)

// Metadata carries the explanatory side-channel of static extraction.
type Metadata struct {
	Whitelisted      bool
	TyposquatMessage string
}

// StaticResult is a tagged extraction outcome: either a real parsed vector
// or the documented all-zero fallback for input that could not be parsed.
// Callers can tell the two apart via Fallback.
type StaticResult struct {
	Vector   []float64 // always length NumStatic
	Fallback bool
	Meta     Metadata
}

// ExtractStatic computes the 27 static features of a URL in canonical
// order. It is deterministic, performs no I/O, and never fails: any parse
// error degrades atomically to an all-zero vector with empty metadata.
func ExtractStatic(rawURL string, trusted *TrustedDomains) StaticResult {
	clean := NormalizeURL(rawURL)
	input := "http://" + clean

	parsed, err := url.Parse(input)
	if err != nil {
		return StaticResult{Vector: make([]float64, NumStatic), Fallback: true}
	}

	// netloc includes userinfo when present, matching how the training
	// vectors measured the host portion.
	host := parsed.Host
	if parsed.User != nil {
		host = parsed.User.String() + "@" + parsed.Host
	}
	path := parsed.Path
	query := parsed.RawQuery
	parts := SplitHost(parsed.Hostname())

	features := make([]float64, 0, NumStatic)

	// Lengths (6)
	features = append(features,
		float64(runeLen(input)),
		float64(runeLen(host)),
		float64(runeLen(path)),
		float64(runeLen(parts.Domain)),
		float64(runeLen(parts.Subdomain)),
	)
	pathLevel := 0
	if path != "" {
		pathLevel = strings.Count(path, "/")
	}
	features = append(features, float64(pathLevel))

	// Character counts (10)
	features = append(features,
		float64(strings.Count(input, ".")),
		float64(strings.Count(input, "-")),
		float64(strings.Count(host, "-")),
		float64(strings.Count(input, "@")),
		float64(strings.Count(input, "~")),
		float64(strings.Count(input, "_")),
		float64(strings.Count(input, "%")),
		float64(countDigits(input)),
		float64(strings.Count(input, "&")),
		float64(strings.Count(input, "#")),
	)

	// Query (2)
	queryComps := 0
	if query != "" {
		queryComps = strings.Count(query, "&") + 1
	}
	features = append(features, float64(queryComps), float64(runeLen(query)))

	// Complexity (5)
	subLevel := 0
	if parts.Subdomain != "" {
		subLevel = strings.Count(parts.Subdomain, ".") + 1
	}
	sensitive := 0.0
	if hasSensitiveSubdomainWord(parts.Subdomain) {
		sensitive = 1
	}
	features = append(features,
		Entropy(host),
		Entropy(input),
		Entropy(parts.Subdomain),
		float64(subLevel),
		sensitive,
	)

	// Structural logic (4)
	shortener := 0.0
	if IsShortener(parts.Registrable()) {
		shortener = 1
	}
	doubleSlash := 0.0
	if strings.Contains(path, "//") {
		doubleSlash = 1
	}
	features = append(features, shortener, doubleSlash)

	status := CheckBrandStatus(clean, trusted)
	typo, white := 0.0, 0.0
	if status.Typosquatting {
		typo = 1
	}
	if status.Whitelisted {
		white = 1
	}
	features = append(features, typo, white)

	return StaticResult{
		Vector: features,
		Meta: Metadata{
			Whitelisted:      status.Whitelisted,
			TyposquatMessage: status.Message,
		},
	}
}
