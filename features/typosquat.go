package features

import (
	"fmt"
	"strings"
)

// BrandStatus classifies a URL's domain as trusted, impersonating, or
// neither. At most one of Whitelisted / Typosquatting is set.
type BrandStatus struct {
	Whitelisted   bool
	Typosquatting bool
	Message       string
}

// VisualBody extracts the brand-like portion of a host a human would read:
// the last label (suffix) is stripped, and one more trailing label after
// that if a dot remains.
func VisualBody(hostPart string) string {
	if !strings.Contains(hostPart, ".") {
		return hostPart
	}
	body := hostPart[:strings.LastIndexByte(hostPart, '.')]
	if i := strings.LastIndexByte(body, '.'); i >= 0 {
		body = body[:i]
	}
	return body
}

// CheckBrandStatus runs the whitelist and typosquatting checks against an
// already-normalized URL. Order matters: an exact whitelist hit
// short-circuits the typosquatting scan entirely. Parse oddities fail open
// to "neither".
func CheckBrandStatus(cleanURL string, trusted *TrustedDomains) BrandStatus {
	hostPart := HostPart(cleanURL)

	// Whitelist: raw host first, then the re-derived registrable domain.
	if trusted.Contains(hostPart) {
		return BrandStatus{Whitelisted: true}
	}
	if root := SplitHost(hostPart).Registrable(); root != "" && trusted.Contains(root) {
		return BrandStatus{Whitelisted: true}
	}

	rawBody := VisualBody(hostPart)
	decoded := NormalizeLeetSpeak(rawBody)

	for _, brand := range SensitiveBrands {
		// Leet-speak impersonation: normalized body matches the brand but
		// the raw body does not, so some substitution actually fired.
		if decoded == brand && rawBody != brand {
			return BrandStatus{
				Typosquatting: true,
				Message:       fmt.Sprintf("Impersonates '%s' (leet-speak)", brand),
			}
		}

		dist := Levenshtein(decoded, brand)
		if dist > 0 && dist <= 2 {
			// Short brands cause too many near-miss false positives.
			if len(brand) < 4 {
				continue
			}
			return BrandStatus{
				Typosquatting: true,
				Message:       fmt.Sprintf("Impersonates '%s' (Levenshtein: %d)", brand, dist),
			}
		}
	}

	return BrandStatus{}
}

// Levenshtein computes the edit distance between two strings using the
// classic two-row dynamic programming formulation.
func Levenshtein(s1, s2 string) int {
	a := []rune(s1)
	b := []rune(s2)
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i, c1 := range a {
		curr[0] = i + 1
		for j, c2 := range b {
			ins := prev[j+1] + 1
			del := curr[j] + 1
			sub := prev[j]
			if c1 != c2 {
				sub++
			}
			curr[j+1] = min3(ins, del, sub)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
