package features

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Entropy computes the Shannon entropy (base 2) of a string over its rune
// frequency distribution. The entropy of an empty string is 0.
func Entropy(s string) float64 {
	if s == "" {
		return 0
	}

	freq := make(map[rune]int)
	total := 0
	for _, r := range s {
		freq[r]++
		total++
	}

	// Sum in sorted rune order so the result is bit-for-bit identical across
	// calls; map iteration order would otherwise perturb the last ULP.
	runes := make([]rune, 0, len(freq))
	for r := range freq {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	var entropy float64
	n := float64(total)
	for _, r := range runes {
		p := float64(freq[r]) / n
		entropy -= p * math.Log2(p)
	}
	return entropy
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// sensitiveSubdomainWords are flagged when they appear anywhere inside the
// subdomain portion of a host.
var sensitiveSubdomainWords = []string{
	"login", "secure", "account", "verify", "update", "banking", "confirm",
}

func hasSensitiveSubdomainWord(sub string) bool {
	for _, w := range sensitiveSubdomainWords {
		if strings.Contains(sub, w) {
			return true
		}
	}
	return false
}
