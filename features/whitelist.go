package features

import (
	"bufio"
	"os"
	"strings"
)

// TrustedDomains is an immutable set of registrable domains loaded once at
// startup. Membership is exact-string; subdomain handling happens by
// re-deriving the registrable domain before lookup.
type TrustedDomains struct {
	set map[string]struct{}
}

// NewTrustedDomains builds a set from explicit entries. Used by tests and
// embedded defaults.
func NewTrustedDomains(domains ...string) *TrustedDomains {
	set := make(map[string]struct{}, len(domains))
	for _, d := range domains {
		d = strings.TrimSpace(strings.ToLower(d))
		if d != "" {
			set[d] = struct{}{}
		}
	}
	return &TrustedDomains{set: set}
}

// LoadTrustedDomains reads a one-domain-per-line allow-list. An optional
// header line containing "origin" or "domain" is skipped. A missing file is
// not an error: whitelist checks simply never match.
func LoadTrustedDomains(path string) (*TrustedDomains, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &TrustedDomains{set: map[string]struct{}{}}, nil
		}
		return nil, err
	}
	defer f.Close()

	set := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if first {
			first = false
			lower := strings.ToLower(line)
			if strings.Contains(lower, "origin") || strings.Contains(lower, "domain") {
				continue
			}
		}
		if line != "" {
			set[strings.ToLower(line)] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &TrustedDomains{set: set}, nil
}

// Contains reports exact membership of a host or registrable domain.
func (t *TrustedDomains) Contains(domain string) bool {
	if t == nil {
		return false
	}
	_, ok := t.set[domain]
	return ok
}

// Len returns the number of loaded entries.
func (t *TrustedDomains) Len() int {
	if t == nil {
		return 0
	}
	return len(t.set)
}
