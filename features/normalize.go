package features

import (
	"strings"

	"golang.org/x/net/publicsuffix"
)

// NormalizeURL canonicalizes a raw URL string before feature extraction:
// lowercase, scheme and leading www. stripped, trailing slash removed.
// The operation is idempotent; normalizing twice yields the same string.
func NormalizeURL(raw string) string {
	u := strings.ToLower(strings.TrimSpace(raw))
	for {
		switch {
		case strings.HasPrefix(u, "https://"):
			u = u[len("https://"):]
		case strings.HasPrefix(u, "http://"):
			u = u[len("http://"):]
		case strings.HasPrefix(u, "www."):
			u = u[len("www."):]
		default:
			return strings.TrimRight(u, "/")
		}
	}
}

// ParseInput is the normalized URL re-prefixed with a canonical scheme so
// that structural parsing works. All character counts, lengths and
// entropies are computed over this exact string.
func ParseInput(raw string) string {
	return "http://" + NormalizeURL(raw)
}

// DomainParts is a public-suffix-aware split of a hostname.
// Fields are empty strings when absent, never meaningfully nil.
type DomainParts struct {
	Subdomain string
	Domain    string
	Suffix    string
}

// Registrable returns the domain label plus public suffix (e.g.
// "example.com"), or just the label for single-label hosts.
func (p DomainParts) Registrable() string {
	if p.Suffix == "" {
		return p.Domain
	}
	return p.Domain + "." + p.Suffix
}

// SplitHost breaks a hostname into subdomain, registrable-domain label and
// public suffix. Hosts without a recognized suffix (bare labels, IPs) map
// to {Domain: host} so callers never see an error here.
func SplitHost(host string) DomainParts {
	host = strings.TrimSuffix(host, ".")
	if host == "" {
		return DomainParts{}
	}

	etld1, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return DomainParts{Domain: host}
	}

	suffix, _ := publicsuffix.PublicSuffix(host)
	domain := etld1
	if suffix != "" && len(etld1) > len(suffix) {
		domain = etld1[:len(etld1)-len(suffix)-1]
	}

	sub := ""
	if len(host) > len(etld1) {
		sub = strings.TrimSuffix(host[:len(host)-len(etld1)], ".")
	}

	return DomainParts{Subdomain: sub, Domain: domain, Suffix: suffix}
}

// HostPart returns the host portion of an already-normalized URL, i.e.
// everything before the first slash.
func HostPart(cleanURL string) string {
	if i := strings.IndexByte(cleanURL, '/'); i >= 0 {
		return cleanURL[:i]
	}
	return cleanURL
}
