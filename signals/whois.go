package signals

import (
	"math"
	"strings"
	"time"

	parser "github.com/likexian/whois-parser"
	log "github.com/sirupsen/logrus"

	"phishvet-poc/features"
)

// creationDateLayouts covers the date formats commonly seen in WHOIS
// creation-date fields.
var creationDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-Jan-2006",
}

// parseCreationDate tries each known layout, then retries on the first
// whitespace-delimited token to shed trailing time or timezone noise.
func parseCreationDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range creationDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if i := strings.IndexByte(s, ' '); i > 0 {
		return parseCreationDate(s[:i])
	}
	return time.Time{}, false
}

// DomainAge resolves the registration age of the URL's registrable domain
// in whole days via WHOIS. Any failure along the way (bad host, lookup
// error, missing or unparseable creation date) yields UnknownAge.
func (r *Resolver) DomainAge(cleanURL string) Age {
	if strings.Contains(cleanURL, "@") {
		return UnknownAge
	}

	parts := features.SplitHost(features.HostPart(cleanURL))
	if len(parts.Domain) < 2 {
		log.Debugf("[WHOIS] invalid domain label in %q", cleanURL)
		return UnknownAge
	}
	registrable := parts.Registrable()

	raw, err := r.whoisClient.Whois(registrable)
	if err != nil {
		log.Debugf("[WHOIS] lookup failed for %s: %v", registrable, err)
		return UnknownAge
	}

	info, err := parser.Parse(raw)
	if err != nil || info.Domain == nil {
		log.Debugf("[WHOIS] no parseable record for %s", registrable)
		return UnknownAge
	}

	created, ok := parseCreationDate(info.Domain.CreatedDate)
	if !ok {
		log.Debugf("[WHOIS] unparseable creation date %q for %s", info.Domain.CreatedDate, registrable)
		return UnknownAge
	}

	// Diff as wall-clock time; any timezone offset in the record is
	// irrelevant at day granularity.
	age := int(math.Abs(time.Since(created).Hours() / 24))
	log.Debugf("[WHOIS] %s -> %d days", registrable, age)
	return KnownAge(age)
}
