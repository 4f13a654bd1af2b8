// Package signals resolves the live, network-dependent features of a URL:
// domain registration age and TLS certificate age. Every lookup is
// best-effort and degrades to an unknown value rather than failing the
// extraction pipeline.
package signals

import "strconv"

// Age is an optional day count. The numeric sentinel -1 only exists at the
// feature-vector boundary; inside the package an unknown age is simply not
// Known.
type Age struct {
	Days  int
	Known bool
}

// KnownAge wraps a resolved day count.
func KnownAge(days int) Age {
	return Age{Days: days, Known: true}
}

// UnknownAge is the soft-failure value for any lookup that errored, timed
// out, or returned nothing parseable.
var UnknownAge = Age{}

// Feature projects the age onto its numeric feature value.
func (a Age) Feature() float64 {
	if !a.Known {
		return -1
	}
	return float64(a.Days)
}

// Display renders the age for user-facing metadata.
func (a Age) Display() string {
	if !a.Known {
		return "NA"
	}
	return strconv.Itoa(a.Days)
}

// SuspiciousAgeCombo derives the composite age flag from the two raw
// feature values. A domain is bad when unknown or younger than a year; a
// certificate is bad when unknown or younger than 30 days. The flag fires
// only when both are bad.
//
// This is the single definition shared by the live inference path and the
// dataset builder; the two must never diverge.
func SuspiciousAgeCombo(domainAge, sslAge float64) float64 {
	domainBad := domainAge <= -1 || (domainAge >= 0 && domainAge < 365)
	sslBad := sslAge <= -1 || (sslAge >= 0 && sslAge < 30)
	if domainBad && sslBad {
		return 1
	}
	return 0
}
