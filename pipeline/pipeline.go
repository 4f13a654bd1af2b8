// Package pipeline assembles the canonical 30-feature vector for a URL:
// 27 static lexical/structural features plus domain age, certificate age
// and the composite suspicious-age flag, in the fixed schema order shared
// with the training dataset.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"phishvet-poc/features"
	"phishvet-poc/signals"
)

// ErrVectorLength marks an assembled vector whose length is not exactly
// the schema length. Scoring must never run on such a vector.
var ErrVectorLength = errors.New("feature vector length mismatch")

// SignalResolver is the live-lookup dependency. *signals.Resolver is the
// production implementation; tests substitute a stub.
type SignalResolver interface {
	Resolve(ctx context.Context, cleanURL string) signals.Result
}

// Metadata is the explanatory side-channel returned alongside the vector.
type Metadata struct {
	DomainAgeDays string `json:"domain_age_days"`
	SSLAgeDays    string `json:"ssl_age_days"`
	Whitelisted   string `json:"whitelisted"`
	Typosquat     string `json:"typosquatting"`
	// Fallback marks a vector built from the all-zero static fallback, so
	// callers can tell a real URL from a degenerate placeholder.
	Fallback bool `json:"fallback,omitempty"`
}

// Extraction is the full result of one pipeline run.
type Extraction struct {
	Vector []float64
	Meta   Metadata
}

// Pipeline wires the static extractor to the live resolver. Immutable
// after construction; safe for concurrent use.
type Pipeline struct {
	trusted  *features.TrustedDomains
	resolver SignalResolver
}

// New builds a pipeline over a loaded trusted-domain set and a signal
// resolver.
func New(trusted *features.TrustedDomains, resolver SignalResolver) *Pipeline {
	return &Pipeline{trusted: trusted, resolver: resolver}
}

// Extract transforms a raw URL into the 30-feature vector plus metadata.
// Static extraction never fails (it degrades to the zero fallback); the
// live lookups degrade to sentinels. Only a vector-shape violation is an
// error.
func (p *Pipeline) Extract(ctx context.Context, rawURL string) (Extraction, error) {
	static := features.ExtractStatic(rawURL, p.trusted)
	clean := features.NormalizeURL(rawURL)

	live := p.resolver.Resolve(ctx, clean)

	vector := make([]float64, 0, features.NumFeatures)
	vector = append(vector, static.Vector...)
	vector = append(vector,
		live.DomainAge.Feature(),
		live.CertAge.Feature(),
		live.Combo,
	)

	if len(vector) != features.NumFeatures {
		return Extraction{}, fmt.Errorf("%w: got %d, want %d", ErrVectorLength, len(vector), features.NumFeatures)
	}

	whitelisted := "no"
	if static.Meta.Whitelisted {
		whitelisted = "yes"
	}
	typo := static.Meta.TyposquatMessage
	if typo == "" {
		typo = "none"
	}

	return Extraction{
		Vector: vector,
		Meta: Metadata{
			DomainAgeDays: live.DomainAge.Display(),
			SSLAgeDays:    live.CertAge.Display(),
			Whitelisted:   whitelisted,
			Typosquat:     typo,
			Fallback:      static.Fallback,
		},
	}, nil
}
