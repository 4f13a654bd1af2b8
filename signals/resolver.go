package signals

import (
	"context"
	"time"

	whois "github.com/likexian/whois"
	"golang.org/x/sync/errgroup"

	"phishvet-poc/features"
)

const (
	// DefaultWhoisTimeout bounds a single WHOIS lookup.
	DefaultWhoisTimeout = 5 * time.Second
	// DefaultTLSTimeout bounds the TLS connect used for certificate age.
	DefaultTLSTimeout = 3 * time.Second
)

// Resolver performs the two live lookups. Safe for concurrent use; carries
// no per-request state.
type Resolver struct {
	whoisClient *whois.Client
	tlsTimeout  time.Duration
}

// NewResolver builds a resolver with per-lookup timeouts. Zero durations
// fall back to the defaults.
func NewResolver(whoisTimeout, tlsTimeout time.Duration) *Resolver {
	if whoisTimeout <= 0 {
		whoisTimeout = DefaultWhoisTimeout
	}
	if tlsTimeout <= 0 {
		tlsTimeout = DefaultTLSTimeout
	}

	client := whois.NewClient()
	client.SetTimeout(whoisTimeout)

	return &Resolver{
		whoisClient: client,
		tlsTimeout:  tlsTimeout,
	}
}

// Result bundles the resolved ages and the composite flag.
type Result struct {
	DomainAge Age
	CertAge   Age
	Combo     float64
}

// Resolve runs both lookups concurrently against an already-normalized
// URL. The lookups are independent: neither's failure affects the other,
// and neither aborts feature assembly. No retries are performed.
func (r *Resolver) Resolve(ctx context.Context, cleanURL string) Result {
	hostPart := features.HostPart(cleanURL)
	parts := features.SplitHost(hostPart)

	// The certificate is checked on the registrable domain when one can be
	// derived, matching how the training data was collected.
	hostname := hostPart
	if parts.Suffix != "" {
		hostname = parts.Registrable()
	}

	var domainAge, certAge Age

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		domainAge = r.DomainAge(cleanURL)
		return nil
	})
	g.Go(func() error {
		certAge = r.CertAge(hostname)
		return nil
	})
	_ = g.Wait()

	return Result{
		DomainAge: domainAge,
		CertAge:   certAge,
		Combo:     SuspiciousAgeCombo(domainAge.Feature(), certAge.Feature()),
	}
}
