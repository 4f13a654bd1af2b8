package signals

import (
	"crypto/tls"
	"net"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// CertAge opens a TLS connection to the host on port 443 and returns the
// age of the peer certificate (days since NotBefore). Any connection,
// handshake, timeout, or certificate problem yields UnknownAge.
//
// The age can be negative for a not-yet-valid certificate; the composite
// age flag treats that as bad, same as an unknown value.
func (r *Resolver) CertAge(hostname string) Age {
	if hostname == "" || strings.Contains(hostname, "@") {
		return UnknownAge
	}

	dialer := &net.Dialer{Timeout: r.tlsTimeout}
	conn, err := tls.DialWithDialer(dialer, "tcp", hostname+":443", &tls.Config{
		ServerName: hostname,
	})
	if err != nil {
		log.Debugf("[SSL] dial failed for %s: %v", hostname, err)
		return UnknownAge
	}
	defer conn.Close()

	certs := conn.ConnectionState().PeerCertificates
	if len(certs) == 0 {
		return UnknownAge
	}

	age := int(time.Since(certs[0].NotBefore).Hours() / 24)
	log.Debugf("[SSL] %s -> %d days", hostname, age)
	return KnownAge(age)
}
