package resilience

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgconn"
)

// ErrorKind buckets a failed attempt for logging. Nothing downstream
// branches on the kind; it exists so operators can tell a dead network
// from a bad key at a glance.
type ErrorKind int

const (
	KindTimeout ErrorKind = iota
	KindConnectivity
	KindUpstreamAuth
	KindGeneric
)

func (k ErrorKind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindConnectivity:
		return "connectivity"
	case KindUpstreamAuth:
		return "upstream_auth"
	default:
		return "generic"
	}
}

// Classify maps an attempt error onto the four-kind taxonomy.
func Classify(err error) ErrorKind {
	if err == nil {
		return KindGeneric
	}
	if errors.Is(err, ErrAttemptTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 28 is invalid authorization / invalid password.
		if strings.HasPrefix(pgErr.Code, "28") {
			return KindUpstreamAuth
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return KindTimeout
		}
		return KindConnectivity
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return KindConnectivity
	}
	if errors.Is(err, ErrRemoteUnavailable) {
		return KindConnectivity
	}

	return KindGeneric
}
