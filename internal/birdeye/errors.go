package birdeye

import "errors"

// Failure taxonomy for upstream calls. Callers match with errors.Is; this
// package never retries on its own.
var (
	// ErrTransport covers network-level failures: unreachable host, timeout,
	// connection reset.
	ErrTransport = errors.New("birdeye: transport failure")

	// ErrRateLimited maps HTTP 429.
	ErrRateLimited = errors.New("birdeye: rate limited")

	// ErrRequestRejected maps HTTP 400 (bad parameters).
	ErrRequestRejected = errors.New("birdeye: request rejected")

	// ErrUpstream maps any other non-2xx status, and payloads that do not
	// match the documented response shape.
	ErrUpstream = errors.New("birdeye: upstream error")

	// ErrUpstreamFailure means the HTTP call succeeded but the payload
	// carried success=false.
	ErrUpstreamFailure = errors.New("birdeye: upstream reported failure")
)
