// Package sentinel holds infrastructure facts that stores report to
// services. Validation failures use pkg/domain-errors instead.
package sentinel

import "errors"

// ErrUnavailable marks a backing service (database, cache, broker) that
// could not be reached or failed mid-request. Stores wrap it together with
// the driver error so both stay reachable through errors.Is.
var ErrUnavailable = errors.New("unavailable")
