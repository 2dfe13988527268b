// Package service composes the repository queries into the payloads the
// REST API serves.
package service

import "errors"

// ErrNoData signals that a query yielded nothing to report. Handlers map
// it (and pgx.ErrNoRows) to a 404.
var ErrNoData = errors.New("no data found")
