package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and platform packages return
// these (optionally wrapped) so callers can translate them into domain errors.
//
// They describe resource state, not validation failures:
//   - ErrNotFound: a dataset file or registered service does not exist
//   - ErrUnavailable: a resource exists but could not be read
//
// For validation errors (bad names, blank patterns), use pkg/domain-errors.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)
