package service

import "errors"

var (
	// ErrAggregationFailed wraps any collaborator-store read failure during
	// orchestration. There is no partial-result mode.
	ErrAggregationFailed = errors.New("aggregation failed")

	// ErrAIMissingKey reports an absent language-model credential, distinctly
	// from transport or parse failures.
	ErrAIMissingKey = errors.New("ai credential missing")

	// ErrAIUnavailable covers upstream transport failures, non-success
	// statuses, and malformed or incomplete model responses.
	ErrAIUnavailable = errors.New("ai provider unavailable")
)
