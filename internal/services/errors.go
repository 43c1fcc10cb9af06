package services

// InvalidInputError rejects a chat request before any upstream call is made.
type InvalidInputError struct{ Message string }

func (e *InvalidInputError) Error() string { return e.Message }

// UpstreamError carries the completion provider's failure detail.
type UpstreamError struct{ Message string }

func (e *UpstreamError) Error() string { return e.Message }
