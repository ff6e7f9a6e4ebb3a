package search

// UpstreamError indicates the job-search index was unreachable, returned a
// non-2xx status, or returned a malformed payload.
type UpstreamError struct {
	Detail string
}

func (e *UpstreamError) Error() string {
	return "job search request failed: " + e.Detail
}
