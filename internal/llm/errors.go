package llm

// UpstreamError indicates the completion service was unreachable, returned a
// non-2xx status, or returned a payload without usable completion text.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return "language model request failed: " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
