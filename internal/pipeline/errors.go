// Package pipeline sequences the document-to-query-to-match flows and maps
// component failures to a uniform error envelope.
package pipeline

import (
	"errors"
	"net/http"

	"github.com/jonathan/cv-jobmatch/internal/extract"
	"github.com/jonathan/cv-jobmatch/internal/jobs"
	"github.com/jonathan/cv-jobmatch/internal/llm"
	"github.com/jonathan/cv-jobmatch/internal/search"
)

// Kind classifies a pipeline failure.
type Kind string

// Failure kinds, each with a fixed HTTP status class.
const (
	KindValidation     Kind = "validation"
	KindNotFound       Kind = "not_found"
	KindExtraction     Kind = "extraction"
	KindUpstreamLLM    Kind = "upstream_llm"
	KindUpstreamSearch Kind = "upstream_search"
	KindInternal       Kind = "internal"
)

// Error is the uniform failure envelope both flows return.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the status code consistent with the error kind.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindExtraction:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// classify wraps a component error with its kind. Components raise the most
// specific error they can; nothing is reinterpreted here, only tagged.
func classify(err error) *Error {
	var pipelineErr *Error
	if errors.As(err, &pipelineErr) {
		return pipelineErr
	}

	var extractionErr *extract.Error
	if errors.As(err, &extractionErr) {
		return &Error{Kind: KindExtraction, Message: extractionErr.Error(), Err: err}
	}

	if errors.Is(err, jobs.ErrNotFound) {
		return &Error{Kind: KindNotFound, Message: err.Error(), Err: err}
	}

	var llmErr *llm.UpstreamError
	if errors.As(err, &llmErr) {
		return &Error{Kind: KindUpstreamLLM, Message: llmErr.Error(), Err: err}
	}

	var searchErr *search.UpstreamError
	if errors.As(err, &searchErr) {
		return &Error{Kind: KindUpstreamSearch, Message: searchErr.Error(), Err: err}
	}

	return &Error{Kind: KindInternal, Message: err.Error(), Err: err}
}
