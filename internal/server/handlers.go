package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/cv-jobmatch/internal/pipeline"
	"github.com/jonathan/cv-jobmatch/internal/search"
)

// maxUploadSize bounds the multipart form held in memory.
const maxUploadSize = 10 << 20

// matchResponse is the Flow A envelope.
type matchResponse struct {
	Data matchData `json:"data"`
}

type matchData struct {
	Skills    []string            `json:"skills"`
	Jobs      []search.JobListing `json:"jobs"`
	TotalJobs int                 `json:"totalJobs"`
}

// tailorResponse is the Flow B envelope.
type tailorResponse struct {
	Result   string `json:"result"`
	JobTitle string `json:"jobTitle"`
}

// legacyTailorRequest is the older JSON body still accepted on /api/tailor.
type legacyTailorRequest struct {
	JobID      string `json:"jobId"`
	FileBase64 string `json:"fileBase64"`
}

// handleMatch accepts a multipart CV upload and returns ranked job matches.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	document, contentType := readMultipartCV(r)

	result, err := s.matcher.Match(r.Context(), pipeline.MatchInput{
		Document:    document,
		ContentType: contentType,
	})
	if err != nil {
		s.pipelineError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, matchResponse{Data: matchData{
		Skills:    emptyIfNil(result.Skills),
		Jobs:      emptyJobsIfNil(result.Jobs),
		TotalJobs: result.Total,
	}})
}

// handleTailor accepts either a multipart form (cv, jobId) or the legacy
// JSON body with a base64-encoded document.
func (s *Server) handleTailor(w http.ResponseWriter, r *http.Request) {
	var in pipeline.TailorInput

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req legacyTailorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
		in.JobID = req.JobID
		if req.FileBase64 != "" {
			document, err := base64.StdEncoding.DecodeString(req.FileBase64)
			if err != nil {
				s.errorResponse(w, http.StatusBadRequest, "invalid fileBase64: "+err.Error())
				return
			}
			in.Document = document
		}
	} else {
		document, _ := readMultipartCV(r)
		in.Document = document
		in.JobID = r.FormValue("jobId")
	}

	result, err := s.tailorer.Tailor(r.Context(), in)
	if err != nil {
		s.pipelineError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, tailorResponse{
		Result:   result.Result,
		JobTitle: result.JobTitle,
	})
}

// pipelineError maps a pipeline failure to its response envelope. Kinds are
// mapped, never reinterpreted.
func (s *Server) pipelineError(w http.ResponseWriter, err error) {
	var pipelineErr *pipeline.Error
	if errors.As(err, &pipelineErr) {
		s.logger.Warn("pipeline failed",
			zap.String("kind", string(pipelineErr.Kind)),
			zap.Error(err))
		s.errorResponse(w, pipelineErr.HTTPStatus(), pipelineErr.Message)
		return
	}

	s.logger.Error("unexpected failure", zap.Error(err))
	s.errorResponse(w, http.StatusInternalServerError, err.Error())
}

// readMultipartCV pulls the cv file out of a multipart form. A missing or
// unreadable part comes back empty; the pipeline rejects it as validation.
func readMultipartCV(r *http.Request) (document []byte, contentType string) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, ""
	}

	file, header, err := r.FormFile("cv")
	if err != nil {
		return nil, ""
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, ""
	}

	return data, header.Header.Get("Content-Type")
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func emptyJobsIfNil(jobs []search.JobListing) []search.JobListing {
	if jobs == nil {
		return []search.JobListing{}
	}
	return jobs
}
