// Package extract converts an uploaded PDF into a flat text blob for the
// downstream language-model stages.
package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Error indicates the uploaded document could not be turned into usable text.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return "text extraction failed: " + e.Reason
}

// Text parses the document bytes and returns every discovered text fragment
// joined with single spaces. It fails when the bytes are not a well-formed
// PDF or when extraction yields no non-whitespace characters.
func Text(data []byte) (string, error) {
	if len(data) == 0 {
		return "", &Error{Reason: "empty document"}
	}

	fragments, err := readFragments(data)
	if err != nil {
		return "", &Error{Reason: err.Error()}
	}

	text := strings.Join(fragments, " ")
	if strings.TrimSpace(text) == "" {
		return "", &Error{Reason: "document contains no extractable text"}
	}

	return text, nil
}

// readFragments walks every page in reading order and collects the text
// items the content-stream parser reports. The parser panics on some
// malformed streams, so the recover turns that into a plain error instead
// of taking the request down.
func readFragments(data []byte) (fragments []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf content: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("read page %d: %w", i, err)
		}
		for _, row := range rows {
			for _, item := range row.Content {
				if item.S != "" {
					fragments = append(fragments, item.S)
				}
			}
		}
	}

	return fragments, nil
}
