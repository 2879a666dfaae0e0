// Package output renders xlsxguard results.
package output

import (
	"encoding/json"
	"io"

	"github.com/ukaji3/xlsxguard-go/pkg/xlsxguard/models"
)

// ToJSON serializes a summary, optionally indented.
func ToJSON(s *models.Summary, pretty bool) ([]byte, error) {
	if s.Results == nil {
		// keep "results": [] rather than null for empty directories
		s.Results = []models.FileResult{}
	}
	if pretty {
		return json.MarshalIndent(s, "", "  ")
	}
	return json.Marshal(s)
}

// WriteJSON writes the indented JSON form of s followed by a newline.
func WriteJSON(w io.Writer, s *models.Summary) error {
	data, err := ToJSON(s, true)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
