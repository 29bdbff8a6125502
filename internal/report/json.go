package report

import (
	"encoding/json"
	"io"

	"github.com/grindlemire/go-constrain"
)

// Document is the JSON form of a report.
type Document struct {
	Source      string   `json:"source,omitempty"`
	Elements    int      `json:"elements"`
	Constraints []Record `json:"constraints"`
}

// JSON writes the constraints under roots as an indented Document.
func JSON(w io.Writer, source string, roots []*constrain.Element) error {
	elements, _ := Count(roots)
	doc := Document{
		Source:      source,
		Elements:    elements,
		Constraints: Collect(roots),
	}
	if doc.Constraints == nil {
		doc.Constraints = []Record{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
