package formatter

import (
	"encoding/json"
	"fmt"

	"github.com/McNamara84/ernie-sub017/datacite"
)

// BuildJSON serializes a kernel document to its JSON attribute shape
func (b *Builder) BuildJSON(doc *datacite.Resource) ([]byte, error) {
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshaling kernel document: %w", err)
	}
	return out, nil
}
