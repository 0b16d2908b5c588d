package jsonedges

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
)

// entry is one fixture record: a visited class and the classes it
// references.
type entry struct {
	Class      string   `json:"class"`
	References []string `json:"references"`
}

func parseEntries(data []byte, strictJSON bool) ([]entry, error) {
	if len(data) == 0 {
		return nil, ErrEmptySource
	}

	payload := data
	if !strictJSON {
		payload = jsonc.ToJSON(data)
	}

	var entries []entry
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}

	for i, e := range entries {
		if e.Class == "" {
			return nil, fmt.Errorf("%w: entry %d", ErrEmptyClassName, i)
		}
	}

	return entries, nil
}
