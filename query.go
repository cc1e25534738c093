package pennywise

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against the export document, e.g.
// "$.debtEntries[?(@.status=='pending')].personName". The document is the
// query surface because it is the one stable, fully spelled out JSON shape of
// the ledger.
func Query(doc ExportDocument, path string) (any, error) {
	// Round-trip through JSON so the query sees the persisted field names,
	// not Go struct fields.
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("could not encode document for query: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("could not decode document for query: %w", err)
	}
	result, err := jsonpath.Get(path, v)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", path, err)
	}
	return result, nil
}
