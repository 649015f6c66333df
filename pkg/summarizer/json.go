package summarizer

import (
	"encoding/json"
)

// JSONFormatter renders a Summary as indented JSON for other tools.
type JSONFormatter struct{}

// Format implements Formatter.
func (JSONFormatter) Format(s *Summary) string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		// Summary holds only plain values
		panic(err)
	}
	return string(data) + "\n"
}
