// Package output renders query results as JSON documents or padded tables.
package output

import "encoding/json"

// ToJSON serializes a result document.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
