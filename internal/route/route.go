// Package route converts ordered node-name sequences to and from the
// transferable record format handed back across the provider boundary.
package route

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/pathgrid/internal/settings"
)

// Key is the single key a non-empty result record carries.
const Key = "route"

// Encode renders names as a compact array literal: each name quoted,
// comma-separated, enclosed in brackets. Name content is written
// verbatim — quote and control characters are not escaped.
func Encode(names []string) string {
	// Worst-case size up front: brackets, plus quotes and a separator
	// per element, so the builder never regrows mid-write.
	size := 2
	for _, n := range names {
		size += len(n) + 3
	}

	var sb strings.Builder
	sb.Grow(size)
	sb.WriteByte('[')
	for i, n := range names {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(n)
		sb.WriteByte('"')
	}
	sb.WriteByte(']')
	return sb.String()
}

// Decode parses an encoded route back into its name sequence. Only names
// the encoder wrote without needing escapes round-trip; that asymmetry
// matches the encoder's contract.
func Decode(text string) ([]string, error) {
	var names []string
	if err := json.Unmarshal([]byte(text), &names); err != nil {
		return nil, fmt.Errorf("decode route %q: %w", text, err)
	}
	return names, nil
}

// Record builds the result bundle for a route. A non-empty route yields
// exactly one string entry under Key; an empty route yields a bundle
// with zero entries, not an empty array value.
func Record(names []string) *settings.Bundle {
	out := settings.New()
	if len(names) == 0 {
		return out
	}
	out.Append(Key, cty.StringVal(Encode(names)))
	return out
}
