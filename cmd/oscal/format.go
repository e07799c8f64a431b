package main

import (
	"strings"

	"github.com/upbound/oscal/internal/oscalmodel"
)

// formatFromPath guesses the wire format from a file extension,
// defaulting to YAML when the extension is absent or unrecognized.
func formatFromPath(path string) oscalmodel.Format {
	if strings.HasSuffix(path, ".json") {
		return oscalmodel.FormatJSON
	}
	return oscalmodel.FormatYAML
}
