package main

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/upbound/oscal/internal/oscalmodel"
)

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, formatFromPath("document.json"), oscalmodel.FormatJSON)
	assert.Equal(t, formatFromPath("document.yaml"), oscalmodel.FormatYAML)
	assert.Equal(t, formatFromPath("document.yml"), oscalmodel.FormatYAML)
	assert.Equal(t, formatFromPath("document"), oscalmodel.FormatYAML)
}
