package main

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/upbound/oscal/internal/oscalid"
	"github.com/upbound/oscal/internal/oscalmodel"
	"github.com/upbound/oscal/internal/oscalworkspace"
)

func TestOutputFormatFromFlag(t *testing.T) {
	format, err := outputFormatFromFlag("json")
	assert.NilError(t, err)
	assert.Equal(t, format, oscalmodel.FormatJSON)

	format, err = outputFormatFromFlag("yaml")
	assert.NilError(t, err)
	assert.Equal(t, format, oscalmodel.FormatYAML)

	_, err = outputFormatFromFlag("toml")
	wsErr, ok := err.(*oscalworkspace.Error)
	assert.Assert(t, ok)
	assert.Equal(t, wsErr.Kind, oscalworkspace.ErrOption)
}

func TestRefreshRequestFromFlag(t *testing.T) {
	refresh, err := refreshRequestFromFlag("")
	assert.NilError(t, err)
	assert.Equal(t, refresh.Requested, false)

	refresh, err = refreshRequestFromFlag("v4")
	assert.NilError(t, err)
	assert.Equal(t, refresh, oscalworkspace.RefreshRequest{Requested: true, Version: oscalid.V4})

	refresh, err = refreshRequestFromFlag("v5")
	assert.NilError(t, err)
	assert.Equal(t, refresh, oscalworkspace.RefreshRequest{Requested: true, Version: oscalid.V5})

	_, err = refreshRequestFromFlag("v6")
	wsErr, ok := err.(*oscalworkspace.Error)
	assert.Assert(t, ok)
	assert.Equal(t, wsErr.Kind, oscalworkspace.ErrOption)
}
