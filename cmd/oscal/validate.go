package main

import (
	"github.com/alecthomas/kong"
	"github.com/crossplane/crossplane-runtime/pkg/errors"
	"github.com/pterm/pterm"

	"github.com/upbound/oscal/internal/oscaldriver"
	"github.com/upbound/oscal/internal/oscalmodel"
)

// ValidateCmd checks that a document parses cleanly under its
// declared model, without producing a workspace.
type ValidateCmd struct {
	File  string `name:"file" required:"" help:"Path to the document to validate."`
	Model string `name:"model" required:"" help:"Model tag: assessment-plan, assessment-results, poam, catalog, profile, component-definition, ssp."`
}

func (c *ValidateCmd) Run(ctx *kong.Context) error {
	tag := oscalmodel.NormalizeModelTag(c.Model)
	if !oscalmodel.IsValidModel(tag) {
		return errors.Errorf("unknown model %q", c.Model)
	}

	d := oscaldriver.New()
	if err := d.Validate(oscaldriver.ValidateOptions{
		SourcePath: c.File,
		Model:      tag,
		Format:     formatFromPath(c.File),
	}); err != nil {
		return err
	}
	pterm.Success.Printfln("%s is a valid %s document", c.File, c.Model)
	return nil
}
