package main

import (
	"strings"

	"github.com/alecthomas/kong"
	"github.com/crossplane/crossplane-runtime/pkg/errors"
	"github.com/pterm/pterm"

	"github.com/upbound/oscal/internal/oscaldriver"
	"github.com/upbound/oscal/internal/oscalmodel"
)

// DissectCmd splits a document into a modifiable workspace.
type DissectCmd struct {
	File        string `name:"file" required:"" help:"Path to the source document."`
	Model       string `name:"model" required:"" help:"Model tag: assessment-plan, assessment-results, poam, catalog, profile, component-definition, ssp."`
	Blocks      string `name:"blocks" required:"" help:"Comma-separated block names, or \"all\"."`
	OutputDir   string `name:"output-dir" default:"." help:"Directory the workspace root is created under."`
	ParseMarkup bool   `name:"parse-markup" help:"Render Markup fields as HTML while parsing."`
}

func (c *DissectCmd) Run(ctx *kong.Context) error {
	tag := oscalmodel.NormalizeModelTag(c.Model)
	if !oscalmodel.IsValidModel(tag) {
		return errors.Errorf("unknown model %q", c.Model)
	}

	tokens := strings.Split(c.Blocks, ",")
	format := formatFromPath(c.File)

	d := oscaldriver.New()
	manifest, err := d.Dissect(oscaldriver.DissectOptions{
		SourcePath:  c.File,
		Model:       tag,
		Blocks:      tokens,
		OutputDir:   c.OutputDir,
		ParseMarkup: c.ParseMarkup,
		Format:      format,
	})
	if err != nil {
		return err
	}
	pterm.Success.Printfln("workspace created at %s", manifest.Root)
	return nil
}
