package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/pterm/pterm"

	"github.com/upbound/oscal/internal/oscaldriver"
	"github.com/upbound/oscal/internal/oscalid"
	"github.com/upbound/oscal/internal/oscalmodel"
	"github.com/upbound/oscal/internal/oscalworkspace"
)

// MergeCmd reassembles a dissected workspace into one document.
type MergeCmd struct {
	Dir          string `name:"dir" default:"." help:"Workspace directory produced by dissect."`
	OutputDir    string `name:"output-dir" default:"." help:"Directory the merged document is written to."`
	OutputFormat string `name:"output-format" enum:"json,yaml" default:"yaml" help:"Output format: json or yaml."`
	UpdateUUID   string `name:"update-uuid" optional:"" enum:",v4,v5" help:"Refresh the root uuid on content change: v4 or v5."`
	ParseMarkup  bool   `name:"parse-markup" help:"Render Markup fields as HTML while parsing."`
}

func (c *MergeCmd) Run(ctx *kong.Context) error {
	format, err := outputFormatFromFlag(c.OutputFormat)
	if err != nil {
		return err
	}

	refresh, err := refreshRequestFromFlag(c.UpdateUUID)
	if err != nil {
		return err
	}

	d := oscaldriver.New()
	manifest, err := d.Merge(oscaldriver.MergeOptions{
		WorkspaceDir: c.Dir,
		OutputDir:    c.OutputDir,
		OutputFormat: format,
		Refresh:      refresh,
		ParseMarkup:  c.ParseMarkup,
	})
	if err != nil {
		return err
	}
	pterm.Success.Printfln("merged document written under %s (hash %s)", manifest.OutputDir, manifest.Hash)
	return nil
}

// outputFormatFromFlag maps --output-format to its internal Format.
// kong's enum tag already restricts the flag to "json" or "yaml", but
// the unrecognized-option case is still raised through the unified
// error taxonomy rather than left unreachable.
func outputFormatFromFlag(value string) (oscalmodel.Format, error) {
	switch value {
	case "json":
		return oscalmodel.FormatJSON, nil
	case "yaml":
		return oscalmodel.FormatYAML, nil
	default:
		return "", &oscalworkspace.Error{Kind: oscalworkspace.ErrOption, Msg: fmt.Sprintf("unknown --output-format value %q", value)}
	}
}

// refreshRequestFromFlag maps --update-uuid to a RefreshRequest.
func refreshRequestFromFlag(value string) (oscalworkspace.RefreshRequest, error) {
	switch value {
	case "":
		return oscalworkspace.RefreshRequest{}, nil
	case "v4":
		return oscalworkspace.RefreshRequest{Requested: true, Version: oscalid.V4}, nil
	case "v5":
		return oscalworkspace.RefreshRequest{Requested: true, Version: oscalid.V5}, nil
	default:
		return oscalworkspace.RefreshRequest{}, &oscalworkspace.Error{Kind: oscalworkspace.ErrOption, Msg: fmt.Sprintf("unknown --update-uuid value %q", value)}
	}
}
