// Package oscaldriver composes the lexical validator, model schema,
// identity engine, and dissect/merge protocol into the three
// top-level operations (dissect, merge, validate). It is the only
// package permitted to touch process-wide state: it sets the markup
// render-mode environment flag for the lifetime of one operation, per
// roscal_cli's own command-level responsibility for that flag.
//
// Progress reporting follows pkg/migration's Spinner/Printer
// interfaces, with a no-op default so library callers never pay for
// terminal output they didn't ask for.
package oscaldriver

import (
	"os"

	"github.com/spf13/afero"

	"github.com/upbound/oscal/internal/oscalmodel"
	"github.com/upbound/oscal/internal/oscalworkspace"
)

// Printer reports progress for one step of a driver operation.
type Printer interface {
	Success(msg ...any)
	Fail(msg ...any)
	UpdateText(text string)
}

// Spinner starts a Printer for a named step.
type Spinner interface {
	Start(text ...any) (Printer, error)
}

// noopPrinter discards everything; it is the default when no Spinner
// is supplied.
type noopPrinter struct{}

func (noopPrinter) Success(_ ...any)     {}
func (noopPrinter) Fail(_ ...any)        {}
func (noopPrinter) UpdateText(_ string) {}

type noopSpinner struct{}

func (noopSpinner) Start(_ ...any) (Printer, error) { return noopPrinter{}, nil }

// DefaultSpinner is used by every Driver method unless overridden.
var DefaultSpinner Spinner = noopSpinner{}

const markupRenderModeEnv = "OSCAL_MARKUP_RENDER_MODE"

// Driver ties together a filesystem and progress reporter for the
// three top-level operations.
type Driver struct {
	FS      afero.Fs
	Spinner Spinner
}

// New returns a Driver backed by the OS filesystem and a silent
// spinner.
func New() *Driver {
	return &Driver{FS: afero.NewOsFs(), Spinner: DefaultSpinner}
}

func (d *Driver) spinner() Spinner {
	if d.Spinner != nil {
		return d.Spinner
	}
	return DefaultSpinner
}

// withMarkupMode sets OSCAL_MARKUP_RENDER_MODE for the duration of fn
// and restores the previous value afterward. It is the one place in
// the module allowed to mutate process environment state.
func withMarkupMode(enabled bool, fn func() error) error {
	prev, had := os.LookupEnv(markupRenderModeEnv)
	value := "DISABLED"
	if enabled {
		value = "ENABLED"
	}
	_ = os.Setenv(markupRenderModeEnv, value)
	defer func() {
		if had {
			_ = os.Setenv(markupRenderModeEnv, prev)
		} else {
			_ = os.Unsetenv(markupRenderModeEnv)
		}
	}()
	return fn()
}

// DissectOptions configures a Dissect operation.
type DissectOptions struct {
	SourcePath  string
	Model       oscalmodel.ModelTag
	Blocks      []string
	OutputDir   string
	ParseMarkup bool
	Format      oscalmodel.Format
}

// Dissect runs the dissect operation end to end.
func (d *Driver) Dissect(opts DissectOptions) (*oscalworkspace.DissectManifest, error) {
	p, _ := d.spinner().Start("dissecting " + opts.SourcePath)

	var manifest *oscalworkspace.DissectManifest
	err := withMarkupMode(opts.ParseMarkup, func() error {
		data, err := afero.ReadFile(d.FS, opts.SourcePath)
		if err != nil {
			return &oscalworkspace.Error{Kind: oscalworkspace.ErrIO, Msg: err.Error()}
		}
		m, err := oscalworkspace.Dissect(d.FS, opts.SourcePath, data, opts.Format, opts.Model, opts.Blocks, opts.OutputDir)
		manifest = m
		return err
	})
	if err != nil {
		p.Fail(err.Error())
		return nil, err
	}
	p.Success("workspace ready at " + manifest.Root)
	return manifest, nil
}

// MergeOptions configures a Merge operation.
type MergeOptions struct {
	WorkspaceDir string
	OutputDir    string
	OutputFormat oscalmodel.Format
	Refresh      oscalworkspace.RefreshRequest
	ParseMarkup  bool
}

// Merge runs the merge operation end to end.
func (d *Driver) Merge(opts MergeOptions) (*oscalworkspace.MergeManifest, error) {
	p, _ := d.spinner().Start("merging " + opts.WorkspaceDir)

	var manifest *oscalworkspace.MergeManifest
	err := withMarkupMode(opts.ParseMarkup, func() error {
		m, _, err := oscalworkspace.Merge(d.FS, opts.WorkspaceDir, opts.OutputDir, opts.OutputFormat, opts.Refresh)
		manifest = m
		return err
	})
	if err != nil {
		p.Fail(err.Error())
		return nil, err
	}
	p.Success("merged document written to " + opts.OutputDir)
	return manifest, nil
}

// ValidateOptions configures a Validate operation.
type ValidateOptions struct {
	SourcePath  string
	Model       oscalmodel.ModelTag
	Format      oscalmodel.Format
	ParseMarkup bool
}

// Validate parses the source document and reports whether it is
// well-formed under its declared model, without producing a
// workspace.
func (d *Driver) Validate(opts ValidateOptions) error {
	p, _ := d.spinner().Start("validating " + opts.SourcePath)

	err := withMarkupMode(opts.ParseMarkup, func() error {
		data, err := afero.ReadFile(d.FS, opts.SourcePath)
		if err != nil {
			return &oscalworkspace.Error{Kind: oscalworkspace.ErrIO, Msg: err.Error()}
		}
		_, err = oscalmodel.Parse(opts.Model, data, opts.Format)
		if err != nil {
			return &oscalworkspace.Error{Kind: oscalworkspace.ErrParse, Msg: err.Error()}
		}
		return nil
	})
	if err != nil {
		p.Fail(err.Error())
		return err
	}
	p.Success(opts.SourcePath + " is valid")
	return nil
}

// ShowDissect returns, for each of the seven models, its block names
// in fixed order, for the show-dissect command's human-readable
// table.
func ShowDissect() map[oscalmodel.ModelTag][]string {
	out := make(map[oscalmodel.ModelTag][]string, len(oscalmodel.AllModelTags))
	for _, tag := range oscalmodel.AllModelTags {
		out[tag] = oscalmodel.BlockNames(tag)
	}
	return out
}
