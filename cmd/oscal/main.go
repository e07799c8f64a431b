// Copyright 2021 Upbound Inc
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/pterm/pterm"
	"github.com/willabides/kongplete"
)

type cli struct {
	Quiet bool `short:"q" name:"quiet" help:"Suppress all output."`

	Dissect            DissectCmd                   `cmd:"" help:"Split a document into a modifiable workspace."`
	Merge              MergeCmd                     `cmd:"" help:"Reassemble a dissected workspace into one document."`
	Validate           ValidateCmd                  `cmd:"" help:"Check that a document parses under its declared model."`
	ShowDissect        ShowDissectCmd               `cmd:"" name:"show-dissect" help:"Show the block table for every model."`
	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions."`
}

// AfterApply applies global flags before any command runs.
func (c *cli) AfterApply(ctx *kong.Context) error { //nolint:unparam
	if c.Quiet {
		ctx.Stdout, ctx.Stderr = io.Discard, io.Discard
		pterm.DisableOutput()
	}
	return nil
}

func main() {
	c := cli{}

	parser := kong.Must(&c,
		kong.Name("oscal"),
		kong.Description("Dissect, merge, and validate OSCAL security-control documents."),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}))

	kongplete.Complete(parser)

	if len(os.Args) == 1 {
		_, err := parser.Parse([]string{"--help"})
		parser.FatalIfErrorf(err)
		return
	}

	kongCtx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)
	go func() {
		defer cancel()
		<-sigCh
		kongCtx.Exit(1)
	}()

	kongCtx.BindTo(ctx, (*context.Context)(nil))
	kongCtx.FatalIfErrorf(kongCtx.Run())
}
