package main

import (
	"github.com/alecthomas/kong"
	"github.com/pterm/pterm"

	"github.com/upbound/oscal/internal/oscaldriver"
	"github.com/upbound/oscal/internal/oscalmodel"
)

// ShowDissectCmd prints the block table for every model.
type ShowDissectCmd struct{}

func (c *ShowDissectCmd) Run(ctx *kong.Context) error {
	table := [][]string{{"Model", "Blocks"}}
	for _, tag := range oscalmodel.AllModelTags {
		blocks := oscaldriver.ShowDissect()[tag]
		row := string(tag)
		joined := ""
		for i, b := range blocks {
			if i > 0 {
				joined += ", "
			}
			joined += b
		}
		table = append(table, []string{row, joined})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(table).Render()
}
