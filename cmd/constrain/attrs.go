package main

import (
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-constrain"
	"github.com/grindlemire/go-constrain/internal/script"
)

func newAttrsCmd() *cobra.Command {
	var ops bool

	cmd := &cobra.Command{
		Use:   "attrs",
		Short: "List attribute names, or every document step with --ops",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			p := newPrinter(cmd.OutOrStdout())
			if ops {
				for _, op := range script.Ops() {
					kind, _ := script.KindOf(op)
					p.printKeyValue(op, string(kind))
				}
				return
			}
			for _, a := range constrain.Attributes() {
				kind := "position"
				if a.IsDimension() {
					kind = "dimension"
				}
				p.printKeyValue(a.String(), kind)
			}
		},
	}

	cmd.Flags().BoolVar(&ops, "ops", false, "list every step a document accepts")
	return cmd
}
