package cli

import (
	"github.com/interpretive-systems/catcol/internal/tui"
	"github.com/spf13/cobra"
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <left> <right>",
		Short: "Preview the combined text interactively",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, right, err := readInputs(args[0], args[1])
			if err != nil {
				return err
			}
			return tui.Run(
				tui.Pane{Name: args[0], Text: left},
				tui.Pane{Name: args[1], Text: right},
			)
		},
	}
}
