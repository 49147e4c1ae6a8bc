package cli

import (
	"os"

	"github.com/interpretive-systems/catcol"
	"github.com/spf13/cobra"
)

func newPairsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pairs <left> <right>",
		Short: "Pair the non-empty lines of two texts in order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, right, err := readInputs(args[0], args[1])
			if err != nil {
				return err
			}
			_, err = catcol.ByPairs(left, right).WriteTo(os.Stdout)
			return err
		},
	}
}
