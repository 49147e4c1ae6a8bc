package cli

import (
	"os"

	"github.com/interpretive-systems/catcol"
	"github.com/spf13/cobra"
)

func newCatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <left> <right>",
		Short: "Join two texts line by line with a single space",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, right, err := readInputs(args[0], args[1])
			if err != nil {
				return err
			}
			_, err = catcol.CatToCol(left, right).WriteTo(os.Stdout)
			return err
		},
	}
}
