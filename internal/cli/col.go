package cli

import (
	"os"

	"github.com/interpretive-systems/catcol"
	"github.com/spf13/cobra"
)

func newColCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "col <left> <right>",
		Short: "Column-align two texts, padded to the left text's widest line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fill, err := cmd.Flags().GetString("fill")
			if err != nil {
				return err
			}
			repeat, err := cmd.Flags().GetInt("repeat")
			if err != nil {
				return err
			}
			r, err := fillRune(fill)
			if err != nil {
				return err
			}
			left, right, err := readInputs(args[0], args[1])
			if err != nil {
				return err
			}
			out := catcol.New().Fill(r).Repeat(repeat).CombineCol(left, right)
			_, err = out.WriteTo(os.Stdout)
			return err
		},
	}
	cmd.Flags().StringP("fill", "f", " ", "fill character used for padding")
	cmd.Flags().IntP("repeat", "n", 0, "extra fill characters after the padding")
	return cmd
}
