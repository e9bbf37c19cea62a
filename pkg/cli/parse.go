package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getmockd/reqexpect/pkg/request"
)

var parseCmd = &cobra.Command{
	Use:   "parse <uri>",
	Short: "Parse a request URI and print its canonical form",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		req := request.Parse(args[0])
		fmt.Fprintln(cmd.OutOrStdout(), req.String())
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
