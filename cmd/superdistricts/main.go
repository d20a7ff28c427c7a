// Command superdistricts glues the districts of a baseline plan into
// multi-member super-districts and allocates their seats proportionally.
//
//	superdistricts run --config run.yaml
//	superdistricts synth --rows 4 --cols 7 --block-rows 2 --block-cols 1 --out data/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "superdistricts",
		Short:         "Fair Representation Act super-district gluing",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newSynthCmd())

	return root
}
