package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is stamped by the linker on release builds.
var Version = ""

func NewCmdVersion() *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "version",
		DisableFlagsInUseLine: true,
		Short:                 "Print the version of this CLI",
		Args:                  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), BuildVersionString())
		},
	}
	return cmd
}

func BuildVersionString() string {
	if Version == "" {
		return "vmanage-unlock (source build)"
	}
	return fmt.Sprintf("vmanage-unlock %s", Version)
}
