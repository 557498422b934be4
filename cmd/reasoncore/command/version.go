package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reasoncore/core/version"
)

// NewVersionCmd prints build version information.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information.",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("reasoncore %s (%s) built %s\n", version.Version, version.GitHash, version.BuildDate)
			return nil
		},
	}
}
