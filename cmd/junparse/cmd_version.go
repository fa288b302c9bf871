package main

import (
	"fmt"

	"github.com/maloquacious/semver"
	"github.com/spf13/cobra"
)

var version = semver.Version{
	Major: 0,
	Minor: 1,
	Patch: 0,
	Build: semver.Commit(),
}

func Version() semver.Version {
	return version
}

func newVersionCmd() *cobra.Command {
	var showBuildInfo bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showBuildInfo {
				fmt.Println(Version().String())
				return nil
			}
			fmt.Println(Version().Core())
			return nil
		},
	}

	cmd.Flags().BoolVar(&showBuildInfo, "build-info", false, "include build information")

	return cmd
}
