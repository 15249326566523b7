// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package main

import (
	"github.com/spf13/cobra"
	instrsim "github.com/warthog618/go-instrsim"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "instrsim",
		Short: "Expected results of the simulated D2XX and GPIB libraries.",
		Long: `Instrsim prints the table of the expected result of every function ` +
			`exported by the simulated D2XX and GPIB libraries, or verifies a ` +
			`saved copy of that table against the current simulators.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringSliceP("lib", "l", nil,
		"restrict the table to the library, d2xx or gpib (may be repeated)")
	root.AddCommand(newOracleCmd(), newVerifyCmd())
	return root
}

// libraryOptions converts the --lib flag to Expectations options.
func libraryOptions(cmd *cobra.Command) ([]instrsim.Option, error) {
	names, err := cmd.Flags().GetStringSlice("lib")
	if err != nil {
		return nil, err
	}
	var options []instrsim.Option
	for _, name := range names {
		l, err := instrsim.ParseLibrary(name)
		if err != nil {
			return nil, err
		}
		options = append(options, instrsim.WithLibrary(l))
	}
	return options, nil
}
