// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	instrsim "github.com/warthog618/go-instrsim"
)

// ErrMismatch indicates the saved table differs from the simulators.
var ErrMismatch = errors.New("table does not match the simulators")

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify FILE",
		Short: "Compare a saved YAML table with the simulators.",
		Long: "Compare a saved YAML table with the simulators.  Differences are " +
			"printed as a diff from the current table to the saved table, " +
			"and the command fails.",
		Args: cobra.ExactArgs(1),
		RunE: runVerify,
	}
}

func runVerify(cmd *cobra.Command, args []string) error {
	options, err := libraryOptions(cmd)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrap(err, "read table")
	}
	diff, err := instrsim.Verify(data, options...)
	if err != nil {
		return errors.Wrapf(err, "verify '%s'", args[0])
	}
	if diff != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: mismatch (-current +saved):\n%s", args[0], diff)
		return ErrMismatch
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
	return nil
}
