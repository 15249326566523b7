// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package main

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	instrsim "github.com/warthog618/go-instrsim"
)

func newOracleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oracle",
		Short: "Print the table of expected results.",
		Args:  cobra.NoArgs,
		RunE:  runOracle,
	}
	cmd.Flags().StringP("format", "f", "yaml", "output format, yaml or json")
	return cmd
}

func runOracle(cmd *cobra.Command, args []string) error {
	options, err := libraryOptions(cmd)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	table, err := instrsim.Expectations(options...)
	if err != nil {
		return err
	}
	var data []byte
	switch format {
	case "yaml":
		data, err = instrsim.Marshal(table)
	case "json":
		data, err = json.MarshalIndent(table, "", "  ")
		data = append(data, '\n')
	default:
		return errors.Errorf("unknown format: '%s'", format)
	}
	if err != nil {
		return errors.Wrapf(err, "encode %s", format)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
