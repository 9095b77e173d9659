/*
 * commands.go, part of openmx.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rmera/openmx"
	"github.com/rmera/openmx/qm"
)

func newRootCmd(logger *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "mxbasis",
		Short: "Standard OpenMX basis presets",
		Long: `mxbasis prints the standard pseudo-atomic orbital settings used for
OpenMX calculations, in the format of the Definition.of.Atomic.Species block,
and the default band structure path.

Examples:
  mxbasis show Fe O          # species lines for Fe and O
  mxbasis show --xc LDA      # all elements, LDA pseudopotentials
  mxbasis kpath              # default Band.kpath block
  mxbasis export my.toml     # write the table, to be edited`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newShowCmd(logger), newKPathCmd(), newExportCmd(logger))
	return root
}

func newShowCmd(logger *zap.Logger) *cobra.Command {
	var xc, tablefile string
	cmd := &cobra.Command{
		Use:   "show [symbols...]",
		Short: "Print Definition.of.Atomic.Species lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := openmx.DefaultTable()
			if tablefile != "" {
				var err error
				table, err = openmx.TableFileRead(tablefile)
				if err != nil {
					logger.Error("reading table", zap.String("file", tablefile), zap.Error(err))
					return err
				}
			}
			if len(args) == 0 {
				args = table.Symbols()
			}
			family := qm.PseudoFamily(xc)
			missing := 0
			for _, sym := range args {
				spec, err := table.Basis(sym)
				if err != nil {
					logger.Warn("no preset", zap.String("element", sym), zap.Error(err))
					missing++
					continue
				}
				fmt.Fprint(cmd.OutOrStdout(), qm.SpeciesLine(spec, family))
			}
			if missing > 0 {
				return fmt.Errorf("%d element(s) without preset", missing)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&xc, "xc", "GGA-PBE", "exchange-correlation functional, selects the pseudopotential family")
	cmd.Flags().StringVar(&tablefile, "table", "", "read presets from this file instead of the defaults")
	return cmd
}

func newKPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kpath",
		Short: "Print the default Band.kpath block",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), qm.KPathBlock(openmx.DefaultKPath()))
		},
	}
}

func newExportCmd(logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the default table to a .json or .toml file, optionally .gz or .zst",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openmx.TableFileWrite(args[0], openmx.DefaultTable()); err != nil {
				logger.Error("writing table", zap.String("file", args[0]), zap.Error(err))
				return err
			}
			logger.Info("table written", zap.String("file", args[0]), zap.Int("elements", openmx.DefaultTable().Len()))
			return nil
		},
	}
}
