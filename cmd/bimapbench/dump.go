// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gaissmai/bimap"
	"github.com/gaissmai/bimap/internal/workload"
)

func newDumpCmd(flags *rootFlags) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print a small generated map and its shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags.configPath, nil)
			if err != nil {
				return err
			}

			wc := cfg.Workload.Generator()
			wc.KeySpace = max(4*size, 1)

			gen, err := workload.New(wc)
			if err != nil {
				return err
			}

			m := bimap.New[int, string]()
			for m.Size() < size {
				m.Insert(gen.Left(), gen.Right())
			}

			out := cmd.OutOrStdout()
			if err := m.Fprint(out); err != nil {
				return err
			}

			st := m.Stats()
			_, err = fmt.Fprintf(out, "size: %d, left height: %d, right height: %d\n",
				st.Size, st.LeftHeight, st.RightHeight)
			return err
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", 16, "number of pairs")

	return cmd
}
