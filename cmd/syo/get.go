package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/olajoao/sticky-one/internal/clip"
)

func newGetCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "get <id>",
		Short:   "Copy a specific entry back to the clipboard",
		Args:    cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid entry id %q", args[0])
			}

			st, _, err := openStore(v)
			if err != nil {
				return err
			}
			defer st.Close()

			e, err := st.GetByID(id)
			if err != nil {
				return err
			}
			if err := clip.New().WriteEntry(e); err != nil {
				return err
			}
			fmt.Printf("Copied entry %d\n", id)
			return nil
		},
	}

	addDataDirFlag(cmd, v)
	addConfigFlag(cmd)

	return cmd
}
