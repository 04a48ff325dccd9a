package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newClearCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "clear",
		Short:   "Clear all history",
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, _ []string) error {
			st, _, err := openStore(v)
			if err != nil {
				return err
			}
			defer st.Close()

			count, err := st.Clear()
			if err != nil {
				return err
			}
			fmt.Printf("Cleared %d entries\n", count)
			return nil
		},
	}

	addDataDirFlag(cmd, v)
	addConfigFlag(cmd)

	return cmd
}
