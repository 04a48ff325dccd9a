package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newListCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List recent clipboard entries",
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, _ []string) error {
			st, _, err := openStore(v)
			if err != nil {
				return err
			}
			defer st.Close()

			entries, err := st.List(v.GetInt("limit"))
			if err != nil {
				return err
			}
			printEntries(entries)
			return nil
		},
	}

	cmd.Flags().IntP("limit", "l", 20, "max entries to show")
	addDataDirFlag(cmd, v)
	addConfigFlag(cmd)

	return cmd
}
