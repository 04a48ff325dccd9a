package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newSearchCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "search <query>",
		Short:   "Search text and link entries",
		Args:    cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, args []string) error {
			st, _, err := openStore(v)
			if err != nil {
				return err
			}
			defer st.Close()

			entries, err := st.Search(args[0], v.GetInt("limit"))
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Printf("No matches for %q\n", args[0])
				return nil
			}
			printEntries(entries)
			return nil
		},
	}

	cmd.Flags().IntP("limit", "l", 20, "max results")
	addDataDirFlag(cmd, v)
	addConfigFlag(cmd)

	return cmd
}
