package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/olajoao/sticky-one/internal/config"
	"github.com/olajoao/sticky-one/internal/entry"
	"github.com/olajoao/sticky-one/internal/store"
)

// addDataDirFlag adds --data-dir and binds it onto the data_dir config key.
func addDataDirFlag(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().String("data-dir", config.DefaultDataDir(), "data directory (database + pid file)")
	_ = v.BindPFlag("data_dir", cmd.Flags().Lookup("data-dir"))
}

// openStore resolves the configured database path and opens it. Query
// commands get their own connection; SQLite's WAL mode handles concurrent
// reads alongside the daemon's writes.
func openStore(v *viper.Viper) (*store.Store, *config.Config, error) {
	cfg, err := loadConfig(v)
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(cfg.DBPath())
	if err != nil {
		return nil, nil, err
	}
	return st, cfg, nil
}

// printEntries renders history rows as a table.
func printEntries(entries []*entry.Entry) {
	if len(entries) == 0 {
		fmt.Println("No entries.")
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 1, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "ID\tTYPE\tTIME\tPREVIEW\n")
	_, _ = fmt.Fprintf(tw, "--\t----\t----\t-------\n")
	for _, e := range entries {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			e.ID, e.Type,
			time.Unix(e.CreatedAt, 0).Format("15:04"),
			e.Preview(80),
		)
	}
	_ = tw.Flush()
}
