package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/olajoao/sticky-one/internal/clip"
	"github.com/olajoao/sticky-one/internal/popup"
)

func newPopupCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "popup",
		Short: "Open the interactive history picker",
		Long: `Opens the terminal history picker: type to filter, arrows to select,
enter to copy the selection back to the clipboard. This is what the daemon
spawns when the hotkey fires.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, _ []string) error {
			st, _, err := openStore(v)
			if err != nil {
				return err
			}
			defer st.Close()

			entries, err := st.List(popup.MaxEntries)
			if err != nil {
				return err
			}

			p := tea.NewProgram(popup.New(entries, clip.New()), tea.WithAltScreen())
			final, err := p.Run()
			if err != nil {
				return err
			}
			if m, ok := final.(popup.Model); ok {
				return m.Err()
			}
			return nil
		},
	}

	addDataDirFlag(cmd, v)
	addConfigFlag(cmd)

	return cmd
}
