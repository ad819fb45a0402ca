// Package cli wires the cobra command tree onto the domain store.
//
// The commands are a thin presentation layer: they parse flags, call one
// store operation, and render the result. Every business rule lives in the
// store — a command never inspects or mutates entity state directly.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/eraycan/toplana/internal/store"
)

// NewRootCommand creates the toplana root command. The store is injected by
// the composition root (main) or by tests.
func NewRootCommand(st *store.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toplana",
		Short: "toplana - sosyal etkinlik ilanları",
		Long: "toplana is a social-events classifieds board: post activity " +
			"listings, browse and filter them, and join events before they fill up.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.AddCommand(NewRegisterCommand(st))
	cmd.AddCommand(NewLoginCommand(st))
	cmd.AddCommand(NewLogoutCommand(st))
	cmd.AddCommand(NewProfileCommand(st))
	cmd.AddCommand(NewAdsCommand(st))
	cmd.AddCommand(NewEventsCommand(st))
	cmd.AddCommand(NewMineCommand(st))
	cmd.AddCommand(NewCategoriesCommand(st))
	cmd.AddCommand(NewThemeCommand(st))

	return cmd
}
