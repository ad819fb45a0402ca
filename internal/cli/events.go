package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eraycan/toplana/internal/model"
	"github.com/eraycan/toplana/internal/store"
)

// NewEventsCommand shows the session's joined events, split into upcoming
// and past.
func NewEventsCommand(st *store.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Your joined events",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Upcoming:")
			renderAds(w, st.UpcomingJoined())
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Past:")
			renderAds(w, st.PastJoined())
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "upcoming",
		Short: "Joined events that haven't happened yet",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderAds(cmd.OutOrStdout(), st.UpcomingJoined())
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "past",
		Short: "Joined events whose date has passed",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderAds(cmd.OutOrStdout(), st.PastJoined())
			return nil
		},
	})

	return cmd
}

// NewMineCommand lists the session user's own postings.
func NewMineCommand(st *store.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "Listings you posted",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderAds(cmd.OutOrStdout(), st.MyAds())
			return nil
		},
	}
}

// NewCategoriesCommand lists the fixed category set.
func NewCategoriesCommand(st *store.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "The available listing categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range st.Categories() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-8s %s\n", glyph(c.Icon), c.ID, c.Name)
			}
			return nil
		},
	}
}

// NewThemeCommand shows or sets the display preference.
func NewThemeCommand(st *store.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [light|dark]",
		Short: "Show or set the display theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), st.Theme())
				return nil
			}
			if err := st.SetTheme(model.Theme(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s.\n", args[0])
			return nil
		},
	}
}
