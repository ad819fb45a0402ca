package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eraycan/toplana/internal/store"
)

// NewAdsCommand groups the listing commands. Bare `toplana ads` lists the
// feed.
func NewAdsCommand(st *store.Store) *cobra.Command {
	var category, search string

	cmd := &cobra.Command{
		Use:   "ads",
		Short: "Browse, post and join listings",
		RunE: func(cmd *cobra.Command, args []string) error {
			st.SetSelectedCategory(category)
			st.SetSearchQuery(search)
			renderAds(cmd.OutOrStdout(), st.FilteredAds())
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only this category id (empty for all)")
	cmd.Flags().StringVar(&search, "search", "", "free-text filter over title, description, location and tags")

	cmd.AddCommand(newAdsCreateCommand(st))
	cmd.AddCommand(newAdsJoinCommand(st))
	cmd.AddCommand(newAdsParticipantsCommand(st))

	return cmd
}

func newAdsCreateCommand(st *store.Store) *cobra.Command {
	var in store.CreateAdInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Post a new listing (requires login)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ad, err := st.CreateAd(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Listing posted.\n\n")
			renderAd(cmd.OutOrStdout(), ad)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Title, "title", "", "listing title")
	cmd.Flags().StringVar(&in.Description, "description", "", "what, where, for whom")
	cmd.Flags().StringVar(&in.CategoryID, "category", "", "category id (see `toplana categories`)")
	cmd.Flags().StringVar(&in.Location, "location", "", "where it happens")
	cmd.Flags().StringVar(&in.Date, "date", "", "event date, YYYY-MM-DD")
	cmd.Flags().StringVar(&in.Time, "time", "", "event time, HH:MM (optional)")
	cmd.Flags().IntVar(&in.MaxParticipants, "max", 2, "capacity including you (minimum 2)")
	cmd.Flags().StringSliceVar(&in.Tags, "tags", nil, "comma-separated tags")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("category")
	cmd.MarkFlagRequired("location")
	cmd.MarkFlagRequired("date")

	return cmd
}

func newAdsJoinCommand(st *store.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "join <ad-id>",
		Short: "Reserve a slot in a listing (requires login)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := st.JoinAd(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "You're in!")
			return nil
		},
	}
}

func newAdsParticipantsCommand(st *store.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "participants <ad-id>",
		Short: "Who is attending a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderParticipants(cmd.OutOrStdout(), st.ParticipantsOf(args[0]))
			return nil
		},
	}
}
