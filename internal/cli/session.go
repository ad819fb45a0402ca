package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eraycan/toplana/internal/store"
)

// NewRegisterCommand creates a new account and signs it in.
func NewRegisterCommand(st *store.Store) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := st.Register(name, email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s!\n", user.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "email address (your login)")
	cmd.Flags().StringVar(&password, "password", "", "password")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

// NewLoginCommand signs an existing account in.
func NewLoginCommand(st *store.Store) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with an existing account",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := st.Login(email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome back, %s!\n", user.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

// NewLogoutCommand ends the session. Joined events are forgotten with it.
func NewLogoutCommand(st *store.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		RunE: func(cmd *cobra.Command, args []string) error {
			st.Logout()
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

// NewProfileCommand shows or updates the active profile.
func NewProfileCommand(st *store.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the signed-in profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := st.CurrentUser()
			if user == nil {
				return fmt.Errorf("not signed in")
			}
			renderUser(cmd.OutOrStdout(), user)
			return nil
		},
	}

	cmd.AddCommand(newProfileUpdateCommand(st))
	return cmd
}

func newProfileUpdateCommand(st *store.Store) *cobra.Command {
	var name, bio, instagram, twitter string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only flags that were actually passed become part of the
			// partial update — an omitted flag leaves the field alone,
			// an empty one clears it.
			var update store.ProfileUpdate
			if cmd.Flags().Changed("name") {
				update.Name = &name
			}
			if cmd.Flags().Changed("bio") {
				update.Bio = &bio
			}
			if cmd.Flags().Changed("instagram") {
				update.Instagram = &instagram
			}
			if cmd.Flags().Changed("twitter") {
				update.Twitter = &twitter
			}

			user, err := st.UpdateProfile(update)
			if err != nil {
				return err
			}
			renderUser(cmd.OutOrStdout(), user)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name (regenerates the avatar)")
	cmd.Flags().StringVar(&bio, "bio", "", "short bio")
	cmd.Flags().StringVar(&instagram, "instagram", "", "instagram handle")
	cmd.Flags().StringVar(&twitter, "twitter", "", "twitter handle")

	return cmd
}
