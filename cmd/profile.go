package cmd

import (
	"errors"
	"fmt"

	"github.com/abhisek/learnlab/internal/profileapi"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the stored learning profile",
}

var profileGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the stored learning profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd)
		if err != nil {
			return err
		}
		defer d.log.Sync()

		client, creds := d.profiles()
		p, err := client.Fetch(cmd.Context(), creds)
		if errors.Is(err, profileapi.ErrProfileNotFound) {
			fmt.Fprintln(cmd.OutOrStdout(), "No learning profile stored. Run 'learnlab assess --submit' first.")
			return nil
		}
		if err != nil {
			return profileError("fetch profile", err)
		}
		printProfile(cmd.OutOrStdout(), *p)
		return nil
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the stored learning profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd)
		if err != nil {
			return err
		}
		defer d.log.Sync()

		client, creds := d.profiles()
		if err := client.Delete(cmd.Context(), creds); err != nil {
			return profileError("delete profile", err)
		}
		d.log.Info("profile deleted")
		fmt.Fprintln(cmd.OutOrStdout(), "Learning profile deleted.")
		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileGetCmd)
	profileCmd.AddCommand(profileDeleteCmd)
}

// profileError wraps a profile client error with what the learner should do
// next. The original error stays reachable through errors.Is/As.
func profileError(action string, err error) error {
	var valErr *profileapi.ValidationError
	switch {
	case errors.Is(err, profileapi.ErrMissingAuthToken), errors.Is(err, profileapi.ErrUnauthorized):
		return fmt.Errorf("%s: %w\nSign in again, then set api.token in the config file or LEARNLAB_API_TOKEN", action, err)
	case errors.As(err, &valErr):
		return fmt.Errorf("%s: %w\nCheck the responses and try again", action, err)
	case profileapi.IsRetryable(err):
		return fmt.Errorf("%s: %w\nThe profile service could not be reached; try again shortly", action, err)
	default:
		return fmt.Errorf("%s: %w", action, err)
	}
}
