package cli

import (
	"fmt"

	"github.com/harun/pbrctl/pkg/pbr"
	"github.com/harun/pbrctl/pkg/render"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show information about a PBR target",
}

var showSessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Show basic information about the session PBR file",
	Long: `List every tag recorded in the session with its exit code and CLI
arguments. The tag at the current playback position is marked with '*'.`,
	Args: cobra.NoArgs,
	RunE: runShowSession,
}

func init() {
	showCmd.AddCommand(showSessionCmd)
	rootCmd.AddCommand(showCmd)
}

func runShowSession(cmd *cobra.Command, args []string) error {
	return run(cmd, "show_session", true, func(rt *runtime) error {
		listing, err := pbr.Show(rt.store)
		if err != nil {
			return fmt.Errorf("failed to show session: %w", err)
		}

		rt.logger.Info().
			Int("tags", len(listing.Rows)).
			Int("current", listing.Current).
			Msg("Session listed")

		return render.Listing(cmd.OutOrStdout(), rt.format, listing)
	})
}
