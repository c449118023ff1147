package cli

import (
	"errors"
	"fmt"

	"github.com/harun/pbrctl/pkg/pbr"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show session playback status",
	Long:  `Show the tag count, pass-through playback totals and current tag of the session.`,
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	return run(cmd, "status", true, func(rt *runtime) error {
		count, err := rt.store.GetTagCount()
		if err != nil {
			return err
		}

		info, err := rt.store.GetPlaybackInfo(pbr.PassThroughSignature)
		if err != nil && !errors.Is(err, pbr.ErrNotFound) {
			return err
		}

		current := "none"
		index, err := pbr.NewResolver(rt.store).Resolve()
		switch {
		case err == nil:
			current = pbr.FormatTagID(index, false)
		case !errors.Is(err, pbr.ErrNotFound):
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Tags: %d\n", count)
		fmt.Fprintf(out, "PassThroughItems: %d\n", info.TotalItems)
		fmt.Fprintf(out, "PassThroughSize: %s\n", formatBytes(info.TotalSize))
		fmt.Fprintf(out, "CurrentOffset: %d\n", info.CurrentOffset)
		fmt.Fprintf(out, "CurrentTag: %s\n", current)
		return nil
	})
}

func formatBytes(n uint32) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1fMiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1fKiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%dB", n)
	}
}
