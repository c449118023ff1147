package cli

import (
	"fmt"

	"github.com/harun/pbrctl/pkg/dump"
	"github.com/harun/pbrctl/pkg/pbr"
	"github.com/harun/pbrctl/pkg/render"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var destination string

// dumpFs is the filesystem dumps are written to
var dumpFs = afero.NewOsFs()

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump a PBR target to a file",
}

var dumpSessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Dump the PBR session buffer to a file",
	Long: `Write a byte-exact copy of the session buffer to the destination file,
replacing it if it exists. Nothing is written when the session has no buffer.`,
	Args: cobra.NoArgs,
	RunE: runDumpSession,
}

func init() {
	dumpSessionCmd.Flags().StringVar(&destination, "destination", "", "file to write the session buffer to (required)")
	dumpCmd.AddCommand(dumpSessionCmd)
	rootCmd.AddCommand(dumpCmd)
}

func runDumpSession(cmd *cobra.Command, args []string) error {
	return run(cmd, "dump_session", true, func(rt *runtime) error {
		if destination == "" {
			return fmt.Errorf("%w: --destination is required", pbr.ErrInvalidArgument)
		}

		exported, err := pbr.Export(rt.store)
		if err != nil {
			return fmt.Errorf("failed to get session buffer: %w", err)
		}

		result, err := dump.NewWriter(dumpFs, rt.logger).Write(destination, exported)
		if err != nil {
			return err
		}
		rt.metrics.RecordDump(result.Bytes)

		return render.DumpResult(cmd.OutOrStdout(), rt.format, result)
	})
}
