package cli

import (
	"fmt"

	"github.com/harun/pbrctl/pkg/pbr"
	"github.com/harun/pbrctl/pkg/source/image"
	"github.com/harun/pbrctl/pkg/source/sqlite"
	"github.com/spf13/cobra"
)

var convertDB string

var convertCmd = &cobra.Command{
	Use:   "convert <image>",
	Short: "Convert a session image into a SQLite session database",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertDB, "db", "", "database file to create (required)")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	return run(cmd, "convert", false, func(rt *runtime) error {
		if convertDB == "" {
			return fmt.Errorf("%w: --db is required", pbr.ErrInvalidArgument)
		}

		backend, err := image.NewLoader(rt.logger).Load(args[0])
		if err != nil {
			return err
		}

		if err := sqlite.Save(convertDB, backend.Session(), rt.logger); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Converted %d tags to %s\n", len(backend.Session().Tags), convertDB)
		return nil
	})
}
