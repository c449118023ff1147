package cli

import (
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	cfgFile         string
	logLevel        string
	sourcePath      string
	sourceDriver    string
	outputFormat    string
	metricsTextfile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pbrctl",
	Short: "pbrctl - Playback/Record session tool",
	Long: `pbrctl inspects Playback/Record (PBR) sessions.
It lists the command invocations recorded in a session, marks the tag at the
current playback position, and dumps the raw session buffer to a file.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pbrctl/pbrctl.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&sourcePath, "source", "", "session image or database path")
	rootCmd.PersistentFlags().StringVar(&sourceDriver, "driver", "", "session source driver (image, sqlite)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format (text, list, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&metricsTextfile, "metrics-textfile", "", "write Prometheus metrics to this file on exit")

	// Version template
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`)
}

// GetRootCmd returns the root command for testing
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// GetVersion returns the current version
func GetVersion() string {
	return version
}
