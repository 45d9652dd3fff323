package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is overwritten at build time via -ldflags "-X bookmarkhub/internal/cli.Version=...".
var Version = "dev"

const defaultConfigPath = "config.toml"

type GlobalOptions struct {
	CfgFilePath string
	LogLevel    string
}

func NewRootCMD() *cobra.Command {

	globalOptions := &GlobalOptions{}

	rootCMD := &cobra.Command{
		Use:           "bookmarkhub",
		Short:         "bookmarkhub bookmark sync API",
		Long:          "An API server for browser bookmark synchronization.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// register global flags
	globalOptions.registerFlags(rootCMD.PersistentFlags())

	// add subcommands
	rootCMD.AddCommand(NewServeCommand(globalOptions))
	rootCMD.AddCommand(NewMigrateCommand(globalOptions))

	return rootCMD
}

func (options *GlobalOptions) registerFlags(fs *pflag.FlagSet) {
	// flags that can be used for each command
	fs.StringVar(&options.CfgFilePath, "config_path", defaultConfigPath, "Path to the base configuration file. (Env: BMH_CONFIG_PATH)")
	fs.StringVar(&options.LogLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: BMH_LOG_LEVEL)")
}

func Execute() {

	rootCmd := NewRootCMD()

	// Run the command based on os.Args
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
