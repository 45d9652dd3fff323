package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type ServeOptions struct {
	Host        string
	Port        int
	WatchConfig bool
}

func NewServeCommand(globalOptions *GlobalOptions) *cobra.Command {
	serveOptions := &ServeOptions{}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(globalOptions, serveOptions)
		},
	}

	serveOptions.registerFlags(serveCmd.Flags())

	return serveCmd
}

func (options *ServeOptions) registerFlags(fs *pflag.FlagSet) {
	// flags for the serve command only
	fs.StringVar(&options.Host, "host", "", "Interface to listen on. (Env: BMH_HOST)")
	fs.IntVar(&options.Port, "port", 0, "Port for the HTTP server. (Env: BMH_PORT)")
	fs.BoolVar(&options.WatchConfig, "watch-config", false, "Reload the configuration file when it changes.")
}
