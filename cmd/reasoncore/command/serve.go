package command

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reasoncore/core/clog"
	cayleyhttp "github.com/reasoncore/core/server/http"
)

// NewServeCmd serves the JSON API over HTTP, grounded on the teacher's
// `cayley http` command: open/build the store once, then block serving.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the triple-store and proof-search JSON API over HTTP.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromFlags(cmd)
			if err != nil {
				return err
			}
			if zl, err := clog.NewZapLogger(); err == nil {
				clog.SetLogger(zl)
			}
			g := buildGraph(cfg)
			clog.Infof("reasoncore serving %d triples", g.Stats().TripleCount)
			return cayleyhttp.Serve(cfg, g)
		},
	}
	cmd.Flags().String("host", "127.0.0.1", "host to listen on")
	cmd.Flags().String("port", "8080", "port to listen on")
	viper.BindPFlag(keyListenHost, cmd.Flags().Lookup("host"))
	viper.BindPFlag(keyListenPort, cmd.Flags().Lookup("port"))
	registerCommonFlags(cmd)
	return cmd
}
