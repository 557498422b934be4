package cayleyhttp

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/reasoncore/core/clog"
	"github.com/reasoncore/core/internal/config"
	"github.com/reasoncore/core/store"
)

// Serve builds the route table over g and blocks serving HTTP on
// cfg.ListenHost:cfg.ListenPort, in the teacher's Serve/SetupRoutes split.
func Serve(cfg *config.Config, g *store.Graph) error {
	r := httprouter.New()
	api := New(cfg, g)
	api.SetupRoutes(r)

	addr := fmt.Sprintf("%s:%s", cfg.ListenHost, cfg.ListenPort)
	clog.Infof("reasoncore now listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
