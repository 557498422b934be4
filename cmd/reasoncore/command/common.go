// Package command implements the reasoncore CLI's subcommands: serve,
// query, path, prove, and load. Each builds a *config.Config from flags and
// the process environment (CLOUD_DB_URL, MAX_DEPTH), optionally bulk-loads
// the store, and drives one of the domain packages.
//
// Grounded on the teacher's cmd/cayley/command package: one NewXCmd()
// constructor per subcommand, viper-bound flags, and a shared
// printBackendInfo-style startup log line.
package command

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reasoncore/core/clog"
	"github.com/reasoncore/core/internal/bulkload"
	"github.com/reasoncore/core/internal/config"
	"github.com/reasoncore/core/store"
)

const (
	keyListenHost = "listen_host"
	keyListenPort = "listen_port"
	keyMaxDepth   = "max_depth"
	keyReadOnly   = "read_only"
)

// configFromFlags builds a Config from environment overrides layered under
// whatever the command's own flags set, mirroring the teacher's
// configFrom(file) precedence (flags/env fill in what the config file left
// zero) but without a config file: this core's configuration surface is
// small enough to live entirely in flags and the two documented environment
// variables.
func configFromFlags(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, err
	}
	// Every subcommand registers its own --max-depth flag under the same
	// viper key; rebind it to this command's flag before reading it.
	if f := cmd.Flags().Lookup("max-depth"); f != nil {
		viper.BindPFlag(keyMaxDepth, f)
	}
	if v := viper.GetString(keyListenHost); v != "" {
		cfg.ListenHost = v
	}
	if v := viper.GetString(keyListenPort); v != "" {
		cfg.ListenPort = v
	}
	if v := viper.GetInt(keyMaxDepth); v > 0 {
		cfg.MaxDepth = v
	}
	cfg.ReadOnly = viper.GetBool(keyReadOnly)
	return cfg, nil
}

// buildGraph constructs an empty store and, if CLOUD_DB_URL is set, bulk
// loads it. A load failure is logged and never fatal (spec §7).
func buildGraph(cfg *config.Config) *store.Graph {
	g := store.New()
	if cfg.CloudDBURL == "" {
		return g
	}
	if _, err := bulkload.Load(g, cfg.CloudDBURL); err != nil {
		clog.Warningf("bulk load failed, continuing with an empty store: %v", err)
	}
	return g
}

func registerCommonFlags(cmd *cobra.Command) {
	cmd.Flags().Int("max-depth", 0, "override MAX_DEPTH for this invocation")
	viper.BindPFlag(keyMaxDepth, cmd.Flags().Lookup("max-depth"))
}

// readInput returns the bytes of the named file, or stdin when path is "-"
// or empty.
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// loadTriplesFile seeds g from a newline-delimited file, one triple per
// line as tab-separated subject, predicate, object (optionally a fourth
// context column). Blank lines are skipped.
func loadTriplesFile(g *store.Graph, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) < 3 {
			clog.Warningf("skipping malformed triple line: %q", line)
			continue
		}
		ctx := ""
		if len(cols) > 3 {
			ctx = cols[3]
		}
		g.Insert(store.New(cols[0], cols[1], cols[2], ctx))
	}
	return sc.Err()
}
