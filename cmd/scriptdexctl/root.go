package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kailas-cloud/scriptdex"
	logpkg "github.com/kailas-cloud/scriptdex/internal/logger"
)

// Flag and viper keys. Each is also read from SCRIPTDEX_<KEY> with dashes as underscores.
const (
	keyRoot     = "root"
	keyServer   = "server"
	keyAPIKey   = "api-key"
	keyRaw      = "raw"
	keyTitle    = "title"
	keyScheme   = "scheme"
	keyLogLevel = "log-level"
	keyWidth    = "width"
)

// app holds the state shared by every subcommand.
type app struct {
	out io.Writer
	v   *viper.Viper
	// open builds the backend once flags are parsed; replaced in tests.
	open func(ctx context.Context) (backend, error)
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, v: viper.New()}
	a.open = a.openBackend
	return a.rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "scriptdexctl",
		Short: "Query a corpus of example scripts",
		Long: TitleStyle.Render("scriptdexctl") + SubtitleStyle.Render(" - query a corpus of example scripts") + `

Every command reads the corpus fresh, either in-process from --root
or through a running scriptdex server given with --server.

` + SubtitleStyle.Render("Examples:") + `
  scriptdexctl --root ./examples list --tag logging
  scriptdexctl --root ./examples get payload-logging
  scriptdexctl --server http://localhost:8080 search messageLog
  scriptdexctl compare payload-logging csv-to-xml --raw`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.String(keyRoot, "", "corpus root directory (env SCRIPTDEX_ROOT)")
	flags.String(keyServer, "", "scriptdex server URL; overrides --root (env SCRIPTDEX_SERVER)")
	flags.String(keyAPIKey, "", "bearer token for --server (env SCRIPTDEX_API_KEY)")
	flags.Bool(keyRaw, false, "print markdown without terminal rendering")
	flags.String(keyTitle, "", "listing title for --root mode")
	flags.String(keyScheme, "", "resource URI scheme for --root mode")
	flags.String(keyLogLevel, "", "log level for --root mode: debug, info, warn, error")
	flags.Int(keyWidth, 100, "word wrap width for rendered output")

	a.v.SetEnvPrefix("SCRIPTDEX")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	_ = a.v.BindPFlags(flags)

	root.AddCommand(
		a.listCmd(),
		a.getCmd(),
		a.searchCmd(),
		a.analyzeCmd(),
		a.compareCmd(),
		a.resourcesCmd(),
		a.readCmd(),
	)
	return root
}

var errNoCorpus = errors.New("either --root or --server is required")

func (a *app) openBackend(_ context.Context) (backend, error) {
	if server := a.v.GetString(keyServer); server != "" {
		return newRemoteClient(server, a.v.GetString(keyAPIKey))
	}

	root := a.v.GetString(keyRoot)
	if root == "" {
		return nil, &ExitError{Code: ExitUsage, Err: errNoCorpus}
	}
	logger, err := logpkg.NewLogger("cli", a.v.GetString(keyLogLevel))
	if err != nil {
		return nil, &ExitError{Code: ExitUsage, Err: err}
	}

	opts := []scriptdex.Option{scriptdex.WithRoot(root), scriptdex.WithLogger(logger)}
	if title := a.v.GetString(keyTitle); title != "" {
		opts = append(opts, scriptdex.WithTitle(title))
	}
	if scheme := a.v.GetString(keyScheme); scheme != "" {
		opts = append(opts, scriptdex.WithScheme(scheme))
	}
	c, err := scriptdex.New(opts...)
	if err != nil {
		return nil, classify(err)
	}
	return c, nil
}

// run opens the backend and executes query, reporting failures with a hint.
func (a *app) run(cmd *cobra.Command, query func(ctx context.Context, b backend) error) error {
	ctx := cmd.Context()
	b, err := a.open(ctx)
	if err != nil {
		return err
	}
	if err := query(ctx, b); err != nil {
		if h := hint(err); h != "" {
			fmt.Fprintln(cmd.ErrOrStderr(), WarningStyle.Render("Hint: ")+h)
		}
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return err
		}
		return classify(err)
	}
	return nil
}
