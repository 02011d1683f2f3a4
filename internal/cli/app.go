package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/atotto/clipboard"
	"github.com/goccy/go-json"

	"github.com/MKhiriev/gmc-client/internal/adapter"
	"github.com/MKhiriev/gmc-client/internal/events"
	"github.com/MKhiriev/gmc-client/internal/logger"
	"github.com/MKhiriev/gmc-client/internal/service"
	"github.com/MKhiriev/gmc-client/internal/tui"
	"github.com/MKhiriev/gmc-client/models"
)

// Client is a runnable terminal client.
type Client interface {
	// Run executes the command named by args[0] and blocks until it is done.
	Run(ctx context.Context, args []string) error
}

// LiveViewer renders a live telemetry stream until the user leaves.
type LiveViewer interface {
	RunLive(ctx context.Context, deviceID string, stream adapter.LiveStream) error
}

// App is the interactive command-line client: it dispatches typed commands to the services.
type App struct {
	services *service.ClientServices
	bus      *events.Bus
	live     LiveViewer
	build    models.AppBuildInfo
	logger   *logger.Logger

	out    io.Writer
	errOut io.Writer
	prompt Prompter
	copy   func(string) error
	create func(name string) (io.WriteCloser, error)
}

var _ Client = (*App)(nil)

// NewApp returns an App writing to stdout and prompting on the terminal.
func NewApp(services *service.ClientServices, bus *events.Bus, live LiveViewer, build models.AppBuildInfo, log *logger.Logger) *App {
	return &App{
		services: services,
		bus:      bus,
		live:     live,
		build:    build,
		logger:   log,
		out:      os.Stdout,
		errOut:   os.Stderr,
		prompt:   newTerminalPrompter(os.Stdin, os.Stdout, int(os.Stdin.Fd())),
		copy:     clipboard.WriteAll,
		create: func(name string) (io.WriteCloser, error) {
			return os.Create(name)
		},
	}
}

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, args []string) error
}

func (a *App) commands() []command {
	return []command{
		{"login", "login [-u username] [-code n]", a.login},
		{"register", "register [-u username] [-e email] [-captcha-out file]", a.register},
		{"mfa-submit", "mfa-submit [-code n]", a.mfaSubmit},
		{"mfa-setup", "mfa-setup [-code n]", a.mfaSetup},
		{"mfa-disable", "mfa-disable [-code n]", a.mfaDisable},
		{"logoff", "logoff", a.logoff},
		{"whoami", "whoami", a.whoami},
		{"user", "user <id>", a.user},
		{"update-me", "update-me [-username s] [-email s] [-alert-emails bool] [-change-password]", a.updateMe},
		{"delete-me", "delete-me", a.deleteMe},
		{"info", "info", a.info},
		{"device", "device <id>", a.device},
		{"stats", "stats <id> <field> [-start t] [-end t]", a.stats},
		{"timeline", "timeline <id> [-full] [-start t] [-end t]", a.timeline},
		{"calendar", "calendar <id>", a.calendar},
		{"map", "map -sw lon,lat -ne lon,lat", a.deviceMap},
		{"create-device", "create-device -name s [-model s] -at lon,lat", a.createDevice},
		{"update-device", "update-device <id> [-name s] [-model s] [-at lon,lat]", a.updateDevice},
		{"disable-device", "disable-device <id> [-delete]", a.disableDevice},
		{"import", "import <platform> <value>", a.importDevice},
		{"export", "export <id> [-format csv] [-start t] [-end t] [-o file] [-url]", a.export},
		{"live", "live <id>", a.liveTimeline},
		{"version", "version", a.version},
	}
}

// Run dispatches args[0]. Login and logoff transitions are logged for the
// whole run.
func (a *App) Run(ctx context.Context, args []string) error {
	ctx = a.logger.WithContext(ctx)

	unsubscribe := a.bus.Subscribe(func(e events.Event) {
		a.logger.Info().Str("event", string(e.Kind)).Msg("session changed")
	})
	defer unsubscribe()

	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		a.usage()
		if len(args) == 0 {
			return ErrUsage
		}
		return nil
	}

	for _, c := range a.commands() {
		if c.name != args[0] {
			continue
		}

		a.logger.Debug().Str("command", c.name).Msg("running command")
		err := c.run(ctx, args[1:])
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		if errors.Is(err, ErrUsage) {
			fmt.Fprintln(a.errOut, "usage: gmc-client", c.usage)
		}
		return err
	}

	a.usage()
	return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
}

func (a *App) usage() {
	w := tabwriter.NewWriter(a.errOut, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "usage: gmc-client [config flags] <command> [args]")
	fmt.Fprintln(w)
	for _, c := range a.commands() {
		name, rest, _ := strings.Cut(c.usage, " ")
		fmt.Fprintf(w, "  %s\t%s\n", name, rest)
	}
	w.Flush()
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

func (a *App) printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(a.out, string(b))
	return err
}

func (a *App) version(_ context.Context, _ []string) error {
	_, err := fmt.Fprintln(a.out, tui.RenderBuildInfo(a.build))
	return err
}
