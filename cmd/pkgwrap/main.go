package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/steelcutops/pkgwrap/logger"
	"github.com/steelcutops/pkgwrap/pkgwrap/commandmanager"
	"github.com/steelcutops/pkgwrap/pkgwrap/config"
	"github.com/steelcutops/pkgwrap/pkgwrap/packagemanager"
	"github.com/steelcutops/pkgwrap/pkgwrap/proxyconfig"
)

const (
	exitOK        = 0
	exitFailure   = 1
	exitNoManager = 2
)

const (
	actionInstall = "install"
	actionList    = "list"
	actionRemove  = "remove"
	actionUpdate  = "update"
)

// geteuid is swapped out in tests.
var geteuid = os.Geteuid

type flags struct {
	Action         string
	Debug          bool
	Packages       []string
	TimeoutSeconds int
}

// packagesValue binds a package-list flag to an action. Set runs in argv
// order, so the action named last on the command line wins.
type packagesValue struct {
	f      *flags
	action string
}

func (v *packagesValue) String() string {
	if v.f == nil {
		return ""
	}
	return strings.Join(v.f.Packages, ",")
}

func (v *packagesValue) Set(value string) error {
	v.f.Action = v.action
	v.f.Packages = strings.Split(value, ",")
	return nil
}

// actionValue is a bare action flag with no package list.
type actionValue struct {
	f      *flags
	action string
}

func (v *actionValue) String() string { return "" }

func (v *actionValue) Set(value string) error {
	v.f.Action = v.action
	v.f.Packages = nil
	return nil
}

func (v *actionValue) IsBoolFlag() bool { return true }

func parseFlags(args []string) (*flags, error) {
	f := &flags{}

	fs := flag.NewFlagSet("pkgwrap", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.BoolVar(&f.Debug, "debug", false, "Enable debug log level")
	fs.IntVar(&f.TimeoutSeconds, "timeout", 600, "Network timeout in seconds written into the manager configuration")
	fs.Var(&packagesValue{f: f, action: actionInstall}, "install", "Comma-separated list of packages to install")
	fs.Var(&actionValue{f: f, action: actionList}, "list-installed", "List the installed packages")
	fs.Var(&packagesValue{f: f, action: actionRemove}, "remove", "Comma-separated list of packages to remove")
	fs.Var(&actionValue{f: f, action: actionUpdate}, "system-update", "Update every installed package")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Parse stops at the first non-flag token; anything left over was
	// never inspected and must not be silently dropped.
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	if f.Action == "" {
		return nil, errors.New("no action requested; use -install, -remove, -system-update or -list-installed")
	}

	return f, nil
}

func runAction(ctx context.Context, manager packagemanager.PackageManager, f *flags) (commandmanager.CommandResult, error) {
	switch f.Action {
	case actionInstall:
		return manager.InstallPackages(ctx, f.Packages)
	case actionRemove:
		return manager.RemovePackages(ctx, f.Packages)
	case actionUpdate:
		return manager.UpgradeAll(ctx)
	case actionList:
		return manager.ListInstalled(ctx)
	default:
		return commandmanager.CommandResult{}, fmt.Errorf("unknown action %q", f.Action)
	}
}

func run(args []string) int {
	f, err := parseFlags(args)
	if err != nil {
		log.Errorf("invalid arguments: %v", err)
		return exitFailure
	}

	if f.Debug {
		logger.Configure(true)
	}

	if geteuid() != 0 {
		log.Error("pkgwrap must be run as root")
		return exitFailure
	}

	settings, err := config.Load()
	if err != nil {
		log.Errorf("reading environment: %v", err)
		return exitFailure
	}

	proxy := proxyconfig.Proxy{TimeoutSeconds: f.TimeoutSeconds}
	if settings.ProxyEnabled() {
		proxy.URL = settings.ProxyURL

		certPath, err := settings.WriteCertFile()
		if err != nil {
			log.Errorf("writing certificate file: %v", err)
			return exitFailure
		}
		if certPath != "" {
			proxy.CACertPath = certPath
			defer func() {
				if err := os.Remove(certPath); err != nil {
					log.Warnf("removing certificate file %s: %v", certPath, err)
				}
			}()
		}
	}

	name, err := packagemanager.Detect()
	if err != nil {
		log.Errorf("no supported package manager found: %v", err)
		return exitNoManager
	}

	builder, err := proxyconfig.NewBuilder(name, proxy)
	if err != nil {
		log.Errorf("%v", err)
		return exitFailure
	}

	configPath, err := proxyconfig.CopyToTemp(builder.SystemPath())
	if err != nil {
		log.Errorf("copying %s: %v", builder.SystemPath(), err)
		return exitFailure
	}
	// The copy stays on disk after the run; its path is the record of what
	// the manager consumed.
	log.Infof("using %s configuration %s", name, configPath)

	if settings.ProxyEnabled() {
		if err := builder.Apply(configPath); err != nil {
			log.Errorf("applying proxy settings to %s: %v", configPath, err)
			return exitFailure
		}
	}

	manager, err := packagemanager.New(name, &commandmanager.UnixCommandManager{}, configPath)
	if err != nil {
		log.Errorf("%v", err)
		return exitFailure
	}

	result, err := runAction(context.Background(), manager, f)
	if err != nil && result.ExitCode == 0 {
		log.Errorf("running %s: %v", name, err)
		return exitFailure
	}

	if result.STDOUT != "" {
		fmt.Print(result.STDOUT)
	}
	if result.STDERR != "" {
		fmt.Fprint(os.Stderr, result.STDERR)
	}

	status := packagemanager.Normalize(result.ExitCode, name)
	if status != exitOK {
		log.Errorf("%s exited with code %d", name, result.ExitCode)
	}
	return status
}

func main() {
	logger.Configure(false)
	os.Exit(run(os.Args[1:]))
}
