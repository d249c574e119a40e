package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "mediahotkeys"
	app.Usage = "Ctrl+Alt media chords and media-key redirection to a background player"
	app.Version = Version
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "Path to the YAML configuration file",
			Value: DefaultConfigPath,
		},
		cli.StringFlag{
			Name:  "target",
			Usage: "Process name that receives redirected media keys",
		},
		cli.DurationFlag{
			Name:  "delay",
			Usage: "Wait before a redirected key message is delivered",
		},
		cli.BoolFlag{
			Name:  "no-redirect",
			Usage: "Only observe dedicated media keys, never redirect them",
		},
		cli.BoolFlag{
			Name:  "no-chords",
			Usage: "Disable the Ctrl+Alt media chords",
		},
		cli.BoolFlag{
			Name:  "no-tray",
			Usage: "Run without the notification-area icon",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Log every dispatched action",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "logs",
			Usage:  "Open the log folder",
			Action: openLogs,
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("mediahotkeys stopped", "error", err)
		os.Exit(1)
	}
}

func loadConfigFromContext(c *cli.Context) (*Config, error) {
	var overrides ConfigOverrides
	if c.GlobalIsSet("target") {
		target := c.GlobalString("target")
		overrides.TargetProcess = &target
	}
	if c.GlobalIsSet("delay") {
		delay := c.GlobalDuration("delay")
		overrides.Delay = &delay
	}
	overrides.NoRedirect = c.GlobalBool("no-redirect")
	overrides.NoChords = c.GlobalBool("no-chords")
	overrides.NoTray = c.GlobalBool("no-tray")
	overrides.Debug = c.GlobalBool("debug")

	return LoadConfig(c.GlobalString("config"), c.GlobalIsSet("config"), overrides)
}

func run(c *cli.Context) error {
	config, err := loadConfigFromContext(c)
	if err != nil {
		return err
	}

	logManager := NewLogManager(config.Logging.Dir, config.Logging.Debug)
	defer logManager.Close()
	notificationManager := NewNotificationManager(config, logManager)

	logManager.LogInfo("Starting", "version", Version)

	deps, err := NewPlatformDependencies(logManager)
	if err != nil {
		return fatal(logManager, notificationManager, err)
	}

	service := NewService(config, deps, NewSingleInstance(os.TempDir(), "mediahotkeys"), logManager, notificationManager)
	if err := service.Start(); err != nil {
		return fatal(logManager, notificationManager, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if config.Tray.Enabled {
		if err := runTray(ctx, trayMenu(config.Logging.Dir, stop, logManager), logManager); err != nil {
			logManager.LogWarning("Tray icon unavailable, stop with Ctrl+C", "error", err)
		}
	}

	service.Wait(ctx)
	service.Stop()
	return nil
}

// fatal surfaces a startup failure to the user before the process exits
func fatal(logManager *LogManager, notificationManager *NotificationManager, err error) error {
	logManager.LogError("Startup failed", err)
	notificationManager.NotifyError(fmt.Sprintf("Could not start: %v", err))
	return err
}

func openLogs(c *cli.Context) error {
	config, err := loadConfigFromContext(c)
	if err != nil {
		return err
	}
	return OpenLogsFolder(config.Logging.Dir)
}
