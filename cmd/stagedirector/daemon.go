package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rinodrops/stagedirector/internal/config"
	"github.com/rinodrops/stagedirector/internal/engine"
	"github.com/rinodrops/stagedirector/internal/geometry"
	"github.com/rinodrops/stagedirector/internal/hotkeys"
	"github.com/rinodrops/stagedirector/internal/ipc"
	"github.com/rinodrops/stagedirector/internal/platform"
	"github.com/rinodrops/stagedirector/internal/sidebar"
)

func runDaemon(args []string) int {
	fs := flag.NewFlagSet("daemon", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "", "Config file path (default: ~/.config/stagedirector/config.yaml)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: stagedirector daemon [--config PATH]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Run the window geometry daemon in the foreground. The daemon owns")
		fmt.Fprintln(os.Stderr, "the X11 connection, global hotkeys, and the IPC socket.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "daemon takes no arguments")
		fs.Usage()
		return 2
	}

	path := *configPath
	if path == "" {
		var err error
		path, err = config.DefaultConfigPath()
		if err != nil {
			log.Fatalf("Failed to resolve config path: %v", err)
		}
	}

	cfg, err := config.LoadFromPath(path)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Printf("Configuration loaded (window gap: %gpx, edge gap: %gpx)", cfg.WindowGap, cfg.EdgeGap)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))

	store := config.NewStore(cfg)

	backend, err := platform.NewX11Backend()
	if err != nil {
		log.Fatalf("Failed to connect to display: %v", err)
	}
	defer backend.Close()

	log.Println("stagedirector daemon started successfully")

	probe := sidebar.CommandProbe{Argv: cfg.Sidebar.ProbeCommand}
	sidebarMon := sidebar.NewMonitor(probe, cfg.Sidebar.RefreshInterval, logger)

	controller := engine.NewController(backend, sidebarMon.Current, func() engine.Settings {
		c := store.Current()
		return engine.Settings{
			Gaps: geometry.Gaps{
				Window:  c.WindowGap,
				Edge:    c.EdgeGap,
				Sidebar: c.SidebarWidth,
			},
			Tolerance:     c.Tolerance,
			MaximizeSizes: c.MaximizeSizes,
		}
	}, logger)

	hotkeyHandler := hotkeys.NewHandler(backend, controller)
	if err := hotkeyHandler.RegisterAll(cfg.Hotkeys); err != nil {
		log.Fatalf("Failed to register hotkeys: %v", err)
	}
	log.Printf("Registered %d hotkeys", len(cfg.Hotkeys))

	ipcServer, err := ipc.NewServer(controller, store, sidebarMon, backend, path)
	if err != nil {
		log.Fatalf("Failed to create IPC server: %v", err)
	}
	if err := ipcServer.Start(); err != nil {
		log.Fatalf("Failed to start IPC server: %v", err)
	}
	defer ipcServer.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go sidebarMon.Run(ctx)
	go func() {
		if err := config.Watch(ctx, path, store, logger); err != nil {
			logger.Warn("config watcher stopped", "error", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		for sig := range sigCh {
			switch sig {
			case syscall.SIGHUP:
				log.Println("Received SIGHUP, reloading config...")
				newCfg, err := config.LoadFromPath(path)
				if err != nil {
					log.Printf("Config reload failed: %v", err)
					continue
				}
				if err := store.Replace(newCfg); err != nil {
					log.Printf("Config reload rejected: %v", err)
					continue
				}
				sidebarMon.Refresh()
				log.Println("Config reloaded successfully")

			case os.Interrupt, syscall.SIGTERM:
				log.Println("Shutting down stagedirector daemon...")
				cancel()
				ipcServer.Stop()
				os.Exit(0)
			}
		}
	}()

	log.Println("Entering event loop...")
	backend.Conn().EventLoop()
	return 0
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
