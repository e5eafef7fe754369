package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/soar/ControllerMapDB/internal/config"
	"github.com/soar/ControllerMapDB/internal/console"
	"github.com/soar/ControllerMapDB/internal/db"
	"github.com/soar/ControllerMapDB/internal/gamepad"
	"github.com/soar/ControllerMapDB/internal/hub"
	"github.com/soar/ControllerMapDB/internal/reader"
	"github.com/soar/ControllerMapDB/internal/server"
	"github.com/soar/ControllerMapDB/internal/tray"
)

// Cross-platform signal handling: use os.Interrupt on all platforms
// On Windows: os.Interrupt is sent when Ctrl+C is pressed
// On Unix: os.Interrupt is equivalent to syscall.SIGINT
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Create cancellable context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, shutdownSignals...)

	// Windows console Ctrl+C handling survives SDL's LockOSThread loop
	consoleShutdown := make(chan struct{})
	reregisterHandler := console.SetupConsoleHandler(consoleShutdown)

	// Load the mapping database
	database := db.New(cfg.Databases, cfg.Platform)
	if err := database.Load(); err != nil {
		log.Fatalf("Failed to load mapping database: %v", err)
	}

	// Create and start hub
	h := hub.NewHub()
	go h.Run()

	// Create gamepad reader resolving devices against the database
	var rd *reader.Reader
	readerDone := make(chan struct{})
	if cfg.NoReader {
		close(readerDone)
	} else {
		rd = reader.NewReader(database)
	}

	var changes <-chan gamepad.GamepadState
	var stateSrc server.StateSource
	if rd != nil {
		changes = rd.Changes()
		stateSrc = rd
	}
	broadcaster := hub.NewBroadcaster(h, changes)
	go broadcaster.Run()

	// Reload database files when they change on disk
	if cfg.Watch {
		go func() {
			err := database.Watch(ctx, func() {
				if rd != nil {
					rd.RefreshProfiles()
				}
				broadcaster.NotifyDBReloaded(database.Len())
			})
			if err != nil {
				log.Printf("Database watch disabled: %v", err)
			}
		}()
	}

	// Create and start HTTP server
	frontendFS := frontendAssets()
	srv := server.New(h, broadcaster, stateSrc, database, frontendFS, cfg.Addr)
	serverErrCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		}
	}()

	log.Printf("ControllerMapDB started: %d mappings, listening on %s", database.Len(), cfg.Addr)

	// Channel for tray-triggered shutdown
	shutdownRequested := make(chan struct{})

	// Initialize system tray on Windows only
	if runtime.GOOS == "windows" && !cfg.NoTray {
		go func() {
			t := tray.New(cfg.Addr, func() {
				close(shutdownRequested)
			})
			t.Run(tray.GetIcon())
		}()
	} else {
		log.Println("Press Ctrl+C to exit")
	}

	// Run reader in goroutine; SDL requires LockOSThread inside Run
	if rd != nil {
		go func() {
			rd.Run(ctx)
			close(readerDone)
		}()
		// SDL init replaces console handlers on Windows
		reregisterHandler()
	}

	// Wait for shutdown signal, tray request, or server error
	select {
	case <-sigCh:
		log.Println("Shutting down...")
		cancel()
	case <-consoleShutdown:
		log.Println("Shutting down...")
		cancel()
	case <-shutdownRequested:
		log.Println("Shutdown requested from tray")
		cancel()
	case err := <-serverErrCh:
		log.Printf("HTTP server error: %v", err)
		cancel()
	}

	// Wait for reader to finish
	<-readerDone

	// Shutdown the HTTP server gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("ControllerMapDB stopped")
}
