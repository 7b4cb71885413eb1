// Package cmd holds the ttwm root command, grounded on cwelsys-kmux's
// cmd.rootCmd/Execute pattern. Unlike kmux's daemon, ttwm never
// daemonizes: a window manager is the long-lived foreground process of an
// X session for as long as that session lasts (spec.md §5).
package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/adereth/ttwm/internal/backend/xgb"
	"github.com/adereth/ttwm/internal/config"
	"github.com/adereth/ttwm/internal/ipc"
	"github.com/adereth/ttwm/internal/render"
	"github.com/adereth/ttwm/internal/render/basicglyph"
	"github.com/adereth/ttwm/internal/trace"
	"github.com/adereth/ttwm/internal/wm"
)

// eventTraceCapacity is the fixed size of the ring buffer backing
// get_event_log and S-scenario replay (spec.md §4.8).
const eventTraceCapacity = 512

var configPath string

var rootCmd = &cobra.Command{
	Use:   "ttwm",
	Short: "A tabbed-tiling X11 window manager",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the config file (defaults to "+config.DefaultPath()+")")
}

func run() error {
	logger := log.New(os.Stderr, "ttwm: ", log.LstdFlags)

	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	backend, err := xgb.Connect(logger)
	if err != nil {
		return fmt.Errorf("connect to display: %w", err)
	}

	glyphs := basicglyph.New()
	renderer := render.New(cfg, glyphs)
	tr := trace.NewRing(eventTraceCapacity)

	m := wm.New(backend, cfg, renderer, tr, logger, nowMs)
	if err := m.Init(); err != nil {
		return fmt.Errorf("init window manager: %w", err)
	}

	display := os.Getenv("DISPLAY")
	socketPath := ipc.SocketPath(display)
	server, err := ipc.Listen(socketPath, m, logger)
	if err != nil {
		return fmt.Errorf("start ipc server: %w", err)
	}
	defer server.Close()
	logger.Printf("listening on %s", socketPath)

	return m.Run(server.Drain)
}

func nowMs() int64 { return time.Now().UnixMilli() }
