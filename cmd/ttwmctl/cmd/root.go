// Package cmd implements ttwmctl's subcommands, one per IPC command of
// spec.md §6, grounded on cwelsys-kmux's cmd package (one cobra.Command per
// daemon RPC, a shared client dialed lazily per invocation).
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/adereth/ttwm/internal/ipc"
	"github.com/adereth/ttwm/internal/layout"
)

var socketPath string

var rootCmd = &cobra.Command{
	Use:   "ttwmctl",
	Short: "Control socket client for ttwm",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	display := os.Getenv("DISPLAY")
	rootCmd.PersistentFlags().StringVar(&socketPath, "socket", ipc.SocketPath(display), "ttwm IPC socket path")

	rootCmd.AddCommand(
		simpleCmd("get-state", "get_state"),
		simpleCmd("get-layout", "get_layout"),
		simpleCmd("get-windows", "get_windows"),
		simpleCmd("get-focused", "get_focused"),
		windowCmd("focus-window", "focus_window"),
		indexCmd("focus-tab", "focus_tab"),
		argCmd("focus-frame", "focus_frame", "direction (left|right|up|down)"),
		argCmd("split", "split", "orientation (horizontal|vertical)"),
		argCmd("move-window", "move_window", "direction (left|right|up|down|forward|backward)"),
		resizeSplitCmd(),
		optionalArgCmd("cycle-tab", "cycle_tab", "forward|backward"),
		simpleCmd("close-window", "close_window"),
		optionalWindowCmd("toggle-float", "toggle_float"),
		simpleCmd("toggle-vertical-tabs", "toggle_vertical_tabs"),
		optionalWindowCmd("tag", "tag"),
		optionalWindowCmd("untag", "untag"),
		optionalWindowCmd("toggle-tag", "toggle_tag"),
		simpleCmd("move-tagged", "move_tagged"),
		simpleCmd("untag-all", "untag_all"),
		simpleCmd("tagged", "tagged"),
		simpleCmd("floating", "floating"),
		simpleCmd("urgent", "urgent"),
		simpleCmd("focus-urgent", "focus_urgent"),
		workspaceCmd(),
		simpleCmd("current-workspace", "current_workspace"),
		moveToWorkspaceCmd(),
		simpleCmd("validate-state", "validate_state"),
		eventLogCmd(),
		simpleCmd("quit", "quit"),
	)
}

func client() *ipc.Client {
	return ipc.NewClient(socketPath)
}

func printResponse(resp ipc.Response, err error) error {
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func simpleCmd(use, command string) *cobra.Command {
	return &cobra.Command{
		Use: use,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResponse(client().Call(ipc.Request{Command: command}))
		},
	}
}

func windowCmd(use, command string) *cobra.Command {
	return &cobra.Command{
		Use:  use + " <window>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handle, err := parseHandle(args[0])
			if err != nil {
				return err
			}
			return printResponse(client().Call(ipc.Request{Command: command, Window: handle}))
		},
	}
}

func optionalWindowCmd(use, command string) *cobra.Command {
	return &cobra.Command{
		Use:  use + " [window]",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var handle layout.WindowHandle
			if len(args) == 1 {
				h, err := parseHandle(args[0])
				if err != nil {
					return err
				}
				handle = h
			}
			return printResponse(client().Call(ipc.Request{Command: command, Window: handle}))
		},
	}
}

func argCmd(use, command, argDesc string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <" + argDesc + ">",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResponse(client().Call(ipc.Request{Command: command, Arg: args[0]}))
		},
	}
}

func optionalArgCmd(use, command, argDesc string) *cobra.Command {
	return &cobra.Command{
		Use:  use + " [" + argDesc + "]",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var arg string
			if len(args) == 1 {
				arg = args[0]
			}
			return printResponse(client().Call(ipc.Request{Command: command, Arg: arg}))
		},
	}
}

func indexCmd(use, command string) *cobra.Command {
	return &cobra.Command{
		Use:  use + " <index>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[0], err)
			}
			return printResponse(client().Call(ipc.Request{Command: command, Index: i}))
		},
	}
}

func resizeSplitCmd() *cobra.Command {
	var delta float64
	var hasDelta bool
	c := &cobra.Command{
		Use:  "resize-split [grow|shrink]",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := ipc.Request{Command: "resize_split"}
			if len(args) == 1 {
				req.Arg = args[0]
			}
			if hasDelta {
				req.Delta = &delta
			}
			return printResponse(client().Call(req))
		},
	}
	c.Flags().Float64Var(&delta, "delta", 0, "resize delta, overrides grow/shrink")
	c.PreRun = func(cmd *cobra.Command, args []string) {
		hasDelta = cmd.Flags().Changed("delta")
	}
	return c
}

func workspaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:  "workspace <n|next|prev>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := ipc.Request{Command: "workspace"}
			switch args[0] {
			case "next", "prev":
				req.Arg = args[0]
			default:
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid workspace %q: %w", args[0], err)
				}
				req.N = &n
			}
			return printResponse(client().Call(req))
		},
	}
}

func moveToWorkspaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:  "move-to-workspace <n> [window]",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid workspace %q: %w", args[0], err)
			}
			req := ipc.Request{Command: "move_to_workspace", N: &n}
			if len(args) == 2 {
				handle, err := parseHandle(args[1])
				if err != nil {
					return err
				}
				req.Window = handle
			}
			return printResponse(client().Call(req))
		},
	}
}

func eventLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:  "get-event-log [count]",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := ipc.Request{Command: "get_event_log"}
			if len(args) == 1 {
				count, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid count %q: %w", args[0], err)
				}
				req.Count = count
			}
			return printResponse(client().Call(req))
		},
	}
}

func parseHandle(s string) (layout.WindowHandle, error) {
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid window handle %q: %w", s, err)
	}
	return layout.WindowHandle(n), nil
}
