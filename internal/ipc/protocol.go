// Package ipc implements the IPC server (spec.md C7): line-delimited JSON
// over a local Unix domain socket, serialising the command vocabulary of
// spec.md §6 against an internal/wm.WM. Grounded on cwelsys-kmux's daemon
// server/protocol packages for the request/response JSON codec, but
// reworked from its blocking goroutine-per-connection accept loop into a
// non-blocking poll the reducer's own main loop can call every iteration
// (spec.md §4.7: "the server never blocks the reducer").
package ipc

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adereth/ttwm/internal/layout"
	"github.com/adereth/ttwm/internal/trace"
)

// Request is one line of client input: {command, ...args}. Token-style
// arguments that come as either a direction word or a shorthand
// (forward/backward, grow/shrink, next/prev) all travel in Arg; numeric
// arguments use the typed fields below.
type Request struct {
	Command string              `json:"command"`
	Window  layout.WindowHandle `json:"window,omitempty"`
	Arg     string              `json:"arg,omitempty"`
	Index   int                 `json:"index,omitempty"`
	N       *int                `json:"n,omitempty"`
	Delta   *float64            `json:"delta,omitempty"`
	Count   int                 `json:"count,omitempty"`
}

// Response is one line of server output: {status, ...}. status is one of
// ok, state, validation, error (spec.md §4.7).
type Response struct {
	Status     string            `json:"status"`
	Data       any               `json:"data,omitempty"`
	Valid      *bool             `json:"valid,omitempty"`
	Violations []trace.Violation `json:"violations,omitempty"`
	Code       string            `json:"code,omitempty"`
	Error      string            `json:"error,omitempty"`
}

func okResponse() Response { return Response{Status: "ok"} }

func stateResponse(data any) Response { return Response{Status: "state", Data: data} }

func validationResponse(r trace.Result) Response {
	valid := r.Valid
	return Response{Status: "validation", Valid: &valid, Violations: r.Violations}
}

func errorResponse(code string) Response { return Response{Status: "error", Code: code} }

// SocketPath derives the deterministic socket path for a display identifier
// (spec.md §6): ":" and "." replaced with "_", under the system's
// conventional temp directory, suffixed ".sock".
func SocketPath(display string) string {
	name := strings.NewReplacer(":", "_", ".", "_").Replace(display)
	return filepath.Join(os.TempDir(), "ttwm-"+name+".sock")
}
