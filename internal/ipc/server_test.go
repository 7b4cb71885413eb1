package ipc

import (
	"io"
	"log"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// driveDrain repeatedly calls Drain until stop is closed, simulating the
// reducer's main loop calling it once per iteration (spec.md §4.7).
func driveDrain(s *Server, stop <-chan struct{}) {
	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.Drain()
		}
	}
}

func TestServerClient_RoundTripsOneRequest(t *testing.T) {
	sockPath := filepath.Join(t.TempDir(), "ttwm-test.sock")
	w := newTestWM()
	addTiledWindow(w, 101)

	server, err := Listen(sockPath, w, discardLogger())
	require.NoError(t, err)
	defer server.Close()

	stop := make(chan struct{})
	go driveDrain(server, stop)
	defer close(stop)

	client := NewClient(sockPath)
	resp, err := client.Call(Request{Command: "get_state"})
	require.NoError(t, err)
	assert.Equal(t, "state", resp.Status)
}

func TestServerClient_InvalidCommandReturnsErrorStatus(t *testing.T) {
	sockPath := filepath.Join(t.TempDir(), "ttwm-test2.sock")
	w := newTestWM()

	server, err := Listen(sockPath, w, discardLogger())
	require.NoError(t, err)
	defer server.Close()

	stop := make(chan struct{})
	go driveDrain(server, stop)
	defer close(stop)

	client := NewClient(sockPath)
	resp, err := client.Call(Request{Command: "bogus"})
	require.Error(t, err)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "invalid_command", resp.Code)
}

func TestServerClient_SequentialRequestsOnSeparateConnections(t *testing.T) {
	sockPath := filepath.Join(t.TempDir(), "ttwm-test3.sock")
	w := newTestWM()
	addTiledWindow(w, 101)

	server, err := Listen(sockPath, w, discardLogger())
	require.NoError(t, err)
	defer server.Close()

	stop := make(chan struct{})
	go driveDrain(server, stop)
	defer close(stop)

	client := NewClient(sockPath)

	resp, err := client.Call(Request{Command: "split", Arg: "vertical"})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)

	resp, err = client.Call(Request{Command: "get_layout"})
	require.NoError(t, err)
	assert.Equal(t, "state", resp.Status)
}
