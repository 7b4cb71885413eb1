package ipc

import (
	"encoding/json"
	"testing"

	"github.com/adereth/ttwm/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_RoundTripsThroughJSON(t *testing.T) {
	n := 3
	delta := 0.1
	req := Request{Command: "resize_split", Window: 7, Arg: "grow", Index: 2, N: &n, Delta: &delta, Count: 5}

	line, err := json.Marshal(req)
	require.NoError(t, err)

	var decoded Request
	require.NoError(t, json.Unmarshal(line, &decoded))
	assert.Equal(t, req.Command, decoded.Command)
	assert.Equal(t, req.Window, decoded.Window)
	assert.Equal(t, req.Arg, decoded.Arg)
	assert.Equal(t, req.Index, decoded.Index)
	require.NotNil(t, decoded.N)
	assert.Equal(t, n, *decoded.N)
	require.NotNil(t, decoded.Delta)
	assert.Equal(t, delta, *decoded.Delta)
	assert.Equal(t, req.Count, decoded.Count)
}

func TestRequest_OmitsUnsetOptionalFields(t *testing.T) {
	line, err := json.Marshal(Request{Command: "get_state"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"command":"get_state"}`, string(line))
}

func TestOkResponse_MarshalsMinimal(t *testing.T) {
	line, err := json.Marshal(okResponse())
	require.NoError(t, err)

	assert.JSONEq(t, `{"status":"ok"}`, string(line))
}

func TestStateResponse_CarriesArbitraryData(t *testing.T) {
	resp := stateResponse(map[string]int{"window_count": 2})

	line, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(line, &decoded))
	assert.Equal(t, "state", decoded["status"])
}

func TestErrorResponse_CarriesCode(t *testing.T) {
	resp := errorResponse("bad_args")

	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "bad_args", resp.Code)
}

func TestSocketPath_SanitizesDisplayName(t *testing.T) {
	path := SocketPath(":1.0")

	assert.Contains(t, path, "ttwm-_1_0.sock")
}

func TestNodeId_MarshalsAsOpaqueString(t *testing.T) {
	tree := layout.New()
	root := tree.Root()

	line, err := json.Marshal(root)
	require.NoError(t, err)
	assert.NotEqual(t, "{}", string(line))
	assert.Equal(t, `"`+root.String()+`"`, string(line))
}
