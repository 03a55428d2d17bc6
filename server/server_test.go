package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(NewServer(zap.NewNop()).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postEvaluate(t *testing.T, ts *httptest.Server, req EvaluateRequest) *http.Response {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+"/api/evaluate", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHandleEvaluate_RoyalFlushBeatsPair(t *testing.T) {
	ts := newTestServer(t)

	resp := postEvaluate(t, ts, EvaluateRequest{
		Players: []PlayerHand{
			{ID: "p1", Hole: []string{"Ah", "Kh"}},
			{ID: "p2", Hole: []string{"2d", "7c"}},
		},
		Community: []string{"Qh", "Jh", "10h", "5h", "2c"},
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result EvaluateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	require.Len(t, result.Results, 2)
	assert.Equal(t, "Royal Flush", result.Results[0].Rank)
	assert.Equal(t, []string{"A♥", "K♥", "Q♥", "J♥", "10♥"}, result.Results[0].BestFive)
	assert.Equal(t, "One Pair", result.Results[1].Rank)
	assert.Equal(t, []string{"p1"}, result.Winners)
}

func TestHandleEvaluate_InvalidCardShorthand(t *testing.T) {
	ts := newTestServer(t)

	resp := postEvaluate(t, ts, EvaluateRequest{
		Players:   []PlayerHand{{ID: "p1", Hole: []string{"Ah", "bogus"}}},
		Community: []string{"Qh", "Jh", "10h", "5h", "2c"},
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleEvaluate_DuplicateCard(t *testing.T) {
	ts := newTestServer(t)

	resp := postEvaluate(t, ts, EvaluateRequest{
		Players:   []PlayerHand{{ID: "p1", Hole: []string{"Qh", "2s"}}},
		Community: []string{"Qh", "Jh", "10h", "5h", "2c"},
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleEvaluate_NoPlayers(t *testing.T) {
	ts := newTestServer(t)

	resp := postEvaluate(t, ts, EvaluateRequest{
		Community: []string{"Qh", "Jh", "10h", "5h", "2c"},
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleEvaluate_MethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/evaluate")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestWebSocket_EvaluateRoundTrip(t *testing.T) {
	ts := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	req := EvaluateRequest{
		Players: []PlayerHand{
			{ID: "p1", Hole: []string{"Jh", "Jd"}},
			{ID: "p2", Hole: []string{"10d", "7c"}},
		},
		Community: []string{"Ah", "9c", "4h", "10h", "Qc"},
	}
	require.NoError(t, conn.WriteJSON(req))

	var result EvaluateResponse
	require.NoError(t, conn.ReadJSON(&result))

	require.Len(t, result.Results, 2)
	assert.Equal(t, "One Pair", result.Results[0].Rank)
	assert.Equal(t, "One Pair", result.Results[1].Rank)
	assert.Greater(t, result.Results[0].Score, result.Results[1].Score)
	assert.Equal(t, []string{"p1"}, result.Winners)
}

func TestWebSocket_InvalidFrame(t *testing.T) {
	ts := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))

	var reply map[string]any
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Contains(t, reply, "error")
}
