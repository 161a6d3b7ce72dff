package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"machikoro/internal/config"
	"machikoro/internal/engine"
	"machikoro/internal/engine/cards"
	"machikoro/internal/protocol"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	static := fstest.MapFS{
		"index.html": {Data: []byte("<h1>Machi Koro</h1>")},
	}
	cfg := config.Config{Port: 0, MinPlayers: 2, MaxPlayers: 4, LeaveGrace: -1}
	// Pumps may log after the test returns, so no zaptest here.
	srv := New(cfg, cards.NewCatalog(), engine.DefaultRules(), static, zap.NewNop())

	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(func() {
		srv.handlers.CloseAll()
		ts.Close()
	})
	return srv, ts
}

func createGame(t *testing.T, ts *httptest.Server) CreateResponse {
	t.Helper()
	resp, err := http.Post(ts.URL+"/api/create", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out CreateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func dial(t *testing.T, ts *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// readUntil reads envelopes until one of type typ arrives.
func readUntil(t *testing.T, conn *websocket.Conn, typ string) protocol.Envelope {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for {
		var env protocol.Envelope
		require.NoError(t, conn.ReadJSON(&env))
		if env.Type == typ {
			return env
		}
	}
}

func TestStaticPages(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Machi Koro")
}

func TestCreateRedirect(t *testing.T) {
	srv, ts := newTestServer(t)
	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}}

	resp, err := client.Get(ts.URL + "/api/create")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	loc := resp.Header.Get("Location")
	require.True(t, strings.HasPrefix(loc, "/tv.html?game="), loc)
	id := strings.TrimPrefix(loc, "/tv.html?game=")
	assert.NotNil(t, srv.handlers.hub(id))
	assert.NotNil(t, srv.handlers.LobbyMgr.Get(id))
}

func TestCreateJSON(t *testing.T) {
	_, ts := newTestServer(t)
	out := createGame(t, ts)

	assert.NotEmpty(t, out.GameID)
	assert.Equal(t, "/tv.html?game="+out.GameID, out.TVURL)
	assert.True(t, strings.HasSuffix(out.JoinURL, "/player.html?game="+out.GameID), out.JoinURL)
}

func TestQR(t *testing.T) {
	_, ts := newTestServer(t)
	game := createGame(t, ts)

	tests := []struct {
		query string
		code  int
	}{
		{"?game=" + game.GameID, http.StatusOK},
		{"?game=missing", http.StatusNotFound},
		{"", http.StatusBadRequest},
	}
	for _, tt := range tests {
		resp, err := http.Get(ts.URL + "/api/qr" + tt.query)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, tt.code, resp.StatusCode, tt.query)
		if tt.code == http.StatusOK {
			assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
		}
	}
}

func TestPlayerID(t *testing.T) {
	_, ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/player-id")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_, err = uuid.Parse(string(body))
	assert.NoError(t, err)
}

func TestWSUnknownGame(t *testing.T) {
	_, ts := newTestServer(t)
	for query, code := range map[string]int{"game=nope": http.StatusNotFound, "": http.StatusBadRequest} {
		resp, err := http.Get(ts.URL + "/ws?" + query)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, code, resp.StatusCode, query)
	}
}

func TestWSGame(t *testing.T) {
	srv, ts := newTestServer(t)
	game := createGame(t, ts)

	tv := dial(t, ts, "type=tv&game="+game.GameID)
	readUntil(t, tv, protocol.MsgLobbyUpdate)

	var phones []*websocket.Conn
	for _, id := range []string{"a", "b"} {
		c := dial(t, ts, "type=player&game="+game.GameID+"&player="+id)
		require.NoError(t, c.WriteJSON(protocol.MustEnvelope(protocol.MsgJoin, protocol.JoinMsg{PlayerID: id, Name: id})))
		require.NoError(t, c.WriteJSON(protocol.MustEnvelope(protocol.MsgReady, protocol.ReadyMsg{Ready: true})))
		phones = append(phones, c)
	}

	// Keep asking until both ready messages have been handled.
	var state protocol.Envelope
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		require.NoError(t, tv.WriteJSON(protocol.MustEnvelope(protocol.MsgStartGame, nil)))
		require.NoError(t, tv.SetReadDeadline(time.Now().Add(5*time.Second)))
		var env protocol.Envelope
		require.NoError(t, tv.ReadJSON(&env))
		if env.Type == protocol.MsgGameState {
			state = env
			break
		}
	}
	require.Equal(t, protocol.MsgGameState, state.Type)

	var view engine.PublicViewData
	require.NoError(t, state.Decode(&view))
	assert.Equal(t, game.GameID, view.ID)
	assert.Len(t, view.Players, 2)

	pv := readUntil(t, phones[0], protocol.MsgPlayerState)
	var mine engine.PlayerViewData
	require.NoError(t, pv.Decode(&mine))
	assert.Equal(t, "a", mine.Me)

	srv.handlers.CloseAll()
	closed := readUntil(t, tv, protocol.MsgClosed)
	var msg protocol.ClosedMsg
	require.NoError(t, closed.Decode(&msg))
	assert.Equal(t, "server shutting down", msg.Reason)
	assert.Nil(t, srv.handlers.hub(game.GameID))
}
