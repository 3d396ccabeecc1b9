package websocket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	gws "github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/grantsphere/internal/app/models/dto"
	"github.com/yigit/grantsphere/internal/app/repositories"
	"github.com/yigit/grantsphere/internal/app/services"
	"github.com/yigit/grantsphere/internal/seed"
)

type wsFixture struct {
	hub    *Hub
	browse services.BrowseService
	server *httptest.Server
}

func newFixture(t *testing.T) *wsFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	records, err := seed.LoadScholarships("", zerolog.Nop())
	require.NoError(t, err)
	repo, err := repositories.NewScholarshipRepository(records)
	require.NoError(t, err)
	catalogService := services.NewScholarshipService(repo, services.ScholarshipServiceConfig{}, zerolog.Nop())

	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	browse := services.NewBrowseService(catalogService, services.BrowseServiceConfig{}, hub, zerolog.Nop())

	router := gin.New()
	router.GET("/sessions/:id/ws", NewHandler(hub, browse, zerolog.Nop()).HandleConnection)
	server := httptest.NewServer(router)

	t.Cleanup(func() {
		server.Close()
		cancel()
	})
	return &wsFixture{hub: hub, browse: browse, server: server}
}

func (f *wsFixture) dial(t *testing.T, sessionID string) *gws.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/sessions/" + sessionID + "/ws"
	conn, resp, err := gws.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })

	require.Eventually(t, func() bool {
		return f.hub.GetClientsCount(sessionID) > 0
	}, time.Second, 5*time.Millisecond)
	return conn
}

func readMessage(t *testing.T, conn *gws.Conn) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func rowIDs(rows []dto.ScholarshipRow) []int64 {
	out := make([]int64, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func TestWebSocketStreamsSessionState(t *testing.T) {
	f := newFixture(t)
	state, err := f.browse.Create(context.Background())
	require.NoError(t, err)

	conn := f.dial(t, state.SessionID)

	first := readMessage(t, conn)
	assert.Equal(t, MessageTypeState, first.Type)
	require.NotNil(t, first.State)
	assert.Equal(t, 13, first.State.Total)

	require.NoError(t, conn.WriteJSON(dto.CommandRequest{
		Kind:     string(services.CommandToggleFilter),
		Category: "educationLevel",
		Value:    "Аспирантура",
		Checked:  true,
	}))
	next := readMessage(t, conn)
	assert.Equal(t, MessageTypeState, next.Type)
	require.NotNil(t, next.State)
	assert.Equal(t, []int64{4, 8, 12}, rowIDs(next.State.Items))
	assert.Equal(t, uint64(1), next.State.Version)

	// Changes made through the REST side reach subscribers too
	_, err = f.browse.Dispatch(context.Background(), state.SessionID,
		services.Command{Kind: services.CommandSelect, ID: 8})
	require.NoError(t, err)
	pushed := readMessage(t, conn)
	require.NotNil(t, pushed.State.Selected)
	assert.Equal(t, int64(8), pushed.State.Selected.ID)
}

func TestWebSocketReportsCommandErrors(t *testing.T) {
	f := newFixture(t)
	state, err := f.browse.Create(context.Background())
	require.NoError(t, err)

	conn := f.dial(t, state.SessionID)
	readMessage(t, conn)

	require.NoError(t, conn.WriteMessage(gws.TextMessage, []byte("{not json")))
	msg := readMessage(t, conn)
	assert.Equal(t, MessageTypeError, msg.Type)
	require.NotNil(t, msg.Error)
	assert.Equal(t, dto.ErrorCodeValidationFailed, msg.Error.Code)

	require.NoError(t, conn.WriteJSON(dto.CommandRequest{Kind: "teleport"}))
	msg = readMessage(t, conn)
	assert.Equal(t, MessageTypeError, msg.Type)
	assert.Equal(t, dto.ErrorCodeUnsupportedInput, msg.Error.Code)

	require.NoError(t, conn.WriteJSON(dto.CommandRequest{Kind: string(services.CommandSelect), ID: 999}))
	msg = readMessage(t, conn)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, msg.Error.Code)
}

func TestWebSocketClosedWithSession(t *testing.T) {
	f := newFixture(t)
	state, err := f.browse.Create(context.Background())
	require.NoError(t, err)

	conn := f.dial(t, state.SessionID)
	readMessage(t, conn)

	require.NoError(t, f.browse.Delete(context.Background(), state.SessionID))
	msg := readMessage(t, conn)
	assert.Equal(t, MessageTypeClosed, msg.Type)
	assert.Equal(t, state.SessionID, msg.SessionID)

	require.Eventually(t, func() bool {
		return f.hub.GetClientsCount(state.SessionID) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestWebSocketUnknownSession(t *testing.T) {
	f := newFixture(t)

	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/sessions/missing/ws"
	_, resp, err := gws.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHubPublishWithoutSubscribersIsNoop(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	// Nothing is running; these must return without blocking
	hub.Publish("s", &dto.BrowseState{})
	hub.CloseSession("s")
	assert.Equal(t, 0, hub.GetClientsCount("s"))
}
