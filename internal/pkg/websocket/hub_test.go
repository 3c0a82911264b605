package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/studentroster/internal/app/models"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(zerolog.Nop())
	go hub.Run()
	t.Cleanup(hub.Stop)
	return hub
}

func fakeClient(hub *Hub, buffer int) *Client {
	return &Client{hub: hub, send: make(chan []byte, buffer), addr: "test", logger: zerolog.Nop()}
}

func TestHub_PublishReachesClients(t *testing.T) {
	hub := startHub(t)
	a, b := fakeClient(hub, 4), fakeClient(hub, 4)
	require.True(t, hub.subscribe(a))
	require.True(t, hub.subscribe(b))
	assert.Equal(t, 2, hub.ClientsCount())

	reason := "Repeated absence"
	hub.Publish(models.Event{Type: models.EventStudentSuspended, StudentID: 4, Reason: &reason})

	for _, client := range []*Client{a, b} {
		select {
		case data := <-client.send:
			var event models.Event
			require.NoError(t, json.Unmarshal(data, &event))
			assert.Equal(t, models.EventStudentSuspended, event.Type)
			assert.Equal(t, int64(4), event.StudentID)
			require.NotNil(t, event.Reason)
			assert.Equal(t, reason, *event.Reason)
		case <-time.After(time.Second):
			t.Fatal("event not delivered")
		}
	}
}

func TestHub_DropsSlowClient(t *testing.T) {
	hub := startHub(t)
	slow := fakeClient(hub, 1)
	require.True(t, hub.subscribe(slow))

	hub.Publish(models.Event{Type: models.EventStudentSuspended, StudentID: 1})
	hub.Publish(models.Event{Type: models.EventStudentUnsuspended, StudentID: 1})

	assert.Eventually(t, func() bool { return hub.ClientsCount() == 0 }, time.Second, 10*time.Millisecond)

	// The buffered event is still readable, then the channel is closed
	_, ok := <-slow.send
	assert.True(t, ok)
	_, ok = <-slow.send
	assert.False(t, ok)
}

func TestHub_UnsubscribeAndStop(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	go hub.Run()

	client := fakeClient(hub, 1)
	require.True(t, hub.subscribe(client))
	hub.unsubscribe(client)
	assert.Eventually(t, func() bool { return hub.ClientsCount() == 0 }, time.Second, 10*time.Millisecond)

	other := fakeClient(hub, 1)
	require.True(t, hub.subscribe(other))

	hub.Stop()
	hub.Stop()

	_, ok := <-other.send
	assert.False(t, ok, "stop closes client channels")
	assert.False(t, hub.subscribe(fakeClient(hub, 1)))
	hub.unsubscribe(other)

	// Publishing after stop must not block
	done := make(chan struct{})
	go func() {
		hub.Publish(models.Event{Type: models.EventStudentSuspended, StudentID: 2})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked after stop")
	}
}

func TestHandler_StreamsEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := startHub(t)

	router := gin.New()
	router.GET("/api/students/events", NewHandler(hub, []string{"*"}, zerolog.Nop()).HandleConnection)
	server := httptest.NewServer(router)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/students/events"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	require.Eventually(t, func() bool { return hub.ClientsCount() == 1 }, time.Second, 10*time.Millisecond)
	hub.Publish(models.Event{Type: models.EventStudentUnsuspended, StudentID: 2, Timestamp: time.Now().UTC()})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var event models.Event
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, models.EventStudentUnsuspended, event.Type)
	assert.Equal(t, int64(2), event.StudentID)
	assert.Nil(t, event.Reason)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	assert.Eventually(t, func() bool { return hub.ClientsCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHandler_RejectsPlainRequestsAndForeignOrigins(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := startHub(t)

	router := gin.New()
	router.GET("/api/students/events", NewHandler(hub, []string{"http://localhost:5000"}, zerolog.Nop()).HandleConnection)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/students/events", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)

	server := httptest.NewServer(router)
	defer server.Close()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/students/events"

	header := http.Header{"Origin": []string{"http://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	header = http.Header{"Origin": []string{"http://localhost:5000"}}
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	conn.Close()
}
