package hudfeed

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/sprite-quest/engine"
	"github.com/lixenwraith/sprite-quest/status"
)

type fakeSource struct {
	mu   sync.Mutex
	snap engine.HUDSnapshot
}

func (f *fakeSource) Snapshot() engine.HUDSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snap
}

func (f *fakeSource) set(fn func(s *engine.HUDSnapshot)) {
	f.mu.Lock()
	fn(&f.snap)
	f.mu.Unlock()
}

func newTestFeed(t *testing.T) (*Server, *fakeSource, *httptest.Server) {
	t.Helper()
	src := &fakeSource{snap: engine.HUDSnapshot{RunID: "run-1", HP: 80, MaxHP: 100, Mode: "playing"}}
	s := NewServer(src, status.NewRegistry(), time.Hour)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		s.Shutdown(ctx)
		ts.Close()
	})
	return s, src, ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readSnapshot(t *testing.T, conn *websocket.Conn) engine.HUDSnapshot {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	mt, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if mt != websocket.BinaryMessage {
		t.Fatalf("Expected binary frame, got %d", mt)
	}
	var snap engine.HUDSnapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	return snap
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("Condition not met before deadline")
}

func TestSnapshotEndpoint(t *testing.T) {
	_, _, ts := newTestFeed(t)

	resp, err := http.Get(ts.URL + "/hud")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != ContentType {
		t.Errorf("Expected content type %q, got %q", ContentType, ct)
	}

	body, _ := io.ReadAll(resp.Body)
	var snap engine.HUDSnapshot
	if err := msgpack.Unmarshal(body, &snap); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if snap.RunID != "run-1" || snap.HP != 80 || snap.MaxHP != 100 {
		t.Errorf("Unexpected snapshot %+v", snap)
	}
}

func TestSnapshotEndpointRejectsPost(t *testing.T) {
	_, _, ts := newTestFeed(t)

	resp, err := http.Post(ts.URL+"/hud", ContentType, nil)
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", resp.StatusCode)
	}
}

func TestWebSocketStream(t *testing.T) {
	s, src, ts := newTestFeed(t)
	conn := dial(t, ts)

	first := readSnapshot(t, conn)
	if first.HP != 80 {
		t.Errorf("Expected initial HP 80, got %d", first.HP)
	}
	waitFor(t, func() bool { return s.ClientCount() == 1 })

	src.set(func(snap *engine.HUDSnapshot) {
		snap.HP = 55
		snap.Gold = 30
	})
	s.broadcast()

	next := readSnapshot(t, conn)
	if next.HP != 55 || next.Gold != 30 {
		t.Errorf("Expected updated snapshot, got %+v", next)
	}
}

func TestShutdownClosesViewers(t *testing.T) {
	s, _, ts := newTestFeed(t)
	conn := dial(t, ts)
	readSnapshot(t, conn)
	waitFor(t, func() bool { return s.ClientCount() == 1 })

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Errorf("Expected normal close, got %v", err)
	}
	if s.ClientCount() != 0 {
		t.Errorf("Expected no viewers, got %d", s.ClientCount())
	}

	// Second shutdown is a no-op
	if err := s.Shutdown(ctx); err != nil {
		t.Errorf("Repeated shutdown failed: %v", err)
	}
}

func TestSlowViewerDropped(t *testing.T) {
	src := &fakeSource{}
	s := NewServer(src, nil, time.Hour)

	slow := &client{send: make(chan []byte, 1)}
	slow.send <- []byte("stale")
	fast := &client{send: make(chan []byte, 1)}
	s.clients[slow] = struct{}{}
	s.clients[fast] = struct{}{}

	s.broadcast()

	if s.ClientCount() != 1 {
		t.Fatalf("Expected 1 viewer left, got %d", s.ClientCount())
	}
	if _, ok := s.clients[fast]; !ok {
		t.Error("Fast viewer should stay")
	}
	if len(fast.send) != 1 {
		t.Error("Fast viewer should have received the snapshot")
	}

	<-slow.send
	if _, ok := <-slow.send; ok {
		t.Error("Slow viewer channel should be closed")
	}
}

func TestStartAndAddr(t *testing.T) {
	s := NewServer(&fakeSource{}, nil, 10*time.Millisecond)
	if s.Addr() != "" {
		t.Error("Addr should be empty before Start")
	}
	if err := s.Start("127.0.0.1:0"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer s.Shutdown(context.Background())

	resp, err := http.Get("http://" + s.Addr() + "/hud")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}
}

func TestStartRejectsBadAddress(t *testing.T) {
	s := NewServer(&fakeSource{}, nil, 0)
	if err := s.Start("not-an-address"); err == nil {
		t.Error("Expected listen error")
	}
}

func TestStatsEndpointAndViewerGauge(t *testing.T) {
	s, _, ts := newTestFeed(t)
	s.metrics.Inc(status.Attacks, 3)

	conn := dial(t, ts)
	readSnapshot(t, conn)
	waitFor(t, func() bool { return s.metrics.Int(status.HUDViewers) == 1 })

	resp, err := http.Get(ts.URL + "/stats")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	var stats map[string]int64
	if err := msgpack.Unmarshal(body, &stats); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if stats[status.Attacks] != 3 || stats[status.HUDViewers] != 1 {
		t.Errorf("Unexpected stats %v", stats)
	}

	conn.Close()
	waitFor(t, func() bool { return s.metrics.Int(status.HUDViewers) == 0 })
}

func TestStatsRouteAbsentWithoutMetrics(t *testing.T) {
	s := NewServer(&fakeSource{}, nil, time.Hour)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/stats")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", resp.StatusCode)
	}
}
