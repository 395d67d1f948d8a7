package control

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lixenwraith/loose-goose/engine"
	"github.com/lixenwraith/loose-goose/goose"
	"github.com/lixenwraith/loose-goose/status"
	"github.com/lixenwraith/loose-goose/vmath"
)

type fakeAudio struct {
	mu     sync.Mutex
	paused bool
	muted  bool
}

func (f *fakeAudio) Pause()  { f.mu.Lock(); f.paused = true; f.mu.Unlock() }
func (f *fakeAudio) Resume() { f.mu.Lock(); f.paused = false; f.mu.Unlock() }
func (f *fakeAudio) Paused() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.paused
}
func (f *fakeAudio) Muted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.muted
}
func (f *fakeAudio) ToggleMute() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.muted = !f.muted
	return f.muted
}

var bounds = vmath.Bounds{Width: 800, Height: 600}

// runLoop ticks eng on its own goroutine the way a host does
func runLoop(t *testing.T, eng *engine.Engine) {
	t.Helper()
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		ticker := time.NewTicker(time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				eng.Update(engine.Input{}, bounds)
			}
		}
	}()
	t.Cleanup(func() {
		close(done)
		<-stopped
	})
}

func newTestController(t *testing.T) (*Controller, *engine.Engine, *fakeAudio) {
	t.Helper()
	st := status.NewRegistry()
	eng := engine.New(engine.Options{Rand: engine.FixedRand(0.99), Status: st})
	fa := &fakeAudio{}
	c := New(eng, fa, st, zap.NewNop())
	runLoop(t, eng)
	return c, eng, fa
}

func TestSingletonSlot(t *testing.T) {
	c, _, _ := newTestController(t)
	ctx := context.Background()

	require.NoError(t, c.Exec(ctx, Op{Kind: OpSpawn}))
	assert.ErrorIs(t, c.Exec(ctx, Op{Kind: OpSpawn}), ErrAgentExists)

	require.NoError(t, c.Exec(ctx, Op{Kind: OpKill}))
	assert.ErrorIs(t, c.Exec(ctx, Op{Kind: OpKill}), ErrNoAgent)
	assert.ErrorIs(t, c.Exec(ctx, Op{Kind: OpSetState, State: goose.Dance}), ErrNoAgent)

	// slot is free again
	require.Eventually(t, func() bool { return c.Snapshot().Agent == nil }, time.Second, time.Millisecond)
	require.NoError(t, c.Exec(ctx, Op{Kind: OpSpawn}))
	assert.NotNil(t, c.Snapshot().Agent)
	t.Logf("✓ one agent at a time")
}

func TestSetStateAndHat(t *testing.T) {
	c, _, _ := newTestController(t)
	ctx := context.Background()
	require.NoError(t, c.Exec(ctx, Op{Kind: OpSpawn}))

	require.NoError(t, c.Exec(ctx, Op{Kind: OpSetState, State: goose.Dance}))
	require.Eventually(t, func() bool {
		a := c.Snapshot().Agent
		return a != nil && a.State == "dance"
	}, time.Second, time.Millisecond)

	assert.ErrorIs(t, c.Exec(ctx, Op{Kind: OpSetState, State: goose.Kind(99)}), goose.ErrUnknownState)
	require.NoError(t, c.Exec(ctx, Op{Kind: OpSetHat, Hat: goose.HatWizard}))
	assert.ErrorIs(t, c.Exec(ctx, Op{Kind: OpSetHat, Hat: goose.HatType(77)}), goose.ErrUnknownHat)
}

func TestExecHonoursContext(t *testing.T) {
	eng := engine.New(engine.Options{})
	c := New(eng, nil, nil, nil)
	// no loop running: the command is queued but never applied
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.Exec(ctx, Op{Kind: OpSpawn}), context.DeadlineExceeded)
}

func TestPostQueueFull(t *testing.T) {
	eng := engine.New(engine.Options{})
	c := New(eng, nil, nil, nil)
	var err error
	for i := 0; i < cap(c.queue)+1; i++ {
		err = c.Post(Op{Kind: OpToggleDebug})
	}
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestPostAppliesNextTick(t *testing.T) {
	eng := engine.New(engine.Options{Rand: engine.FixedRand(0.99)})
	c := New(eng, nil, nil, nil)
	require.NoError(t, c.Post(Op{Kind: OpSpawn}))
	assert.Nil(t, c.Snapshot().Agent)

	eng.Update(engine.Input{}, bounds)
	require.NotNil(t, c.Snapshot().Agent)
	assert.Equal(t, "wander", c.Snapshot().Agent.State)
	assert.Greater(t, eng.Registry().Live(), 0)
}

func do(t *testing.T, ts *httptest.Server, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, ts.URL+path, rd)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func TestAPI(t *testing.T) {
	c, _, fa := newTestController(t)
	ts := httptest.NewServer(NewAPI(c, nil, nil).Router())
	defer ts.Close()

	resp, body := do(t, ts, "GET", "/api/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])

	resp, _ = do(t, ts, "DELETE", "/api/goose", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = do(t, ts, "POST", "/api/goose", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	agent, ok := body["agent"].(map[string]any)
	require.True(t, ok, "snapshot carries the agent: %v", body)
	assert.NotEmpty(t, agent["id"])

	resp, _ = do(t, ts, "POST", "/api/goose", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = do(t, ts, "PUT", "/api/goose/state", map[string]string{"state": "swim"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = do(t, ts, "PUT", "/api/goose/state", map[string]string{"state": "moonwalk"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, ts, "PUT", "/api/goose/hat", map[string]any{"hat": 3})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = do(t, ts, "PUT", "/api/goose/hat", map[string]any{"hat": "crown"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = do(t, ts, "PUT", "/api/goose/hat", map[string]any{"hat": 15})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = do(t, ts, "POST", "/api/engine/pause", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["paused"])
	assert.True(t, fa.Paused())
	resp, body = do(t, ts, "POST", "/api/engine/resume", nil)
	assert.Equal(t, false, body["paused"])

	_, body = do(t, ts, "POST", "/api/audio/mute", nil)
	assert.Equal(t, true, body["muted"])

	resp, body = do(t, ts, "GET", "/api/status", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	metrics, ok := body["metrics"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, metrics, "engine.ticks")
	assert.Contains(t, metrics, "goose.state")

	resp, _ = do(t, ts, "DELETE", "/api/goose", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCORSPreflight(t *testing.T) {
	c, _, _ := newTestController(t)
	ts := httptest.NewServer(NewAPI(c, []string{"http://popup.local"}, nil).Router())
	defer ts.Close()

	req, _ := http.NewRequest("OPTIONS", ts.URL+"/api/goose", nil)
	req.Header.Set("Origin", "http://popup.local")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "http://popup.local", resp.Header.Get("Access-Control-Allow-Origin"))
}
