// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/tomtom215/cinegraph/internal/config"
	"github.com/tomtom215/cinegraph/internal/logging"
	"github.com/tomtom215/cinegraph/internal/supervisor"
)

// testServerConfig returns a loopback config on a port that was free a moment ago.
func testServerConfig(t *testing.T, shutdownTimeout time.Duration) config.ServerConfig {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("reserve port: %v", err)
	}
	port := l.Addr().(*net.TCPAddr).Port
	if err := l.Close(); err != nil {
		t.Fatalf("release port: %v", err)
	}

	return config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            port,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
		IdleTimeout:     time.Minute,
		ShutdownTimeout: shutdownTimeout,
	}
}

func waitListening(t *testing.T, addr string) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", addr, 100*time.Millisecond)
		if err == nil {
			_ = conn.Close()
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("server did not start listening on %s", addr)
}

// slowHandler answers after delay, or when release is closed if it is non-nil.
type slowHandler struct {
	delay   time.Duration
	release chan struct{}

	once    sync.Once
	started chan struct{}
}

func newSlowHandler(delay time.Duration, release chan struct{}) *slowHandler {
	return &slowHandler{delay: delay, release: release, started: make(chan struct{})}
}

func (h *slowHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	h.once.Do(func() { close(h.started) })
	if h.release != nil {
		<-h.release
	} else {
		time.Sleep(h.delay)
	}
	_, _ = w.Write([]byte(`{"data":{"movie":null}}`))
}

type clientResult struct {
	status int
	body   string
	err    error
}

func getAsync(url string) <-chan clientResult {
	out := make(chan clientResult, 1)
	go func() {
		resp, err := http.Get(url) //nolint:noctx // test request bounded by server timeouts
		if err != nil {
			out <- clientResult{err: err}
			return
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		out <- clientResult{status: resp.StatusCode, body: string(body), err: err}
	}()
	return out
}

func TestNewServer(t *testing.T) {
	cfg := config.ServerConfig{
		Host:         "127.0.0.1",
		Port:         4000,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  time.Minute,
	}
	handler := http.NewServeMux()

	server := NewServer(cfg, handler)
	if server.Addr != "127.0.0.1:4000" {
		t.Errorf("Addr = %q, want 127.0.0.1:4000", server.Addr)
	}
	if server.ReadTimeout != 5*time.Second || server.ReadHeaderTimeout != 5*time.Second {
		t.Errorf("read timeouts = %v/%v, want 5s", server.ReadTimeout, server.ReadHeaderTimeout)
	}
	if server.WriteTimeout != 30*time.Second || server.IdleTimeout != time.Minute {
		t.Errorf("write/idle = %v/%v", server.WriteTimeout, server.IdleTimeout)
	}
}

func TestNewHTTPServerService_Timeouts(t *testing.T) {
	tests := []struct {
		name    string
		timeout time.Duration
		want    time.Duration
	}{
		{"configured", 3 * time.Second, 3 * time.Second},
		{"zero falls back", 0, defaultShutdownTimeout},
		{"negative falls back", -5 * time.Second, defaultShutdownTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := NewServer(config.ServerConfig{Host: "127.0.0.1", Port: 4000}, http.NewServeMux())
			svc := NewHTTPServerService(server, tt.timeout)

			if svc.shutdownTimeout != tt.want {
				t.Errorf("shutdownTimeout = %v, want %v", svc.shutdownTimeout, tt.want)
			}
			if svc.addr != "127.0.0.1:4000" {
				t.Errorf("addr = %q, want the server address", svc.addr)
			}
			if svc.String() != "http-server" {
				t.Errorf("String() = %q, want http-server", svc.String())
			}
		})
	}
}

// Canceling the tree must let an in-flight GraphQL request complete before
// the listener goes away.
func TestHTTPServerService_DrainsInFlightRequestOnCancel(t *testing.T) {
	cfg := testServerConfig(t, 2*time.Second)
	handler := newSlowHandler(300*time.Millisecond, nil)

	treeCfg := supervisor.DefaultTreeConfig()
	treeCfg.ShutdownTimeout = 2 * cfg.ShutdownTimeout
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), treeCfg)
	if err != nil {
		t.Fatalf("NewSupervisorTree() error = %v", err)
	}
	tree.AddAPIService(NewHTTPServerService(NewServer(cfg, handler), cfg.ShutdownTimeout))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	treeErr := tree.ServeBackground(ctx)

	addr := cfg.Addr()
	waitListening(t, addr)

	result := getAsync("http://" + addr + "/graphql")

	select {
	case <-handler.started:
	case <-time.After(2 * time.Second):
		t.Fatal("request never reached the handler")
	}

	canceledAt := time.Now()
	cancel()

	select {
	case res := <-result:
		if res.err != nil {
			t.Fatalf("in-flight request failed: %v", res.err)
		}
		if res.status != http.StatusOK {
			t.Errorf("status = %d, want 200", res.status)
		}
		if res.body != `{"data":{"movie":null}}` {
			t.Errorf("body = %q", res.body)
		}
		if elapsed := time.Since(canceledAt); elapsed >= cfg.ShutdownTimeout {
			t.Errorf("request finished %v after cancel, want under %v", elapsed, cfg.ShutdownTimeout)
		}
	case <-time.After(cfg.ShutdownTimeout):
		t.Fatal("in-flight request did not finish within the shutdown timeout")
	}

	select {
	case <-treeErr:
	case <-time.After(treeCfg.ShutdownTimeout):
		t.Fatal("supervisor tree did not stop")
	}

	unstopped, err := tree.UnstoppedServiceReport()
	if err != nil {
		t.Fatalf("UnstoppedServiceReport() error = %v", err)
	}
	if len(unstopped) != 0 {
		t.Errorf("unstopped services = %+v", unstopped)
	}

	if conn, err := net.DialTimeout("tcp", addr, 100*time.Millisecond); err == nil {
		_ = conn.Close()
		t.Error("listener still accepting connections after shutdown")
	}
}

func TestHTTPServerService_ShutdownTimeoutExceeded(t *testing.T) {
	var buf bytes.Buffer
	logging.SetLogger(logging.NewTestLogger(&buf))
	defer logging.Init(logging.DefaultConfig())

	cfg := testServerConfig(t, 50*time.Millisecond)
	release := make(chan struct{})
	handler := newSlowHandler(0, release)
	svc := NewHTTPServerService(NewServer(cfg, handler), cfg.ShutdownTimeout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	waitListening(t, cfg.Addr())
	result := getAsync("http://" + cfg.Addr() + "/graphql")
	<-handler.started

	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("Serve() error = %v, want context.DeadlineExceeded", err)
		}
		if err != nil && !strings.Contains(err.Error(), "http server shutdown failed") {
			t.Errorf("Serve() error = %q, want shutdown context", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after the shutdown timeout")
	}

	close(release)
	<-result

	out := buf.String()
	for _, want := range []string{`"component":"http"`, `"service":"http-server"`, "HTTP server shutting down"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s: %s", want, out)
		}
	}
}

func TestHTTPServerService_PortInUse(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer busy.Close()

	cfg := config.ServerConfig{Host: "127.0.0.1", Port: busy.Addr().(*net.TCPAddr).Port}
	svc := NewHTTPServerService(NewServer(cfg, http.NewServeMux()), time.Second)

	done := make(chan error, 1)
	go func() { done <- svc.Serve(context.Background()) }()

	select {
	case err := <-done:
		if !errors.Is(err, syscall.EADDRINUSE) {
			t.Errorf("Serve() error = %v, want EADDRINUSE", err)
		}
		if err != nil && !strings.Contains(err.Error(), "http server failed") {
			t.Errorf("Serve() error = %q, want wrapped failure", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not fail on a busy port")
	}
}
