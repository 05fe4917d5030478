package main

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartHTTPServer_StopsOnCancel(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, false, 1)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- ta.app.startHTTPServer(ctx, http.NotFoundHandler())
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancel")
	}
}

func TestStartHTTPServer_ReportsListenFailure(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, false, 1)
	ta.app.config.Server.Port = -1

	err := ta.app.startHTTPServer(context.Background(), http.NotFoundHandler())

	assert.Error(t, err)
}
