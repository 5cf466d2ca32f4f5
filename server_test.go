package fdk

import (
	"context"
	"io"
	"net"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fnrun/fdk-go/internal/fnconfig"
	"github.com/fnrun/fdk-go/internal/listener"
)

func TestServerEndToEndOverUnixSocket(t *testing.T) {
	dir := t.TempDir()
	sockPath := filepath.Join(dir, "fn.sock")

	t.Setenv("FN_FORMAT", "http-stream")
	t.Setenv("FN_LISTENER", "unix://"+sockPath)
	cfg := fnconfig.Load()

	ln, err := listener.Bootstrap(cfg)
	require.NoError(t, err)

	handler := HandleFunc(func(ctx *Context, name string) (string, error) {
		return "Hello " + name + "!", nil
	})
	srv := NewServer(cfg, handler)

	done := make(chan error, 1)
	go func() { done <- srv.Serve(ln) }()
	defer ln.Close()

	client := &http.Client{
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
				return net.Dial("unix", sockPath)
			},
		},
		Timeout: 5 * time.Second,
	}

	resp, err := client.Post("http://unix/", "application/json", strings.NewReader(`"alice"`))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "200", resp.Header.Get(headerHTTPStatus))
	assert.Equal(t, `"Hello alice!"`, string(body))
}

func TestBootstrapFailureSurfacesUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FN_FORMAT", "weird")
	t.Setenv("FN_LISTENER", "unix://"+filepath.Join(dir, "fn.sock"))
	cfg := fnconfig.Load()

	_, err := listener.Bootstrap(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unsupported FN_FORMAT")
}
