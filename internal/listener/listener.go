// Package listener implements the phony-socket-plus-symlink bootstrap
// protocol the Fn platform uses to hand a function container its inbound
// Unix domain socket. See original_source/src/socket.rs (fdk-rust's
// UDS::new) for the reference algorithm this mirrors exactly.
package listener

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/fnrun/fdk-go/internal/fnconfig"
)

const phonyMode = 0o666

// Bootstrap reads FN_FORMAT and FN_LISTENER from cfg, binds the phony
// socket, and atomically publishes it at the advertised path via a
// relative symlink. The returned listener is ready to accept connections.
func Bootstrap(cfg *fnconfig.Config) (net.Listener, error) {
	if err := checkFormat(cfg.Get("FN_FORMAT")); err != nil {
		return nil, err
	}

	target, err := resolveTarget(cfg.Get("FN_LISTENER"))
	if err != nil {
		return nil, err
	}

	phony := phonyPath(target)

	// Best-effort cleanup of any stale files from a previous run.
	os.Remove(target)
	os.Remove(phony)

	ln, err := bindPhony(phony)
	if err != nil {
		return nil, err
	}

	if err := os.Chmod(phony, phonyMode); err != nil {
		ln.Close()
		return nil, fmt.Errorf("setting permissions on %s: %w", phony, err)
	}

	if err := os.Symlink(filepath.Base(phony), target); err != nil {
		ln.Close()
		return nil, fmt.Errorf("creating symlink %s -> %s: %w", target, filepath.Base(phony), err)
	}

	return ln, nil
}

func checkFormat(format string) error {
	if format != "" && format != "http-stream" {
		return fmt.Errorf("Unsupported FN_FORMAT specified: %s", format)
	}
	return nil
}

func resolveTarget(listenerURL string) (string, error) {
	if listenerURL == "" {
		return "", fmt.Errorf("FN_LISTENER not found in env")
	}

	u, err := url.Parse(listenerURL)
	if err != nil {
		return "", fmt.Errorf("malformed FN_LISTENER specified: %s", listenerURL)
	}
	if u.Scheme != "unix" || u.Path == "" {
		return "", fmt.Errorf("malformed FN_LISTENER specified: %s", listenerURL)
	}
	return u.Path, nil
}

func phonyPath(target string) string {
	dir := filepath.Dir(target)
	return filepath.Join(dir, "phony"+filepath.Base(target))
}

// bindPhony binds the phony socket with the process umask cleared, so the
// socket file bind(2) creates starts out world-accessible for the brief
// window before Bootstrap's explicit chmod runs, rather than inheriting
// whatever restrictive umask the container happens to run under.
func bindPhony(path string) (net.Listener, error) {
	old := unix.Umask(0)
	defer unix.Umask(old)

	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("creating listener at %s: %w", path, err)
	}
	return ln, nil
}
