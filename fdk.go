package fdk

import (
	"log"

	"github.com/fnrun/fdk-go/internal/fnconfig"
	"github.com/fnrun/fdk-go/internal/listener"
)

// Handle loads the process config, bootstraps the platform listener, and
// serves handler until the process is terminated. Bootstrap failures are
// logged to stderr and exit the process non-zero; there is no recovery
// path for a container that cannot bind its advertised socket.
func Handle(handler Handler) {
	cfg := fnconfig.Load()

	ln, err := listener.Bootstrap(cfg)
	if err != nil {
		log.Fatalf("fdk: listener bootstrap failed: %v", err)
	}

	srv := NewServer(cfg, handler)
	if err := srv.Serve(ln); err != nil {
		log.Fatalf("fdk: server exited: %v", err)
	}
}
