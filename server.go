package fdk

import (
	"net"
	"net/http"

	"github.com/fnrun/fdk-go/internal/fnconfig"
)

// Server wires a Handler to a bootstrapped Unix listener via net/http's
// own connection loop, in place of a hand-rolled accept loop: each
// connection on the platform's per-invocation socket carries exactly one
// request, so there is no long-lived-connection multiplexing concern for
// a custom engine to solve.
type Server struct {
	httpServer *http.Server
}

// NewServer builds a Server that dispatches every request it serves
// through handler via the seven-stage pipeline.
func NewServer(cfg *fnconfig.Config, handler Handler) *Server {
	s := &Server{
		httpServer: &http.Server{
			Handler: newPipeline(cfg, handler),
		},
	}
	s.httpServer.SetKeepAlivesEnabled(false)
	return s
}

// Serve accepts connections on ln until it is closed or the process is
// terminated. There is no graceful shutdown path: the platform SIGKILLs
// containers rather than asking them to drain.
func (s *Server) Serve(ln net.Listener) error {
	return s.httpServer.Serve(ln)
}
