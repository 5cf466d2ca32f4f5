package fdk

import (
	"io"
	"net/http"
	"os"

	"github.com/fnrun/fdk-go/internal/bufpool"
	"github.com/fnrun/fdk-go/internal/codec"
	"github.com/fnrun/fdk-go/internal/fnconfig"
	"github.com/fnrun/fdk-go/internal/logframe"
)

const (
	envLogframeName = "FN_LOGFRAME_NAME"
	envLogframeHdr  = "FN_LOGFRAME_HDR"
)

// pipeline is the seven-stage per-request state machine: Receive, Acquire,
// Drain, Decode, Invoke, Encode, Emit. Every request that reaches
// ServeHTTP produces exactly one response, even on catastrophic decode
// failure; there is no retry at any stage.
type pipeline struct {
	cfg     *fnconfig.Config
	handler Handler
	pool    *bufpool.Pool
}

func newPipeline(cfg *fnconfig.Config, handler Handler) *pipeline {
	return &pipeline{cfg: cfg, handler: handler, pool: bufpool.Global()}
}

func (p *pipeline) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// 1. Receive
	ctx := newContext(p.cfg, r.Header)
	logframe.Emit(os.Stdout, os.Stderr, p.cfg.Get(envLogframeName), r.Header.Get(p.cfg.Get(envLogframeHdr)))

	// 2. Acquire
	buf, ok := p.pool.TryAcquire()
	if !ok {
		writeErrorEnvelope(w, NewOther("buffer pool exhausted"), ctx.statusCode, ctx.responseHeaders)
		return
	}
	defer p.pool.Release(buf)

	// 3. Drain
	if _, err := io.Copy(buf, r.Body); err != nil {
		writeErrorEnvelope(w, NewIO(err), ctx.statusCode, ctx.responseHeaders)
		return
	}

	// 4. Decode
	target, typed := p.decodeTarget(ctx.contentType)
	if err := codec.Decode(ctx.contentType, buf.Bytes(), target); err != nil {
		writeErrorEnvelope(w, NewCoercion(err), ctx.statusCode, ctx.responseHeaders)
		return
	}

	input := target
	if !typed {
		input = dereferenceUntyped(target)
	}

	// 5. Invoke
	result, err := p.handler.Handle(ctx, input)
	if err != nil {
		writeErrorEnvelope(w, asHandlerError(err), ctx.statusCode, ctx.responseHeaders)
		return
	}

	// 6. Encode
	body, err := codec.Encode(ctx.acceptType, result)
	if err != nil {
		writeErrorEnvelope(w, NewCoercion(err), ctx.statusCode, ctx.responseHeaders)
		return
	}

	// 7. Emit
	ctx.responseHeaders.Set(headerContentType, ctx.acceptType.String())
	status := http.StatusOK
	if ctx.statusCode != 0 {
		status = ctx.statusCode
	}
	writeEnvelope(w, status, body, ctx.responseHeaders, false)
}

// decodeTarget returns the pointer the codec layer should decode into,
// and whether it is concretely typed. Handlers built with HandleFunc ask
// for a fresh *T; plain Handler/HandlerFunc values get a *string for
// Plain, since decodePlain cannot populate an interface{}, and a
// *interface{} for every other content type: JSON and YAML fill it
// natively, and codec.decodeXML/decodeForm fill it with map-shaped
// fallbacks.
func (p *pipeline) decodeTarget(ct codec.ContentType) (interface{}, bool) {
	if th, ok := p.handler.(typedHandler); ok {
		return th.newInput(), true
	}
	if ct == codec.Plain {
		return new(string), false
	}
	return new(interface{}), false
}

// dereferenceUntyped unwraps the pointer produced by decodeTarget for the
// untyped path back into the plain value a Handler/HandlerFunc expects.
func dereferenceUntyped(target interface{}) interface{} {
	switch t := target.(type) {
	case *string:
		return *t
	case *interface{}:
		return *t
	default:
		return target
	}
}
