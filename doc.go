/*
Package fdk is the core of a Function Development Kit (FDK) for the Fn
serverless platform. It bridges a platform-supplied Unix domain socket
connection to a user-provided pure handler function: it accepts
connections on a per-invocation socket, decodes incoming platform-framed
requests into user-native values by content-type negotiation, invokes the
handler under a per-request context, encodes the return value back into a
platform-framed response, and surfaces errors in a shape the platform can
classify.

It is not a general HTTP server. It serves exactly one listener, under
one socket path supplied by the environment, for the lifetime of one
function container. Routing, TLS, authentication, and multi-tenant
isolation are the platform's job, not this kit's.

Quick Start

Basic usage example:

	package main

	import "github.com/fnrun/fdk-go"

	func main() {
		fdk.Handle(fdk.HandleFunc(func(ctx *fdk.Context, name string) (string, error) {
			return "Hello " + name + "!", nil
		}))
	}

Modules

The kit is organized into the root package plus small internal packages
for concerns the pipeline needs but a handler never touches directly:

  - fdk: error taxonomy, response envelope, runtime context, request
    pipeline, server loop, public handler API
  - internal/codec: content-type dispatch over JSON, YAML, XML, plain
    text, and form-urlencoded
  - internal/listener: phony-socket-plus-symlink bootstrap over the
    advertised Unix domain socket
  - internal/bufpool: fixed-capacity buffer pool for the request body
    drain hot path
  - internal/fnconfig: frozen process-wide config snapshot
  - internal/logframe: the platform correlation log line

Response envelope

Every response carries two status codes: an outer HTTP status the
platform uses to decide whether the function instance is still usable
(200 recoverable, 502 unrecoverable), and a logical status in the
Fn-Http-Status header that the platform surfaces to the caller. A
handler's own errors and codec (decode/encode) failures always resolve to
the outer 200 case; only I/O, transport, buffer-pool exhaustion, or
bootstrap failures trip the unrecoverable path.
*/
package fdk
