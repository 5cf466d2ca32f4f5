package fdk

import (
	"net/http"
	"strconv"
)

// fdkVersion and fdkRuntime identify this FDK build in the sentinel
// response headers every envelope carries.
const (
	fdkVersion = "fdk-go/0.1.0"
	fdkRuntime = "go"
)

const (
	headerFdkVersion = "Fn-Fdk-Version"
	headerFdkRuntime = "Fn-Fdk-Runtime"
	headerHTTPStatus = "Fn-Http-Status"
)

// writeEnvelope assembles the platform's double-status response envelope:
// the outer HTTP status signals transport-level container health (200
// recoverable, 502 unrecoverable) while the true result status travels in
// the Fn-Http-Status header. Handler-added response headers are copied in
// first so the sentinel headers set here always win on collision.
func writeEnvelope(w http.ResponseWriter, logicalStatus int, body []byte, headers http.Header, unrecoverable bool) {
	dst := w.Header()
	for k, vs := range headers {
		for _, v := range vs {
			dst.Add(k, v)
		}
	}
	dst.Set(headerFdkVersion, fdkVersion)
	dst.Set(headerFdkRuntime, fdkRuntime)
	dst.Set(headerHTTPStatus, strconv.Itoa(logicalStatus))

	outerStatus := http.StatusOK
	if unrecoverable {
		outerStatus = http.StatusBadGateway
	}

	w.WriteHeader(outerStatus)
	if len(body) > 0 {
		w.Write(body)
	}
}

// writeErrorEnvelope converts e into a response envelope per the error
// taxonomy's mapping rules (§4.A): user errors get logical 400 (or the
// handler's own 4xx/5xx override) and outer 200; every other kind gets
// logical 500 and outer 502.
func writeErrorEnvelope(w http.ResponseWriter, e *Error, handlerStatus int, headers http.Header) {
	if !e.IsUserError() {
		writeEnvelope(w, http.StatusInternalServerError, []byte(e.Message), headers, true)
		return
	}

	status := http.StatusBadRequest
	if handlerStatus >= 400 && handlerStatus <= 599 {
		status = handlerStatus
	}
	writeEnvelope(w, status, []byte(e.Message), headers, false)
}
