package fdk

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/http/httpguts"

	"github.com/fnrun/fdk-go/internal/codec"
	"github.com/fnrun/fdk-go/internal/fnconfig"
)

const (
	headerIntent       = "Fn-Intent"
	headerCallID       = "Fn-Call-Id"
	headerHTTPMethod   = "Fn-Http-Method"
	headerHTTPURL      = "Fn-Http-Request-Url"
	headerContentType  = "Content-Type"
	headerAccept       = "Accept"
	headerHTTPHAccept  = "Fn-Http-H-Accept"
	httpProxyPrefix    = "Fn-Http-H-"
	intentHTTPRequest  = "httprequest"
)

// Context is the per-request value passed to a handler: a read-only view
// of process config, the filtered inbound headers, content negotiation
// results, and an accumulator for the response the handler is building.
// It is constructed fresh by the pipeline for every request and never
// shared across requests.
type Context struct {
	config *fnconfig.Config

	headers http.Header
	method  string
	uri     string

	contentType codec.ContentType
	acceptType  codec.ContentType
	callID      string

	responseHeaders http.Header
	statusCode      int
}

// newContext builds a Context from the inbound request headers, applying
// the Fn-Intent header-filter policy from the kit's header-negotiation
// rules and resolving content/accept type and call id.
func newContext(cfg *fnconfig.Config, reqHeaders http.Header) *Context {
	c := &Context{
		config:          cfg,
		headers:         filterHeaders(reqHeaders),
		method:          reqHeaders.Get(headerHTTPMethod),
		uri:             reqHeaders.Get(headerHTTPURL),
		contentType:     codec.ParseContentType(stripMIMEParams(reqHeaders.Get(headerContentType))),
		responseHeaders: http.Header{},
	}

	accept := reqHeaders.Get(headerHTTPHAccept)
	if accept == "" {
		accept = reqHeaders.Get(headerAccept)
	}
	c.acceptType = codec.ParseContentType(stripMIMEParams(accept))

	c.callID = reqHeaders.Get(headerCallID)
	if c.callID == "" {
		c.callID = uuid.NewString()
	}

	return c
}

// stripMIMEParams trims a trailing ";charset=..." / ";q=..." parameter
// list off a header value, leaving the bare MIME type ParseContentType
// expects (e.g. "text/yaml; charset=utf-8" -> "text/yaml").
func stripMIMEParams(mime string) string {
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	return strings.TrimSpace(mime)
}

func filterHeaders(src http.Header) http.Header {
	out := http.Header{}
	if strings.EqualFold(src.Get(headerIntent), intentHTTPRequest) {
		if ct := src.Values(headerContentType); len(ct) > 0 {
			out[headerContentType] = append([]string(nil), ct...)
		}
		for k, v := range src {
			if strings.HasPrefix(k, httpProxyPrefix) {
				out[k] = append([]string(nil), v...)
			}
		}
		return out
	}

	for k, v := range src {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// AppID returns the FN_APP_ID config value, or "" if unset.
func (c *Context) AppID() string { return c.config.Get(fnconfig.KeyAppID) }

// FunctionID returns the FN_FN_ID config value, or "" if unset.
func (c *Context) FunctionID() string { return c.config.Get(fnconfig.KeyFnID) }

// AppName returns the FN_APP_NAME config value, or "" if unset.
func (c *Context) AppName() string { return c.config.Get(fnconfig.KeyAppName) }

// FunctionName returns the FN_FN_NAME config value, or "" if unset.
func (c *Context) FunctionName() string { return c.config.Get(fnconfig.KeyFnName) }

// Config returns a defensive copy of the process-wide config map.
func (c *Context) Config() map[string]string { return c.config.Map() }

// ContentType returns the resolved content type of the inbound body.
func (c *Context) ContentType() codec.ContentType { return c.contentType }

// AcceptType returns the resolved content type the response should be
// encoded with.
func (c *Context) AcceptType() codec.ContentType { return c.acceptType }

// CallID returns the correlation id for this request, synthesizing one
// with a UUID when the platform did not supply an Fn-Call-Id header.
func (c *Context) CallID() string { return c.callID }

// Method returns the logical HTTP method, or "" if the platform did not
// forward one.
func (c *Context) Method() string { return c.method }

// URI returns the logical request URI, or "" if the platform did not
// forward one.
func (c *Context) URI() string { return c.uri }

// Headers returns the filtered inbound headers.
func (c *Context) Headers() http.Header { return c.headers }

// Header returns the first value of the named inbound header, or "" if
// absent.
func (c *Context) Header(name string) string { return c.headers.Get(name) }

// AddResponseHeader appends a header to the outgoing response. It is
// preserved into the final envelope unless it collides with one of the
// FDK's own sentinel headers, which always win. A key or value that is
// not a valid HTTP header field per RFC 7230 is silently dropped rather
// than corrupting the response.
func (c *Context) AddResponseHeader(key, value string) {
	if !httpguts.ValidHeaderFieldName(key) || !httpguts.ValidHeaderFieldValue(value) {
		return
	}
	c.responseHeaders.Add(key, value)
}

// SetStatusCode overrides the logical response status. It fails with an
// InvalidInput error for values outside [100, 599].
func (c *Context) SetStatusCode(code int) error {
	if code < 100 || code > 599 {
		return NewInvalidInput("status code must be in [100, 599], got " + strconv.Itoa(code))
	}
	c.statusCode = code
	return nil
}
