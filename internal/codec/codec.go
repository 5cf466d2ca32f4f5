// Package codec implements the content-type dispatch table the request
// pipeline uses to decode inbound bodies into a handler's input type and
// encode a handler's output back onto the wire.
//
// Modeled on the teacher's core/rpc/codec package (codec.go's
// GetCodec(CodecType) dispatch over a byte enum), but dispatching on the
// five MIME families this kit supports instead of JSON/MsgPack/Protobuf.
package codec

import (
	"errors"
	"strings"
)

// ContentType identifies one of the wire formats the codec layer supports.
type ContentType byte

const (
	JSON ContentType = iota
	YAML
	XML
	Plain
	URLEncoded
)

// ErrUnsupportedContentType is returned by Encode/Decode for a ContentType
// value outside the enum above; in practice this cannot happen since
// ParseContentType always returns a valid member.
var ErrUnsupportedContentType = errors.New("codec: unsupported content type")

// ParseContentType maps a MIME type (the value of a Content-Type or Accept
// header, with any ";charset=..." parameter already stripped by the caller)
// to a ContentType. Unknown or empty values default to JSON, matching the
// kit's "be liberal in what you accept, default to the common case" rule.
func ParseContentType(mime string) ContentType {
	mime = strings.ToLower(strings.TrimSpace(mime))
	switch {
	case mime == "" || mime == "application/json" || strings.HasSuffix(mime, "+json"):
		return JSON
	case mime == "application/yaml" || mime == "text/yaml" || strings.HasSuffix(mime, "+yaml"):
		return YAML
	case mime == "application/xml" || mime == "text/xml" || strings.HasSuffix(mime, "+xml"):
		return XML
	case mime == "text/plain":
		return Plain
	case mime == "application/x-www-form-urlencoded":
		return URLEncoded
	default:
		return JSON
	}
}

// String returns the canonical MIME type for t, suitable for a Content-Type
// header on an encoded response.
func (t ContentType) String() string {
	switch t {
	case JSON:
		return "application/json"
	case YAML:
		return "text/yaml"
	case XML:
		return "application/xml"
	case Plain:
		return "text/plain"
	case URLEncoded:
		return "application/x-www-form-urlencoded"
	default:
		return "application/json"
	}
}

// Decoder decodes data into v according to a ContentType's wire format.
type Decoder func(data []byte, v interface{}) error

// Encoder encodes v into data according to a ContentType's wire format.
type Encoder func(v interface{}) ([]byte, error)

var decoders = map[ContentType]Decoder{
	JSON:       decodeJSON,
	YAML:       decodeYAML,
	XML:        decodeXML,
	Plain:      decodePlain,
	URLEncoded: decodeForm,
}

var encoders = map[ContentType]Encoder{
	JSON:       encodeJSON,
	YAML:       encodeYAML,
	XML:        encodeXML,
	Plain:      encodePlain,
	URLEncoded: encodeForm,
}

// Decode decodes data into v using the codec registered for t.
func Decode(t ContentType, data []byte, v interface{}) error {
	dec, ok := decoders[t]
	if !ok {
		return ErrUnsupportedContentType
	}
	return dec(data, v)
}

// Encode encodes v using the codec registered for t.
func Encode(t ContentType, v interface{}) ([]byte, error) {
	enc, ok := encoders[t]
	if !ok {
		return nil, ErrUnsupportedContentType
	}
	return enc(v)
}
