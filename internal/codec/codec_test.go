package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greeting struct {
	Name  string `form:"name"`
	Count int    `form:"count"`
}

func TestParseContentTypeKnownMIMEs(t *testing.T) {
	assert.Equal(t, JSON, ParseContentType("application/json"))
	assert.Equal(t, YAML, ParseContentType("application/yaml"))
	assert.Equal(t, XML, ParseContentType("text/xml"))
	assert.Equal(t, Plain, ParseContentType("text/plain"))
	assert.Equal(t, URLEncoded, ParseContentType("application/x-www-form-urlencoded"))
}

func TestParseContentTypeDefaultsToJSON(t *testing.T) {
	assert.Equal(t, JSON, ParseContentType(""))
	assert.Equal(t, JSON, ParseContentType("application/octet-stream"))
	assert.Equal(t, JSON, ParseContentType("whatever/unknown"))
}

func TestJSONRoundTrip(t *testing.T) {
	in := greeting{Name: "Ringo", Count: 4}

	data, err := Encode(JSON, in)
	require.NoError(t, err)

	var out greeting
	require.NoError(t, Decode(JSON, data, &out))
	assert.Equal(t, in, out)
}

func TestYAMLRoundTrip(t *testing.T) {
	in := greeting{Name: "George", Count: 2}

	data, err := Encode(YAML, in)
	require.NoError(t, err)

	var out greeting
	require.NoError(t, Decode(YAML, data, &out))
	assert.Equal(t, in, out)
}

func TestXMLRoundTrip(t *testing.T) {
	in := greeting{Name: "Paul", Count: 1}

	data, err := Encode(XML, in)
	require.NoError(t, err)

	var out greeting
	require.NoError(t, Decode(XML, data, &out))
	assert.Equal(t, in, out)
}

func TestPlainRoundTripString(t *testing.T) {
	data, err := Encode(Plain, "hello there")
	require.NoError(t, err)

	var out string
	require.NoError(t, Decode(Plain, data, &out))
	assert.Equal(t, "hello there", out)
}

func TestURLEncodedRoundTrip(t *testing.T) {
	in := greeting{Name: "John", Count: 3}

	data, err := Encode(URLEncoded, in)
	require.NoError(t, err)

	var out greeting
	require.NoError(t, Decode(URLEncoded, data, &out))
	assert.Equal(t, in, out)
}

func TestDecodePlainIntoConcreteStringTarget(t *testing.T) {
	var out string
	require.NoError(t, Decode(Plain, []byte("hi there"), &out))
	assert.Equal(t, "hi there", out)
}

func TestDecodeFormIntoInterfaceYieldsStringMap(t *testing.T) {
	var out interface{}
	require.NoError(t, Decode(URLEncoded, []byte("name=hal&count=4"), &out))

	m, ok := out.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "hal", m["name"])
	assert.Equal(t, "4", m["count"])
}

func TestDecodeXMLIntoInterfaceYieldsMap(t *testing.T) {
	var out interface{}
	require.NoError(t, Decode(XML, []byte(`<greeting><name>ivy</name><name>jo</name></greeting>`), &out))

	m, ok := out.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"ivy", "jo"}, m["name"])
}

func TestEmptyBodyJSONFails(t *testing.T) {
	var out greeting
	err := Decode(JSON, []byte{}, &out)
	assert.Error(t, err)
}

func TestEmptyBodyPlainSucceeds(t *testing.T) {
	var out string
	err := Decode(Plain, []byte{}, &out)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestDecodeUnsupportedContentType(t *testing.T) {
	err := Decode(ContentType(99), []byte("x"), nil)
	assert.ErrorIs(t, err, ErrUnsupportedContentType)
}
