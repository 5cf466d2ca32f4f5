package codec

import "encoding/json"

func decodeJSON(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func encodeJSON(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}
