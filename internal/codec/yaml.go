package codec

import "gopkg.in/yaml.v3"

func decodeYAML(data []byte, v interface{}) error {
	if len(data) == 0 {
		return nil
	}
	return yaml.Unmarshal(data, v)
}

func encodeYAML(v interface{}) ([]byte, error) {
	return yaml.Marshal(v)
}
