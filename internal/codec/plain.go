package codec

import "fmt"

// decodePlain special-cases the two types a plain-text body can populate
// without any parsing: *string and *[]byte. Anything else is an error,
// since there is no generic way to turn raw text into an arbitrary struct.
func decodePlain(data []byte, v interface{}) error {
	switch p := v.(type) {
	case *string:
		*p = string(data)
		return nil
	case *[]byte:
		*p = append((*p)[:0], data...)
		return nil
	default:
		return fmt.Errorf("codec: plain text cannot populate %T", v)
	}
}

// encodePlain renders string and []byte values as-is and fmt.Stringer
// values via String(); unlike decodePlain it never fails, rendering any
// other value with fmt's %v formatting.
func encodePlain(v interface{}) ([]byte, error) {
	switch val := v.(type) {
	case string:
		return []byte(val), nil
	case []byte:
		return val, nil
	case fmt.Stringer:
		return []byte(val.String()), nil
	default:
		return []byte(fmt.Sprintf("%v", val)), nil
	}
}
