package codec

import (
	"encoding/xml"
	"strings"
)

// No ecosystem XML codec appears anywhere in the retrieval pack; encoding/xml
// is the only grounded choice here (see DESIGN.md).

// xmlNode is a generic element tree encoding/xml can decode anything into,
// used to give untyped handlers (Handler/HandlerFunc, decoding into
// *interface{}) a usable generic value; a bare
// xml.Unmarshal(data, new(interface{})) skips the document and leaves the
// target nil.
type xmlNode struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Content string     `xml:",chardata"`
	Nodes   []xmlNode  `xml:",any"`
}

func decodeXML(data []byte, v interface{}) error {
	if len(data) == 0 {
		return nil
	}

	if p, ok := v.(*interface{}); ok {
		var node xmlNode
		if err := xml.Unmarshal(data, &node); err != nil {
			return err
		}
		*p = xmlNodeToValue(node)
		return nil
	}

	return xml.Unmarshal(data, v)
}

// xmlNodeToValue collapses a node into a map keyed by child element name
// (repeated children become a slice), falling back to its trimmed
// character data for leaf elements.
func xmlNodeToValue(n xmlNode) interface{} {
	if len(n.Nodes) == 0 && len(n.Attrs) == 0 {
		return strings.TrimSpace(n.Content)
	}

	m := make(map[string]interface{}, len(n.Attrs)+len(n.Nodes))
	for _, a := range n.Attrs {
		m["@"+a.Name.Local] = a.Value
	}
	for _, child := range n.Nodes {
		childValue := xmlNodeToValue(child)
		if existing, ok := m[child.XMLName.Local]; ok {
			if list, ok := existing.([]interface{}); ok {
				m[child.XMLName.Local] = append(list, childValue)
			} else {
				m[child.XMLName.Local] = []interface{}{existing, childValue}
			}
			continue
		}
		m[child.XMLName.Local] = childValue
	}
	return m
}

func encodeXML(v interface{}) ([]byte, error) {
	return xml.Marshal(v)
}
