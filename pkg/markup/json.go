package markup

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON encodes n as {"name":..., "attributes":{...}, "children":[...]}
// keeping attribute order, which a Go map would lose.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, n *Node) error {
	name, err := json.Marshal(n.Name)
	if err != nil {
		return err
	}
	buf.WriteString(`{"name":`)
	buf.Write(name)
	if len(n.Attrs) > 0 {
		buf.WriteString(`,"attributes":{`)
		for i, a := range n.Attrs {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(a.Name)
			if err != nil {
				return err
			}
			v, err := json.Marshal(a.Value)
			if err != nil {
				return err
			}
			buf.Write(k)
			buf.WriteByte(':')
			buf.Write(v)
		}
		buf.WriteByte('}')
	}
	if len(n.Children) > 0 {
		buf.WriteString(`,"children":[`)
		for i, c := range n.Children {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, c); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	}
	buf.WriteByte('}')
	return nil
}
