package report

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON flattens the header fields and the line-item block into a
// single object, keeping the scored field order stable.
func (b FieldMetricsBlock) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for _, name := range fieldOrder() {
		fm, ok := b.Fields[name]
		if !ok {
			continue
		}
		if err := writeMember(&buf, name, fm); err != nil {
			return nil, err
		}
	}
	if err := writeMember(&buf, "line_item", b.LineItem); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (b *FieldMetricsBlock) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.Fields = make(map[string]FieldMetrics, len(raw))
	for key, msg := range raw {
		if key == "line_item" {
			if err := json.Unmarshal(msg, &b.LineItem); err != nil {
				return fmt.Errorf("line_item: %w", err)
			}
			continue
		}
		var fm FieldMetrics
		if err := json.Unmarshal(msg, &fm); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		b.Fields[key] = fm
	}
	return nil
}

// MarshalJSON writes the row index followed by one member per sub-field.
func (d ItemDetail) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := writeMember(&buf, "item_index", d.ItemIndex); err != nil {
		return nil, err
	}
	for _, name := range itemFieldOrder() {
		fm, ok := d.SubFields[name]
		if !ok {
			continue
		}
		if err := writeMember(&buf, name, fm); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (d *ItemDetail) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.SubFields = make(map[string]FieldMetrics, len(raw))
	for key, msg := range raw {
		if key == "item_index" {
			if err := json.Unmarshal(msg, &d.ItemIndex); err != nil {
				return fmt.Errorf("item_index: %w", err)
			}
			continue
		}
		var fm FieldMetrics
		if err := json.Unmarshal(msg, &fm); err != nil {
			return fmt.Errorf("sub-field %q: %w", key, err)
		}
		d.SubFields[key] = fm
	}
	return nil
}

func writeMember(buf *bytes.Buffer, key string, value any) error {
	if buf.Len() > 1 {
		buf.WriteByte(',')
	}
	keyJSON, err := json.Marshal(key)
	if err != nil {
		return err
	}
	valJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(keyJSON)
	buf.WriteByte(':')
	buf.Write(valJSON)
	return nil
}
