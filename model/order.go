package model

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// inputAlias has Input's exact field set but none of its methods, so
// decoding into it cannot recurse back into UnmarshalJSON/UnmarshalYAML.
type inputAlias Input

// UnmarshalJSON decodes Input normally, then re-walks the raw "switches"
// object with a token-by-token decoder to recover its key order:
// encoding/json discards map key order on decode into a Go map, but the
// switching-order synthesis step needs declaration order as its
// tie-break (see sequence.Synthesize).
func (in *Input) UnmarshalJSON(data []byte) error {
	var alias inputAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*in = Input(alias)

	var raw struct {
		Switches json.RawMessage `json:"switches"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Switches) > 0 {
		in.SwitchOrder = jsonObjectKeyOrder(raw.Switches)
	}
	return nil
}

// jsonObjectKeyOrder returns the top-level key order of a JSON object,
// or nil if raw is not an object.
func jsonObjectKeyOrder(raw json.RawMessage) []string {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil
	}

	var order []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil
		}
		order = append(order, key)

		var discard json.RawMessage
		if err := dec.Decode(&discard); err != nil {
			return nil
		}
	}
	return order
}

// UnmarshalYAML decodes Input normally, then reads the "switches"
// mapping node's key order directly: a yaml.Node's Content for a
// mapping preserves document order, unlike a decode straight into a Go
// map.
func (in *Input) UnmarshalYAML(node *yaml.Node) error {
	var alias inputAlias
	if err := node.Decode(&alias); err != nil {
		return err
	}
	*in = Input(alias)

	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value != "switches" {
			continue
		}
		sw := node.Content[i+1]
		order := make([]string, 0, len(sw.Content)/2)
		for j := 0; j+1 < len(sw.Content); j += 2 {
			order = append(order, sw.Content[j].Value)
		}
		in.SwitchOrder = order
		break
	}
	return nil
}
