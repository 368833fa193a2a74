package locale

import (
	"encoding/json"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/spkg/bom"

	"github.com/teranos/i18ntypes/errors"
)

// Parse reads one translation document, preserving key order.
//
// The document must be a JSON object. A duplicated key keeps the position of
// its first occurrence and the value of its last one. Invalid UTF-8 in a key
// is replaced with U+FFFD. Errors are marked with errors.ErrParse.
func Parse(data []byte) (*Node, error) {
	data = bom.Clean(data)

	// jsonparser does not validate, so reject malformed input up front
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Parse(err, "invalid JSON")
	}

	value, dataType, _, err := jsonparser.Get(raw)
	if err != nil {
		return nil, errors.Parse(err, "invalid JSON")
	}
	if dataType != jsonparser.Object {
		return nil, errors.Mark(
			errors.Newf("top-level value must be an object, got %s", dataType),
			errors.ErrParse,
		)
	}

	return parseObject(value)
}

func parseObject(data []byte) (*Node, error) {
	node := NewObject()
	positions := make(map[string]int)

	err := jsonparser.ObjectEach(data, func(key []byte, value []byte, dataType jsonparser.ValueType, _ int) error {
		child := NewLeaf(dataType)
		if dataType == jsonparser.Object {
			var err error
			if child, err = parseObject(value); err != nil {
				return err
			}
		}

		// Declarations are emitted as UTF-8
		k := strings.ToValidUTF8(string(key), "\uFFFD")
		if i, seen := positions[k]; seen {
			node.Fields[i].Value = child
			return nil
		}
		positions[k] = len(node.Fields)
		node.Fields = append(node.Fields, Field{Key: k, Value: child})
		return nil
	})
	if err != nil {
		return nil, errors.Parse(err, "failed to walk JSON object")
	}

	return node, nil
}
