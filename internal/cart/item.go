package cart

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidID = errors.New("item id must be a number or a string")

// ItemID identifies an item. Numeric and string ids never compare equal,
// even when they print the same.
type ItemID struct {
	value   string
	numeric bool
}

func IntID(n int64) ItemID {
	return ItemID{value: strconv.FormatInt(n, 10), numeric: true}
}

func StringID(s string) ItemID {
	return ItemID{value: s}
}

// ParseID reads an id typed by a user: integers become numeric ids,
// anything else a string id.
func ParseID(s string) ItemID {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return IntID(n)
	}
	return StringID(s)
}

func (id ItemID) String() string {
	return id.value
}

func (id ItemID) IsNumeric() bool {
	return id.numeric
}

func (id ItemID) IsZero() bool {
	return id == ItemID{}
}

func (id ItemID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.value), nil
	}
	return json.Marshal(id.value)
}

func (id *ItemID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrInvalidID
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = StringID(s)
		return nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		parsed, err := numericID(string(data))
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	default:
		return fmt.Errorf("%w: got %s", ErrInvalidID, data)
	}
}

func (id ItemID) MarshalYAML() (any, error) {
	if id.numeric {
		n, err := strconv.ParseInt(id.value, 10, 64)
		if err != nil {
			f, _ := strconv.ParseFloat(id.value, 64)
			return f, nil
		}
		return n, nil
	}
	return id.value, nil
}

func (id *ItemID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d", ErrInvalidID, node.Line)
	}
	switch node.ShortTag() {
	case "!!int", "!!float":
		parsed, err := numericID(node.Value)
		if err != nil {
			return err
		}
		*id = parsed
	case "!!str":
		*id = StringID(node.Value)
	default:
		return fmt.Errorf("%w: line %d", ErrInvalidID, node.Line)
	}
	return nil
}

// numericID canonicalises a JSON or YAML number so that 1, 1.0 and 1e0
// name the same item.
func numericID(raw string) (ItemID, error) {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return IntID(n), nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return ItemID{}, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	if f == float64(int64(f)) {
		return IntID(int64(f)), nil
	}
	return ItemID{value: strconv.FormatFloat(f, 'f', -1, 64), numeric: true}, nil
}

type Item struct {
	ID          ItemID  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Image       string  `json:"image" yaml:"image"`
	Price       float64 `json:"price" yaml:"price"`
	Description string  `json:"description" yaml:"description"`
}
