// Package extract reads known fields out of decoded service responses.
package extract

import (
	"fmt"
	"regexp"

	"github.com/mitchellh/mapstructure"
)

// Extractor looks values up by key paths like "template:roles" and decodes
// response sub-trees into structs.
type Extractor struct {
	keyReg *regexp.Regexp
}

// New ...
func New() (e *Extractor, err error) {
	e = &Extractor{}
	e.keyReg, err = regexp.Compile(keyRegexp)
	return
}

// Value returns the value of payload at path.
func (e *Extractor) Value(payload interface{}, path string) (value interface{}, err error) {
	value = payload
	for _, key := range e.keyReg.FindAllString(path, -1) {
		m, ok := value.(map[string]interface{})
		if !ok {
			err = fmt.Errorf("%w: %s (%s is %v)", ErrMissingField, path, key, errNotMapping)
			return
		}
		if value, ok = m[key]; !ok || value == nil {
			err = fmt.Errorf("%w: %s", ErrMissingField, path)
			return
		}
	}
	return
}

// String returns the non-empty string at path.
// Text of an element carrying attributes is read from its "#text" key.
func (e *Extractor) String(payload interface{}, path string) (string, error) {
	value, err := e.Value(payload, path)
	if err != nil {
		return "", err
	}
	if m, isMap := value.(map[string]interface{}); isMap {
		value = m[textKey]
	}
	s, ok := value.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%w: %s is not a non-empty string", ErrMissingField, path)
	}
	return s, nil
}

// Collection returns the items of the collection at path.
// Both {item: [..]} / {item: {..}} and [{item: {..}}, ..] shapes are accepted,
// items wrapped under the item key are unwrapped.
func (e *Extractor) Collection(payload interface{}, path, item string) ([]interface{}, error) {
	value, err := e.Value(payload, path)
	if err != nil {
		return nil, err
	}

	var items []interface{}
	switch v := value.(type) {
	case []interface{}:
		items = v
	case map[string]interface{}:
		inner, isExist := v[item]
		if !isExist {
			return nil, fmt.Errorf("%w: %s:%s", ErrMissingField, path, item)
		}
		if list, ok := inner.([]interface{}); ok {
			items = list
		} else {
			items = []interface{}{inner}
		}
	default:
		return nil, fmt.Errorf("%w: %s is not a collection", ErrMissingField, path)
	}

	result := make([]interface{}, 0, len(items))
	for _, it := range items {
		if m, ok := it.(map[string]interface{}); ok && len(m) == 1 {
			if inner, isExist := m[item]; isExist {
				it = inner
			}
		}
		result = append(result, it)
	}
	return result, nil
}

// Decode copies input into the struct pointed to by out using mapstructure tags.
// Single values decode into slices and scalars are converted weakly.
func (e *Extractor) Decode(input interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		TagName:          tagName,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}
