// Package xmlcodec converts nested mappings to and from the XML documents
// exchanged with the e-signature API.
//
// Encoding: keys prefixed with "@" become attributes of the enclosing element,
// sequences become a parent element holding one child per item.
// Decoding: repeated children become sequences, type="array" parents always
// become sequences, empty and nil="true" elements become nil, attributes are
// kept under "@"-prefixed keys and text next to attributes under "#text".
package xmlcodec

import (
	"bytes"
	"encoding/xml"
	"sort"
	"strings"

	"github.com/clbanning/mxj"
)

const (
	attrPrefix = "@"
	textKey    = "#text"
)

func init() {
	mxj.SetAttrPrefix(attrPrefix)
	mxj.XMLEscapeChars(true)
}

// Marshal encodes params into an XML document, one root element per key.
func Marshal(params map[string]interface{}) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	for _, key := range sortedKeys(params) {
		if strings.HasPrefix(key, attrPrefix) {
			continue
		}
		data, err := mxj.Map{key: prepare(key, params[key])}.Xml()
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	return buf.Bytes(), nil
}

// prepare turns sequences into parent mappings holding their items, the
// shape mxj writes as one parent element with repeated children.
func prepare(name string, value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(v))
		for k, e := range v {
			if strings.HasPrefix(k, attrPrefix) {
				m[k] = e
				continue
			}
			m[k] = prepare(k, e)
		}
		return m
	case []interface{}:
		children := map[string]interface{}{}
		counts := map[string]int{}
		for _, item := range v {
			if m, ok := item.(map[string]interface{}); ok {
				for _, k := range sortedKeys(m) {
					if strings.HasPrefix(k, attrPrefix) {
						continue
					}
					add(children, counts, k, prepare(k, m[k]))
				}
				continue
			}
			child := strings.TrimSuffix(name, "s")
			add(children, counts, child, prepare(child, item))
		}
		return children
	}
	return value
}

// Unmarshal decodes an XML document into {root: value}. An empty document gives an empty mapping.
func Unmarshal(data []byte) (map[string]interface{}, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]interface{}{}, nil
	}
	m, err := mxj.NewMapXml(data)
	if err != nil {
		return nil, err
	}
	res := make(map[string]interface{}, len(m))
	for k, v := range m {
		res[k] = normalize(v)
	}
	return res, nil
}

// normalize maps empty and nil="true" elements to nil and type="array"
// parents to the sequence of their children.
func normalize(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		if v[attrPrefix+"nil"] == "true" {
			return nil
		}
		if v[attrPrefix+"type"] == "array" {
			return items(v)
		}
		for k, e := range v {
			if !strings.HasPrefix(k, attrPrefix) {
				v[k] = normalize(e)
			}
		}
		return v
	case []interface{}:
		for i, e := range v {
			v[i] = normalize(e)
		}
		return v
	case string:
		if v == "" {
			return nil
		}
	}
	return value
}

func items(parent map[string]interface{}) []interface{} {
	list := []interface{}{}
	for _, k := range sortedKeys(parent) {
		if strings.HasPrefix(k, attrPrefix) || k == textKey {
			continue
		}
		switch v := normalize(parent[k]).(type) {
		case []interface{}:
			list = append(list, v...)
		default:
			list = append(list, v)
		}
	}
	return list
}

// add sets key of m, a repeated key turns into a sequence of its values.
func add(m map[string]interface{}, counts map[string]int, key string, value interface{}) {
	counts[key]++
	switch counts[key] {
	case 1:
		m[key] = value
	case 2:
		m[key] = []interface{}{m[key], value}
	default:
		m[key] = append(m[key].([]interface{}), value)
	}
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
