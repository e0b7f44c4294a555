package normalizer

import (
	"fmt"
	"strconv"
)

// ParseTags builds Tags from decoded input: a pre-formatted string or a list
// whose items are strings (bare tags) or single-key mappings (valued tags).
func ParseTags(input interface{}) (tags Tags, err error) {
	switch v := input.(type) {
	case nil:
		return
	case string:
		tags.Raw = v
		return
	case []interface{}:
		for i, item := range v {
			var tag Tag
			if tag, err = parseTag(item); err != nil {
				err = fmt.Errorf("tag %d: %w", i, err)
				return
			}
			tags.List = append(tags.List, tag)
		}
		return
	}
	err = fmt.Errorf("%w: unexpected %T", ErrInvalidTagShape, input)
	return
}

func parseTag(item interface{}) (Tag, error) {
	if name, ok := item.(string); ok {
		return Bare(name), nil
	}
	name, value, ok := singleEntry(item)
	if !ok {
		return Tag{}, ErrInvalidTagShape
	}
	s, ok := scalar(value)
	if !ok {
		return Tag{}, fmt.Errorf("%w: value of %s is not a scalar", ErrInvalidTagShape, name)
	}
	return Valued(name, s), nil
}

// ParseRoles builds roles from a list of single-key mappings {role name: {fields}}.
func ParseRoles(input interface{}) (roles []Role, err error) {
	if input == nil {
		return
	}
	list, ok := input.([]interface{})
	if !ok {
		err = fmt.Errorf("%w: roles must be a list, got %T", ErrInvalidRoleShape, input)
		return
	}
	roles = make([]Role, 0, len(list))
	for i, item := range list {
		name, value, ok := singleEntry(item)
		if !ok {
			err = fmt.Errorf("%w: role %d is not a single-key mapping", ErrInvalidRoleShape, i)
			return
		}
		fields, ok := value.(map[string]interface{})
		if !ok {
			err = fmt.Errorf("%w: fields of role %s are not a mapping", ErrInvalidRoleShape, name)
			return
		}
		roles = append(roles, NewRole(name, fields))
	}
	return
}

// ParseMergeFields builds merge fields from a list of single-key mappings {field name: value}.
func ParseMergeFields(input interface{}) (fields []MergeField, err error) {
	if input == nil {
		return
	}
	list, ok := input.([]interface{})
	if !ok {
		err = fmt.Errorf("%w: merge fields must be a list, got %T", ErrInvalidMergeFieldShape, input)
		return
	}
	for i, item := range list {
		name, value, ok := singleEntry(item)
		if !ok {
			err = fmt.Errorf("%w: merge field %d is not a single-key mapping", ErrInvalidMergeFieldShape, i)
			return
		}
		s, ok := scalar(value)
		if !ok {
			err = fmt.Errorf("%w: value of %s is not a scalar", ErrInvalidMergeFieldShape, name)
			return
		}
		fields = append(fields, MergeField{Name: name, Value: s})
	}
	return
}

// ParseNameList accepts a list of strings.
func ParseNameList(input interface{}) (names []string, err error) {
	if input == nil {
		return
	}
	list, ok := input.([]interface{})
	if !ok {
		err = fmt.Errorf("name list must be a list, got %T", input)
		return
	}
	for i, item := range list {
		name, ok := item.(string)
		if !ok {
			err = fmt.Errorf("name %d is %T, not a string", i, item)
			return
		}
		names = append(names, name)
	}
	return
}

func singleEntry(item interface{}) (key string, value interface{}, ok bool) {
	m, isMap := item.(map[string]interface{})
	if !isMap || len(m) != 1 {
		return
	}
	for key, value = range m {
	}
	ok = key != ""
	return
}

func scalar(v interface{}) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case int:
		return strconv.Itoa(s), true
	case int64:
		return strconv.FormatInt(s, 10), true
	case bool:
		return strconv.FormatBool(s), true
	}
	return "", false
}
