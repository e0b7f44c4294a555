// Package normalizer converts caller collections (tags, roles, merge fields,
// name lists) into the nested objects the e-signature API expects.
package normalizer

import (
	"fmt"
	"strings"
)

// NormalizeTags returns the request value for a tags field.
// A raw string is returned unchanged, a list becomes [{tag: {name[, value]}}, ...].
// Zero tags give nil: the field must be omitted.
func NormalizeTags(tags Tags) interface{} {
	if tags.Raw != "" {
		return tags.Raw
	}
	if len(tags.List) == 0 {
		return nil
	}
	result := make([]interface{}, 0, len(tags.List))
	for _, tag := range tags.List {
		result = append(result, map[string]interface{}{
			TagKey: tagObject(tag),
		})
	}
	return result
}

// TagsQuery returns tags formatted as "name,name:value" for query parameters.
func TagsQuery(tags Tags) string {
	if tags.Raw != "" {
		return tags.Raw
	}
	items := make([]string, 0, len(tags.List))
	for _, tag := range tags.List {
		switch tag.Kind {
		case TagValued:
			items = append(items, tag.Name+":"+tag.Value)
		default:
			items = append(items, tag.Name)
		}
	}
	return strings.Join(items, ",")
}

func tagObject(tag Tag) map[string]interface{} {
	switch tag.Kind {
	case TagValued:
		return map[string]interface{}{
			nameKey:  tag.Name,
			valueKey: tag.Value,
		}
	default:
		return map[string]interface{}{
			nameKey: tag.Name,
		}
	}
}

// NormalizeRoles returns [{role: {...fields, @role_name: name}}, ...].
// The result is never nil, an empty input gives an empty sequence.
func NormalizeRoles(roles []Role) ([]interface{}, error) {
	result := make([]interface{}, 0, len(roles))
	for i, role := range roles {
		if role.Name == "" {
			return nil, fmt.Errorf("%w: role %d has no name", ErrInvalidRoleShape, i)
		}
		object := make(map[string]interface{}, len(role.Fields)+1)
		for k, v := range role.Fields {
			object[k] = v
		}
		object[RoleNameKey] = role.Name
		result = append(result, map[string]interface{}{
			RoleKey: object,
		})
	}
	return result, nil
}

// NormalizeMergeFields returns [{merge_field: {value, @merge_field_name}}, ...].
func NormalizeMergeFields(fields []MergeField) ([]interface{}, error) {
	if len(fields) == 0 {
		return nil, nil
	}
	result := make([]interface{}, 0, len(fields))
	for i, field := range fields {
		if field.Name == "" {
			return nil, fmt.Errorf("%w: merge field %d has no name", ErrInvalidMergeFieldShape, i)
		}
		result = append(result, map[string]interface{}{
			MergeFieldKey: map[string]interface{}{
				valueKey:          field.Value,
				MergeFieldNameKey: field.Name,
			},
		})
	}
	return result, nil
}

// NormalizeNameList returns [{name}, ...] or nil for an empty list.
func NormalizeNameList(names []string) []interface{} {
	if len(names) == 0 {
		return nil
	}
	result := make([]interface{}, 0, len(names))
	for _, name := range names {
		result = append(result, map[string]interface{}{
			nameKey: name,
		})
	}
	return result
}
