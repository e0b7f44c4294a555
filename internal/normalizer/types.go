package normalizer

// wire keys.
const (
	TagKey        = "tag"
	RoleKey       = "role"
	MergeFieldKey = "merge_field"

	RoleNameKey       = "@role_name"
	MergeFieldNameKey = "@merge_field_name"

	nameKey  = "name"
	valueKey = "value"
)

// TagKind distinguishes bare tags from valued ones.
type TagKind int

const (
	// TagBare is a tag with only a name.
	TagBare TagKind = iota
	// TagValued is a name:value tag.
	TagValued
)

// Tag of a template or document.
type Tag struct {
	Kind  TagKind
	Name  string
	Value string
}

// Bare returns a tag without value.
func Bare(name string) Tag {
	return Tag{Kind: TagBare, Name: name}
}

// Valued returns a name:value tag.
func Valued(name, value string) Tag {
	return Tag{Kind: TagValued, Name: name, Value: value}
}

// Tags is either an ordered list of tags or a caller pre-formatted
// "name,name:value" string which is sent as is.
type Tags struct {
	List []Tag
	Raw  string
}

// TagList ...
func TagList(tags ...Tag) Tags {
	return Tags{List: tags}
}

// RawTags ...
func RawTags(s string) Tags {
	return Tags{Raw: s}
}

// IsZero reports whether no tags were given.
func (t Tags) IsZero() bool {
	return t.Raw == "" && len(t.List) == 0
}

// Role assigns contact fields (name, email, ...) to a named role slot of a template.
type Role struct {
	Name   string
	Fields map[string]interface{}
}

// NewRole ...
func NewRole(name string, fields map[string]interface{}) Role {
	return Role{Name: name, Fields: fields}
}

// DisplayName returns the "name" field of the role.
func (r Role) DisplayName() string {
	if v, ok := r.Fields[nameKey].(string); ok {
		return v
	}
	return ""
}

// MergeField value by merge field name.
type MergeField struct {
	Name  string
	Value string
}
