package normalizer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTags(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		tags, err := ParseTags([]interface{}{"hello", map[string]interface{}{"abc": "def"}, "there"})
		require.NoError(t, err)
		assert.Equal(t, TagList(Bare("hello"), Valued("abc", "def"), Bare("there")), tags)
	})

	t.Run("string", func(t *testing.T) {
		tags, err := ParseTags("voice,no:way,microphone")
		require.NoError(t, err)
		assert.Equal(t, RawTags("voice,no:way,microphone"), tags)
	})

	t.Run("numeric value", func(t *testing.T) {
		tags, err := ParseTags([]interface{}{map[string]interface{}{"template_id": 31.0}})
		require.NoError(t, err)
		assert.Equal(t, TagList(Valued("template_id", "31")), tags)
	})

	t.Run("nil", func(t *testing.T) {
		tags, err := ParseTags(nil)
		require.NoError(t, err)
		assert.True(t, tags.IsZero())
	})

	t.Run("two keys", func(t *testing.T) {
		_, err := ParseTags([]interface{}{map[string]interface{}{"a": "1", "b": "2"}})
		assert.True(t, errors.Is(err, ErrInvalidTagShape))
	})
}

func TestParseRoles(t *testing.T) {
	t.Run("single-key mappings", func(t *testing.T) {
		roles, err := ParseRoles([]interface{}{
			map[string]interface{}{"Leasee": map[string]interface{}{"name": "John Bellingham"}},
			map[string]interface{}{"Leaser": map[string]interface{}{"name": "Tim Else"}},
		})
		require.NoError(t, err)
		require.Len(t, roles, 2)
		assert.Equal(t, "Leasee", roles[0].Name)
		assert.Equal(t, "John Bellingham", roles[0].DisplayName())
		assert.Equal(t, "Leaser", roles[1].Name)
	})

	t.Run("not single key", func(t *testing.T) {
		_, err := ParseRoles([]interface{}{map[string]interface{}{
			"A": map[string]interface{}{},
			"B": map[string]interface{}{},
		}})
		assert.True(t, errors.Is(err, ErrInvalidRoleShape))
	})

	t.Run("string entry", func(t *testing.T) {
		_, err := ParseRoles([]interface{}{"Employee"})
		assert.True(t, errors.Is(err, ErrInvalidRoleShape))
	})

	t.Run("fields not a mapping", func(t *testing.T) {
		_, err := ParseRoles([]interface{}{map[string]interface{}{"Employee": "John"}})
		assert.True(t, errors.Is(err, ErrInvalidRoleShape))
	})
}

func TestParseMergeFields(t *testing.T) {
	fields, err := ParseMergeFields([]interface{}{map[string]interface{}{"Tax_id": "123456"}})
	require.NoError(t, err)
	assert.Equal(t, []MergeField{{Name: "Tax_id", Value: "123456"}}, fields)

	_, err = ParseMergeFields([]interface{}{map[string]interface{}{"Tax_id": []interface{}{"1"}}})
	assert.True(t, errors.Is(err, ErrInvalidMergeFieldShape))

	_, err = ParseMergeFields([]interface{}{"Tax_id"})
	assert.True(t, errors.Is(err, ErrInvalidMergeFieldShape))
}

func TestParseNameList(t *testing.T) {
	names, err := ParseNameList([]interface{}{"Http Monster", "Party Monster"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Http Monster", "Party Monster"}, names)

	_, err = ParseNameList([]interface{}{1.0})
	assert.Error(t, err)
}
