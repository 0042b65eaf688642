package pyformat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		data map[string]any
		want string
	}{
		{"plain", "Cannot find source code.", nil, "Cannot find source code."},
		{"named", "In your program, the unknown name is `{var_name}`.\n", map[string]any{"var_name": "c"}, "In your program, the unknown name is `c`.\n"},
		{"repeated", "    {scope} {var_name}\n{scope}", map[string]any{"scope": "global", "var_name": "x"}, "    global x\nglobal"},
		{"repr", "the key is `{key_name!r}`.", map[string]any{"key_name": "c"}, "the key is `'c'`."},
		{"repr with quote", "{v!r}", map[string]any{"v": "it's"}, `"it's"`},
		{"repr int", "{v!r}", map[string]any{"v": 3}, "3"},
		{"str conversion", "{v!s}", map[string]any{"v": true}, "True"},
		{"format options ignored", "line {n:>4}", map[string]any{"n": 12}, "line 12"},
		{"escaped braces", "{{literal}} {x}", map[string]any{"x": 1}, "{literal} 1"},
		{"none", "{v}", map[string]any{"v": nil}, "None"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.tmpl, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatMissingFieldKeepsPlaceholder(t *testing.T) {
	got, err := Format("file `{filename}` line {linenumber}", map[string]any{"filename": "a.py"})
	assert.Equal(t, "file `a.py` line {linenumber}", got)

	var missing *MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"linenumber"}, missing.Fields)
}

func TestFormatUnbalanced(t *testing.T) {
	got, err := Format("open { brace", nil)
	assert.Equal(t, "open { brace", got)
	assert.Error(t, err)

	got, err = Format("close } brace", nil)
	assert.Equal(t, "close } brace", got)
	assert.Error(t, err)
}

func TestFields(t *testing.T) {
	assert.Equal(t, []string{"scope", "var_name"}, Fields("{scope} {var_name} {{x}} {scope!r}"))
	assert.Empty(t, Fields("no fields"))
}

func TestRepr(t *testing.T) {
	assert.Equal(t, `'a\nb'`, Repr("a\nb"))
	assert.Equal(t, `'both \' and "'`, Repr(`both ' and "`))
	assert.Equal(t, "None", Repr(nil))
}
