package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		vars     map[string]string
		want     string
	}{
		{
			name:     "replaces declared keys",
			template: "Hello {{name}}, welcome to {{place}}",
			vars:     map[string]string{"name": "Ada", "place": "Madrid"},
			want:     "Hello Ada, welcome to Madrid",
		},
		{
			name:     "absent key becomes empty string",
			template: "Hello {{name}}{{missing}}!",
			vars:     map[string]string{"name": "Ada"},
			want:     "Hello Ada!",
		},
		{
			name:     "repeated occurrences all replaced",
			template: "{{x}} and {{x}} and {{x}}",
			vars:     map[string]string{"x": "y"},
			want:     "y and y and y",
		},
		{
			name:     "non-matching braces left verbatim",
			template: "{{ spaced }} {{kebab-case}} {single} {{ok}}",
			vars:     map[string]string{"ok": "fine"},
			want:     "{{ spaced }} {{kebab-case}} {single} fine",
		},
		{
			name:     "underscore identifiers allowed",
			template: "{{snake_case_1}}",
			vars:     map[string]string{"snake_case_1": "v"},
			want:     "v",
		},
		{
			name:     "empty template",
			template: "",
			vars:     map[string]string{"a": "b"},
			want:     "",
		},
		{
			name:     "nil map",
			template: "{{a}} stays empty",
			vars:     nil,
			want:     " stays empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FillTemplate(tt.template, tt.vars))
		})
	}
}

// Substituted values must not be re-scanned: a value containing a
// placeholder is inserted literally.
func TestFillTemplateNoRecursion(t *testing.T) {
	vars := map[string]string{
		"a": "{{b}}",
		"b": "boom",
	}
	assert.Equal(t, "{{b}}", FillTemplate("{{a}}", vars))
}
