package fieldutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allowed = []string{"firstName", "lastName", "email"}

func TestProject(t *testing.T) {
	tt := []struct {
		name  string
		input map[string]interface{}
		want  map[string]interface{}
	}{
		{
			name:  "empty input",
			input: map[string]interface{}{},
			want:  map[string]interface{}{},
		},
		{
			name: "all recognized",
			input: map[string]interface{}{
				"firstName": "A",
				"lastName":  "B",
			},
			want: map[string]interface{}{
				"firstName": "A",
				"lastName":  "B",
			},
		},
		{
			name: "unknown keys dropped",
			input: map[string]interface{}{
				"firstName": "A",
				"user_id":   7,
				"admin":     true,
			},
			want: map[string]interface{}{
				"firstName": "A",
			},
		},
		{
			name: "null values dropped",
			input: map[string]interface{}{
				"firstName": "A",
				"email":     nil,
			},
			want: map[string]interface{}{
				"firstName": "A",
			},
		},
		{
			name: "nothing qualifies",
			input: map[string]interface{}{
				"created_at": "2020-01-01",
				"lastName":   nil,
			},
			want: map[string]interface{}{},
		},
	}

	for _, test := range tt {
		t.Run(test.name, func(t *testing.T) {
			got := Project(test.input, allowed)
			assert.Equal(t, test.want, got)

			// Every surviving key must be allow-listed and defined.
			for key, value := range got {
				assert.Contains(t, allowed, key)
				assert.NotNil(t, value)
			}
		})
	}
}

func TestProjectDoesNotMutateInput(t *testing.T) {
	input := map[string]interface{}{
		"firstName": "A",
		"admin":     true,
	}
	Project(input, allowed)
	assert.Len(t, input, 2)
}
