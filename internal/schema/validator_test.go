package schema

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRecords_Valid(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateRecords([]byte(`[]`)))
	assert.NoError(t, v.ValidateRecords([]byte(`[{"id":"1","name":"Alice","grade":"A"}]`)))
}

func TestValidateRecords_Invalid(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name string
		doc  string
	}{
		{"object instead of array", `{"id":"1"}`},
		{"missing grade", `[{"id":"1","name":"Alice"}]`},
		{"numeric id", `[{"id":1,"name":"Alice","grade":"A"}]`},
		{"null", `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRecords([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "schema validation failed")
		})
	}
}

func TestValidate_MalformedDocument(t *testing.T) {
	v := NewValidator()

	err := v.ValidateRecords([]byte(`[{"id":`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation execution failed")
}

func TestValidate_CachesCompiledSchema(t *testing.T) {
	v := NewValidator()
	require.NoError(t, v.ValidateRecords([]byte(`[]`)))
	require.NoError(t, v.ValidateRecords([]byte(`[]`)))

	count := 0
	v.cache.Range(func(_, _ any) bool {
		count++
		return true
	})
	assert.Equal(t, 1, count)
}

func TestDumpErrors_Truncates(t *testing.T) {
	var errs []string
	for i := 0; i < 5; i++ {
		errs = append(errs, fmt.Sprintf("err%d", i))
	}
	out := dumpErrors(errs)
	assert.Equal(t, 3, strings.Count(out, "err"))
	assert.Contains(t, out, "and 2 more")
}
