package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultSteps(t *testing.T) {
	t.Run("empty path keeps built-in steps", func(t *testing.T) {
		steps, err := LoadDefaultSteps("")

		require.NoError(t, err)
		assert.Nil(t, steps)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "checklist.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
[[step]]
description = "Review brief"

[[step]]
description = "Send preview"
optional = true
`), 0o600))

		steps, err := LoadDefaultSteps(path)

		require.NoError(t, err)
		assert.Equal(t, []services.DefaultStep{
			{Description: "Review brief"},
			{Description: "Send preview", Optional: true},
		}, steps)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadDefaultSteps(filepath.Join(t.TempDir(), "absent.toml"))

		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestParseDefaultSteps_Errors(t *testing.T) {
	tests := map[string]struct {
		data string
		want error
	}{
		"malformed":         {data: `[[step]`, want: errs.ErrValueIsInvalid},
		"unknown field":     {data: "[[step]]\ndescription = \"a\"\ncolor = \"red\"", want: errs.ErrValueIsInvalid},
		"no steps":          {data: ``, want: errs.ErrValueIsRequired},
		"blank description": {data: "[[step]]\ndescription = \"  \"", want: errs.ErrValueIsRequired},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseDefaultSteps([]byte(tt.data))

			require.ErrorIs(t, err, tt.want)
		})
	}
}
