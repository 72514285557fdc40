package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSingleInputSource(t *testing.T) {
	tests := []struct {
		name    string
		sources []bool
		wantErr string
	}{
		{"exactly one source", []bool{true, false}, ""},
		{"second source set", []bool{false, true}, ""},
		{"no sources", []bool{false, false}, "no source"},
		{"multiple sources", []bool{true, true}, "multiple sources"},
		{"empty source list", nil, "no source"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSingleInputSource("no source", "multiple sources", tt.sources...)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}
