package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zixuanlab/fourpillars/internal/common"
)

func TestInitConfigMissingExplicitFile(t *testing.T) {
	orig := cfgFile
	defer func() { cfgFile = orig }()

	cfgFile = filepath.Join(t.TempDir(), "does-not-exist.yaml")
	err := initConfig(nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: "1990-01-15"},
		{name: "malformed", input: "15/01/1990", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1990, got.Year())
		})
	}
}

func TestParseGender(t *testing.T) {
	_, err := parseGender("other")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidGender)
}
