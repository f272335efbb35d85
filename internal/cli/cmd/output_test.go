package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Key    string   `json:"key" yaml:"key"`
	Values []string `json:"values" yaml:"values"`
}

func TestWriteOutput(t *testing.T) {
	v := sample{Key: "font-size", Values: []string{"14"}}
	text := func() string { return "font-size = 14" }

	tests := []struct {
		name   string
		format string
		want   string
	}{
		{
			name:   "text",
			format: outputText,
			want:   "font-size = 14\n",
		},
		{
			name:   "json",
			format: outputJSON,
			want:   "{\n  \"key\": \"font-size\",\n  \"values\": [\n    \"14\"\n  ]\n}\n",
		},
		{
			name:   "yaml",
			format: outputYAML,
			want:   "key: font-size\nvalues:\n  - \"14\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeOutput(&buf, tt.format, v, text))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteOutput_StructuredSkipsText(t *testing.T) {
	var buf bytes.Buffer
	err := writeOutput(&buf, outputJSON, []string{}, func() string {
		t.Fatal("text renderer called for json output")
		return ""
	})
	require.NoError(t, err)
	assert.Equal(t, "[]\n", buf.String())
}
