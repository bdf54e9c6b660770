package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "simple command line",
			input: "add -f item",
			want:  []string{"add", "-f", "item"},
		},
		{
			name:  "quoted arguments",
			input: `add "two words" 'single quoted'`,
			want:  []string{"add", "two words", "single quoted"},
		},
		{
			name:  "escaped quotes",
			input: `add \"item\"`,
			want:  []string{"add", `"item"`},
		},
		{
			name:  "literal marker is kept",
			input: "--stuff stuff -- abc",
			want:  []string{"--stuff", "stuff", "--", "abc"},
		},
		{
			name:  "comment",
			input: "add item # the rest is ignored",
			want:  []string{"add", "item"},
		},
		{
			name:  "hash inside a word",
			input: "add issue#3",
			want:  []string{"add", "issue#3"},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
		{
			name:    "unterminated quote",
			input:   `add "item`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
