package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveDotSegments(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{in: []string{"a", ".", "b", "..", "c"}, want: []string{"a", "c"}},
		{in: []string{"..", "a"}, want: []string{"..", "a"}},
		{in: []string{"..", "..", "a"}, want: []string{"..", "..", "a"}},
		{in: []string{"a", "..", "..", "b"}, want: []string{"..", "b"}},
		{in: []string{"", "a", "b", "..", "..", "..", "c"}, want: []string{"", "c"}},
		{in: []string{"", ".."}, want: []string{""}},
		{in: []string{".", "."}, want: []string{}},
		{in: []string{"a", "b", "c"}, want: []string{"a", "b", "c"}},
		{in: []string{"", "a", ".", ""}, want: []string{"", "a", ""}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, removeDotSegments(tt.in), "input %v", tt.in)
	}
}
