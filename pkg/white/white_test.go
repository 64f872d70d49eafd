package white_test

import (
	"testing"

	"github.com/ashora/jpred-standalone/pkg/white"
)

func TestRemove(t *testing.T) {
	tests := []struct{ in, want string }{
		{"abc", "abc"},
		{" a b\tc\n", "abc"},
		{"\r\n", ""},
		{"", ""},
	}
	for _, tt := range tests {
		b := []byte(tt.in)
		white.Remove(&b)
		if string(b) != tt.want {
			t.Errorf("white remove got %q wanted %q", b, tt.want)
		}
	}
}
