package tui

import (
	"reflect"
	"testing"
)

func TestJoinWith(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  []string
	}{
		{name: "empty", parts: nil, want: []string{}},
		{name: "single", parts: []string{"a"}, want: []string{"a"}},
		{name: "interleaved", parts: []string{"a", "b", "c"}, want: []string{"a", "-", "b", "-", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := joinWith(tt.parts, "-")
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
