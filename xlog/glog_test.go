package xlog

import (
	"errors"
	"testing"
)

func TestFormatMsg(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		kv   []interface{}
		want string
	}{
		{"no pairs", "hello", nil, "hello"},
		{"one pair", "commit", []interface{}{"far", 42}, "commit far=42"},
		{"error value", "failed", []interface{}{"err", errors.New("boom")}, "failed err=boom"},
		{"odd trailing key dropped", "x", []interface{}{"a", 1, "b"}, "x a=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMsg(tt.msg, tt.kv); got != tt.want {
				t.Errorf("formatMsg(%q, %v) = %q, want %q", tt.msg, tt.kv, got, tt.want)
			}
		})
	}
}
