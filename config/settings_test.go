package config

import "testing"

func TestFullscreenLabel(t *testing.T) {
	cases := []struct {
		on   bool
		want string
	}{
		{true, "Fullscreen: ON"},
		{false, "Fullscreen: OFF"},
	}
	for _, tc := range cases {
		if got := FullscreenLabel(tc.on); got != tc.want {
			t.Errorf("FullscreenLabel(%v) = %q, want %q", tc.on, got, tc.want)
		}
	}
}
