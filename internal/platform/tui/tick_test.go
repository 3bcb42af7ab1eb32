package tui

import (
	"testing"
	"time"
)

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{30, time.Second / 30},
		{60, time.Second / 60},
		{1, time.Second},
		{0, time.Second / 30},
		{-5, time.Second / 30},
	}

	for _, tt := range tests {
		if got := tickInterval(tt.rate); got != tt.want {
			t.Errorf("tickInterval(%d) = %v, expected %v", tt.rate, got, tt.want)
		}
	}
}

func TestTickCmdZeroRate(t *testing.T) {
	if tickCmd(0) == nil {
		t.Error("tickCmd(0) should still schedule a tick")
	}
}
