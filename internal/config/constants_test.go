package config

import (
	"testing"
	"time"
)

func TestConstants(t *testing.T) {
	if TickInterval <= 0 {
		t.Fatalf("TickInterval must be positive")
	}
	if TickInterval >= time.Second {
		t.Fatalf("TickInterval must refresh faster than the displayed resolution")
	}
	if EntrySeparator == "" {
		t.Fatalf("EntrySeparator should not be empty")
	}
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
}
