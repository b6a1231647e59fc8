package clock

import (
	"errors"
	"testing"
	"time"
)

func TestWall(t *testing.T) {
	c := Wall()
	if c.Name() != NameWall {
		t.Errorf("Name() = %q, want %q", c.Name(), NameWall)
	}

	start := c.Now()
	time.Sleep(2 * time.Millisecond)
	end := c.Now()

	if end-start < 2*time.Millisecond {
		t.Errorf("elapsed = %v, want >= 2ms", end-start)
	}
}

func TestProcessCPU_Monotonic(t *testing.T) {
	c := ProcessCPU()

	start := c.Now()
	if start < 0 {
		t.Fatalf("Now() = %v, want >= 0", start)
	}

	// Burn some CPU so the reading has a chance to advance.
	x := 0
	for i := 0; i < 5_000_000; i++ {
		x += i
	}
	_ = x

	if end := c.Now(); end < start {
		t.Errorf("reading went backwards: %v -> %v", start, end)
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"wall", "wall", NameWall, false},
		{"empty defaults to wall", "", NameWall, false},
		{"upper case", "WALL", NameWall, false},
		{"cpu", "cpu", "", false},
		{"unknown", "sundial", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ByName(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownClock) {
					t.Errorf("ByName(%q) error = %v, want ErrUnknownClock", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ByName(%q) error = %v", tt.input, err)
			}
			if tt.want != "" && c.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", c.Name(), tt.want)
			}
		})
	}
}

func TestFunc(t *testing.T) {
	var calls int
	c := Func(func() time.Duration {
		calls++
		return time.Duration(calls) * time.Second
	})

	if got := c.Now(); got != time.Second {
		t.Errorf("Now() = %v, want 1s", got)
	}
	if got := c.Now(); got != 2*time.Second {
		t.Errorf("Now() = %v, want 2s", got)
	}
	if c.Name() != "func" {
		t.Errorf("Name() = %q, want %q", c.Name(), "func")
	}
}
