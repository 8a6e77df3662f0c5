package core

import "testing"

func TestZeroComplex(t *testing.T) {
	buf := []complex128{1 + 2i, -3i, 4}
	ZeroComplex(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %v, want 0", i, v)
		}
	}
}

func TestZeroComplexEmpty(t *testing.T) {
	ZeroComplex(nil)
}
