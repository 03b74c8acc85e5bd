package cpupad

import (
	"testing"
	"unsafe"

	"golang.org/x/sys/cpu"
)

func TestPadSizeMatchesCacheLineConstant(t *testing.T) {
	var p Pad
	if unsafe.Sizeof(p) != uintptr(cpu.CacheLinePadSize) {
		t.Fatalf("sizeof(Pad) = %d, want %d", unsafe.Sizeof(p), cpu.CacheLinePadSize)
	}
}

func TestPadSeparatesAdjacentFields(t *testing.T) {
	type hot struct {
		a int64
		_ Pad
		b int64
	}
	var h hot
	offA := unsafe.Offsetof(h.a)
	offB := unsafe.Offsetof(h.b)
	if offB-offA < uintptr(cpu.CacheLinePadSize) {
		t.Fatalf("a and b are only %d bytes apart, want at least %d", offB-offA, cpu.CacheLinePadSize)
	}
}
