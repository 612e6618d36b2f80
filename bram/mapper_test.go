package bram

import (
	"bytes"
	"math/rand"
	"testing"
)

// fakeFrame is a BitAccessor backed by a plain bit slice, large enough to
// exercise every offset the mapper under test can produce.
type fakeFrame struct {
	bits []bool
}

func newFakeFrame(size int) *fakeFrame {
	return &fakeFrame{bits: make([]bool, size)}
}

func (f *fakeFrame) ReadFrameBit(offset int) (bool, error) {
	if offset < 0 || offset >= len(f.bits) {
		return false, nil
	}
	return f.bits[offset], nil
}

func (f *fakeFrame) WriteFrameBit(offset int, v bool) error {
	if offset < 0 || offset >= len(f.bits) {
		return nil
	}
	f.bits[offset] = v
	return nil
}

func maxOffset(kind Kind, isTop bool) int {
	shape := ShapeOf(kind)
	mapper := MapperFor(kind, isTop)
	max := 0
	for _, parity := range []bool{false, true} {
		bits := shape.NumWords * shape.DataBits
		if parity {
			bits = shape.NumWords * shape.ParityBits
		}
		for i := 0; i < bits; i++ {
			if off := mapper.Map(i, parity); off > max {
				max = off
			}
		}
	}
	return max + 1
}

func TestExtractInjectRoundTrip(t *testing.T) {
	kinds := []struct {
		name  string
		kind  Kind
		isTop bool
	}{
		{"RAMB36E1", KindRAMB36E1, false},
		{"RAMB36E2", KindRAMB36E2, false},
		{"RAMB18E1 bottom", KindRAMB18E1, false},
		{"RAMB18E1 top", KindRAMB18E1, true},
	}

	for _, tc := range kinds {
		t.Run(tc.name, func(t *testing.T) {
			frame := newFakeFrame(maxOffset(tc.kind, tc.isTop) + 1)
			shape := ShapeOf(tc.kind)

			rng := rand.New(rand.NewSource(1))
			dataLen := (shape.NumWords*shape.DataBits + 7) / 8
			want := make([]byte, dataLen)
			rng.Read(want)

			if err := Inject(tc.kind, tc.isTop, 0, frame, false, want); err != nil {
				t.Fatalf("inject: %v", err)
			}
			got, err := Extract(tc.kind, tc.isTop, 0, frame, false)
			if err != nil {
				t.Fatalf("extract: %v", err)
			}
			if !bytes.Equal(got, want) {
				t.Errorf("round trip mismatch: got %x, want %x", got, want)
			}
		})
	}
}

func TestDataAndParityOffsetsAreDisjoint(t *testing.T) {
	for _, kind := range []Kind{KindRAMB36E1, KindRAMB36E2} {
		shape := ShapeOf(kind)
		mapper := MapperFor(kind, false)

		dataOffsets := make(map[int]bool)
		for i := 0; i < shape.NumWords*shape.DataBits; i++ {
			dataOffsets[mapper.Map(i, false)] = true
		}
		for i := 0; i < shape.NumWords*shape.ParityBits; i++ {
			if off := mapper.Map(i, true); dataOffsets[off] {
				t.Errorf("%s: parity bit %d maps to offset %d, which a data bit also maps to", kind, i, off)
			}
		}
	}
}

func TestInjectSizeMismatch(t *testing.T) {
	frame := newFakeFrame(maxOffset(KindRAMB36E1, false) + 1)
	err := Inject(KindRAMB36E1, false, 0, frame, false, []byte{0x00})
	if !IsSizeMismatch(err) {
		t.Fatalf("expected SizeMismatchError, got %v", err)
	}
}

func TestRAMB36E1SingleByteWrite(t *testing.T) {
	// Scenario: write 0x5A to word 0 of the data plane, extract and check
	// byte 0 equals 0x5A with every other byte zero.
	frame := newFakeFrame(maxOffset(KindRAMB36E1, false) + 1)
	shape := ShapeOf(KindRAMB36E1)
	payload := make([]byte, (shape.NumWords*shape.DataBits+7)/8)
	payload[0] = 0x5A

	if err := Inject(KindRAMB36E1, false, 0, frame, false, payload); err != nil {
		t.Fatalf("inject: %v", err)
	}
	got, err := Extract(KindRAMB36E1, false, 0, frame, false)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got[0] != 0x5A {
		t.Errorf("byte 0 = 0x%02X, want 0x5A", got[0])
	}
	for i := 1; i < len(got); i++ {
		if got[i] != 0 {
			t.Errorf("byte %d = 0x%02X, want 0x00", i, got[i])
		}
	}
}
