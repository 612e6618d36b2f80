package engine

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/dcoles/xbitstream/packet"
)

const wordsPerFrame = 4 // small frame size, kept tiny for test readability

func be32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

func type1(op packet.Op, reg packet.Register, wordCount int) uint32 {
	return uint32(0b001)<<29 | uint32(op)<<27 | uint32(reg)<<13 | uint32(wordCount&0x7FF)
}

func type2(wordCount int) uint32 {
	return uint32(0b010)<<29 | uint32(wordCount&0x07FFFFFF)
}

func buildStream(words ...uint32) []byte {
	buf := make([]byte, 0, len(words)*4)
	for _, w := range words {
		buf = append(buf, be32(w)...)
	}
	return buf
}

func cmdWrite(cmd packet.Command) []uint32 {
	return []uint32{type1(packet.OpWrite, packet.RegCMD, 1), uint32(cmd)}
}

func farWrite(far uint32) []uint32 {
	return []uint32{type1(packet.OpWrite, packet.RegFAR, 1), far}
}

func fdriWrite(frames ...[]uint32) []uint32 {
	n := 0
	for _, f := range frames {
		n += len(f)
	}
	words := []uint32{type1(packet.OpWrite, packet.RegFDRI, 0), type2(n)}
	for _, f := range frames {
		words = append(words, f...)
	}
	return words
}

func mfwrWrite() []uint32 {
	return []uint32{type1(packet.OpWrite, packet.RegMFWR, 1), 0}
}

func idcodeWrite(idcode uint32) []uint32 {
	return []uint32{type1(packet.OpWrite, packet.RegIDCODE, 1), idcode}
}

func frameOf(value uint32) []uint32 {
	f := make([]uint32, wordsPerFrame)
	for i := range f {
		f[i] = value
	}
	return f
}

func flatten(groups ...[]uint32) []uint32 {
	var out []uint32
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func TestWriteOnceLaw(t *testing.T) {
	// Two FDRI frames targeting the same FAR under write_once: only the
	// first commits.
	words := flatten(
		[]uint32{packet.SyncWord},
		cmdWrite(packet.CmdWCFG),
		farWrite(0),
		fdriWrite(frameOf(0x11111111)),
		farWrite(0),
		fdriWrite(frameOf(0x22222222)),
	)
	data := buildStream(words...)

	committed := make(map[uint32][]uint32)
	e := New(WithWordsPerFrame(wordsPerFrame), WithCallbacks(Callbacks{
		OnFrameCommit: func(slrIndex int, far uint32, frame []uint32) {
			committed[far] = append([]uint32(nil), frame...)
		},
	}))

	if err := e.Process(context.Background(), data); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if got := committed[0][0]; got != 0x11111111 {
		t.Errorf("FAR 0 = 0x%08X, want 0x11111111 (first write should win under write_once)", got)
	}
}

func TestOverwriteLaw(t *testing.T) {
	words := flatten(
		[]uint32{packet.SyncWord},
		cmdWrite(packet.CmdMFW),
		farWrite(0),
		fdriWrite(frameOf(0x11111111)),
		farWrite(0),
		fdriWrite(frameOf(0x22222222)),
	)
	data := buildStream(words...)

	committed := make(map[uint32][]uint32)
	e := New(WithWordsPerFrame(wordsPerFrame), WithCallbacks(Callbacks{
		OnFrameCommit: func(slrIndex int, far uint32, frame []uint32) {
			committed[far] = append([]uint32(nil), frame...)
		},
	}))

	if err := e.Process(context.Background(), data); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if got := committed[0][0]; got != 0x22222222 {
		t.Errorf("FAR 0 = 0x%08X, want 0x22222222 (overwrite commits every write)", got)
	}
}

func TestMFWScenario(t *testing.T) {
	// WCFG -> FDRI frame F0 at FAR 0; MFW -> FAR 1 -> MFWR, FAR 2 -> MFWR;
	// then WCFG -> FDRI frame F1 at FAR 1.
	words := flatten(
		[]uint32{packet.SyncWord},
		cmdWrite(packet.CmdWCFG),
		farWrite(0),
		fdriWrite(frameOf(0xF0F0F0F0)),
		cmdWrite(packet.CmdMFW),
		farWrite(1),
		mfwrWrite(),
		farWrite(2),
		mfwrWrite(),
		cmdWrite(packet.CmdWCFG),
		farWrite(1),
		fdriWrite(frameOf(0xF1F1F1F1)),
	)
	data := buildStream(words...)

	committed := make(map[uint32][]uint32)
	e := New(WithWordsPerFrame(wordsPerFrame), WithCallbacks(Callbacks{
		OnFrameCommit: func(slrIndex int, far uint32, frame []uint32) {
			committed[far] = append([]uint32(nil), frame...)
		},
	}))

	if err := e.Process(context.Background(), data); err != nil {
		t.Fatalf("Process: %v", err)
	}

	want := map[uint32]uint32{0: 0xF0F0F0F0, 1: 0xF0F0F0F0, 2: 0xF0F0F0F0}
	for far, wantVal := range want {
		got, ok := committed[far]
		if !ok {
			t.Fatalf("FAR %d: no commit recorded", far)
		}
		if got[0] != wantVal {
			t.Errorf("FAR %d = 0x%08X, want 0x%08X", far, got[0], wantVal)
		}
	}
}

func TestReadOnlyRejectsFDRI(t *testing.T) {
	words := flatten(
		[]uint32{packet.SyncWord},
		farWrite(0),
		fdriWrite(frameOf(0x11111111)),
	)
	data := buildStream(words...)

	e := New(WithWordsPerFrame(wordsPerFrame))
	err := e.Process(context.Background(), data)
	if !IsUnexpectedWrite(err) {
		t.Fatalf("expected UnexpectedWriteError, got %v", err)
	}
}

func TestIdcodeMismatchWithinSLR(t *testing.T) {
	words := flatten(
		[]uint32{packet.SyncWord},
		idcodeWrite(0x03727093),
		idcodeWrite(0x03722093),
	)
	data := buildStream(words...)

	e := New(WithWordsPerFrame(wordsPerFrame))
	err := e.Process(context.Background(), data)
	if !IsIdcodeMismatch(err) {
		t.Fatalf("expected IdcodeMismatchError, got %v", err)
	}
}

func TestIdcodeMismatchAgainstExpectedIDCode(t *testing.T) {
	words := flatten(
		[]uint32{packet.SyncWord},
		idcodeWrite(0x03722093),
	)
	data := buildStream(words...)

	e := New(WithWordsPerFrame(wordsPerFrame), WithExpectedIDCode(0x03727093))
	err := e.Process(context.Background(), data)
	if !IsIdcodeMismatch(err) {
		t.Fatalf("expected IdcodeMismatchError, got %v", err)
	}
	mismatch := err.(*IdcodeMismatchError)
	if mismatch.Expected != 0x03727093 || mismatch.Actual != 0x03722093 {
		t.Errorf("IdcodeMismatchError = %+v, want Expected=0x03727093 Actual=0x03722093", mismatch)
	}
}

func TestExpectedIDCodeMatchSucceeds(t *testing.T) {
	words := flatten(
		[]uint32{packet.SyncWord},
		idcodeWrite(0x03727093),
		cmdWrite(packet.CmdWCFG),
		farWrite(0),
		fdriWrite(frameOf(0x11111111)),
	)
	data := buildStream(words...)

	e := New(WithWordsPerFrame(wordsPerFrame), WithExpectedIDCode(0x03727093))
	if err := e.Process(context.Background(), data); err != nil {
		t.Fatalf("Process: %v", err)
	}
}

func TestNestedSlrSwitchRestoresParentContext(t *testing.T) {
	innerPayload := flatten(
		[]uint32{packet.SyncWord},
		cmdWrite(packet.CmdWCFG),
		farWrite(5),
		fdriWrite(frameOf(0xABCDEF01)),
	)
	outerWords := flatten(
		[]uint32{packet.SyncWord},
		cmdWrite(packet.CmdWCFG),
		farWrite(0),
		fdriWrite(frameOf(0x11111111)),
		[]uint32{type1(packet.OpWrite, packet.RegSlrSwitch, 0), type2(len(innerPayload))},
		innerPayload,
		farWrite(1),
		fdriWrite(frameOf(0x22222222)),
	)
	data := buildStream(outerWords...)

	var slrSequence []int
	e := New(WithWordsPerFrame(wordsPerFrame), WithCallbacks(Callbacks{
		OnFrameCommit: func(slrIndex int, far uint32, frame []uint32) {
			slrSequence = append(slrSequence, slrIndex)
		},
	}))

	if err := e.Process(context.Background(), data); err != nil {
		t.Fatalf("Process: %v", err)
	}

	want := []int{0, 1, 0}
	if len(slrSequence) != len(want) {
		t.Fatalf("slr sequence = %v, want %v", slrSequence, want)
	}
	for i, v := range want {
		if slrSequence[i] != v {
			t.Errorf("slrSequence[%d] = %d, want %d", i, slrSequence[i], v)
		}
	}
}
