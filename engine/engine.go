// Package engine implements the configuration-engine state machine: it
// consumes packet events from the packet package and maintains the
// observable state of a real Xilinx configuration controller (frame
// address, write mode, IDCODE, nested SLR contexts).
package engine

import (
	"context"
	"encoding/binary"

	"github.com/dcoles/xbitstream/packet"
)

// Engine replays packet events against a configuration-controller state
// machine, committing FDRI/MFWR frames and tracking nested SLR contexts.
type Engine struct {
	cfg   Config
	stack []*slrContext
}

// New creates an Engine with the given options applied over the defaults.
func New(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine{cfg: cfg}
}

// Process decodes data as a top-level bitstream and replays it against the
// engine's state machine. ctx is checked once per top-level packet event;
// a cancelled context halts processing and returns ctx.Err().
func (e *Engine) Process(ctx context.Context, data []byte) error {
	e.stack = []*slrContext{newSlrContext(0)}
	return e.run(ctx, data, true)
}

func (e *Engine) run(ctx context.Context, data []byte, topLevel bool) error {
	var cbErr error
	_, err := packet.Decode(data, packet.Options{}, func(ev packet.Event) packet.Signal {
		if topLevel {
			select {
			case <-ctx.Done():
				cbErr = ctx.Err()
				return packet.Stop
			default:
			}
		}
		if err := e.dispatch(ctx, ev); err != nil {
			cbErr = err
			return packet.Stop
		}
		return packet.Continue
	})
	if cbErr != nil {
		return cbErr
	}
	return err
}

func (e *Engine) top() *slrContext {
	return e.stack[len(e.stack)-1]
}

func (e *Engine) dispatch(ctx context.Context, ev packet.Event) error {
	c := e.top()

	switch {
	case ev.Register == packet.RegCMD && ev.Op == packet.OpWrite && len(ev.Payload) > 0:
		return e.handleCmd(c, packet.Command(ev.Payload[len(ev.Payload)-1]&0x1F))

	case ev.Register == packet.RegFAR && ev.Op == packet.OpWrite && len(ev.Payload) > 0:
		c.far = ev.Payload[len(ev.Payload)-1]
		return nil

	case ev.Register == packet.RegIDCODE && ev.Op == packet.OpWrite && len(ev.Payload) > 0:
		return e.handleIdcode(c, ev.Payload[len(ev.Payload)-1])

	case ev.Register == packet.RegFDRI && ev.Op == packet.OpWrite:
		return e.handleFDRI(c, ev.Payload)

	case ev.Register == packet.RegMFWR && ev.Op == packet.OpWrite:
		return e.handleMFWR(c)

	case ev.Register == packet.RegSlrSwitch && ev.Op == packet.OpWrite && len(ev.Payload) > 0:
		return e.handleSlrSwitch(ctx, ev.Payload)

	default:
		// Any other register write, or a read/nop/reserved event, is ignored.
		return nil
	}
}

func (e *Engine) handleCmd(c *slrContext, cmd packet.Command) error {
	switch cmd {
	case packet.CmdNUL:
		c.writeMode = ReadOnly
	case packet.CmdWCFG:
		c.writeMode = WriteOnce
	case packet.CmdMFW:
		c.writeMode = Overwrite
	default:
		return nil
	}
	e.cfg.Logger.Debug("write mode changed", "slr", c.slrIndex, "mode", c.writeMode.String())
	e.cfg.Callbacks.writeModeChange(c.slrIndex, c.writeMode)
	return nil
}

func (e *Engine) handleIdcode(c *slrContext, idcode uint32) error {
	if c.haveIdcode && c.idcode != idcode {
		return &IdcodeMismatchError{Expected: c.idcode, Actual: idcode}
	}
	if e.cfg.HaveExpectedIDCode && idcode != e.cfg.ExpectedIDCode {
		return &IdcodeMismatchError{Expected: e.cfg.ExpectedIDCode, Actual: idcode}
	}
	c.idcode = idcode
	c.haveIdcode = true
	e.cfg.Callbacks.idcode(c.slrIndex, idcode)
	return nil
}

func (e *Engine) handleFDRI(c *slrContext, payload []uint32) error {
	if c.writeMode == ReadOnly {
		return &UnexpectedWriteError{Register: "FDRI", WriteMode: c.writeMode.String(), SLRIndex: c.slrIndex}
	}

	wpf := e.cfg.WordsPerFrame
	for offset := 0; offset+wpf <= len(payload); offset += wpf {
		frame := payload[offset : offset+wpf]
		commit := c.writeMode == Overwrite || !c.writtenFrames[c.far]
		if commit {
			c.writtenFrames[c.far] = true
			frameCopy := make([]uint32, len(frame))
			copy(frameCopy, frame)
			c.lastFrame = frameCopy
			e.cfg.Callbacks.frameCommit(c.slrIndex, c.far, frameCopy)
		}
		c.far++
	}
	return nil
}

func (e *Engine) handleMFWR(c *slrContext) error {
	if c.writeMode != Overwrite {
		return &UnexpectedWriteError{Register: "MFWR", WriteMode: c.writeMode.String(), SLRIndex: c.slrIndex}
	}
	if c.lastFrame == nil {
		return nil
	}
	c.writtenFrames[c.far] = true
	e.cfg.Callbacks.frameCommit(c.slrIndex, c.far, c.lastFrame)
	return nil
}

func (e *Engine) handleSlrSwitch(ctx context.Context, payload []uint32) error {
	nested := newSlrContext(e.top().slrIndex + 1)
	e.stack = append(e.stack, nested)
	e.cfg.Callbacks.slrEnter(nested.slrIndex)

	buf := make([]byte, len(payload)*4)
	for i, w := range payload {
		binary.BigEndian.PutUint32(buf[i*4:], w)
	}

	err := e.run(ctx, buf, false)

	e.cfg.Callbacks.slrExit(nested.slrIndex)
	e.stack = e.stack[:len(e.stack)-1]
	return err
}
