package engine

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// DemoCapacity is the most frames a demo tape holds.
const DemoCapacity = 4999

// ErrDemoFull is returned when recording past DemoCapacity.
var ErrDemoFull = errors.New("demo tape is full")

// Demo frame bits.
const (
	demoWest  byte = 0x01
	demoEast  byte = 0x02
	demoNorth byte = 0x04
	demoSouth byte = 0x08
	demoJump  byte = 0x10
	demoBomb  byte = 0x20
	demoWin   byte = 0x40
)

// DemoMode says whether input comes from the player, is being recorded, or
// is played back from a tape.
type DemoMode int

const (
	DemoNone DemoMode = iota
	DemoRecord
	DemoPlay
)

func (m DemoMode) String() string {
	switch m {
	case DemoRecord:
		return "record"
	case DemoPlay:
		return "play"
	default:
		return "none"
	}
}

// DemoLevels is the fixed level order of demo playback and recording.
var DemoLevels = [...]int{0, 13, 5, 9, 16}

// EncodeDemoFrame packs one frame of commands plus the level-skip bit.
func EncodeDemoFrame(in Input) byte {
	var b byte
	if in.West {
		b |= demoWest
	}
	if in.East {
		b |= demoEast
	}
	if in.North {
		b |= demoNorth
	}
	if in.South {
		b |= demoSouth
	}
	if in.Jump {
		b |= demoJump
	}
	if in.Bomb {
		b |= demoBomb
	}
	if in.Win {
		b |= demoWin
	}
	return b
}

// DecodeDemoFrame unpacks a frame written by EncodeDemoFrame.
func DecodeDemoFrame(b byte) Input {
	return Input{
		West:  b&demoWest != 0,
		East:  b&demoEast != 0,
		North: b&demoNorth != 0,
		South: b&demoSouth != 0,
		Jump:  b&demoJump != 0,
		Bomb:  b&demoBomb != 0,
		Win:   b&demoWin != 0,
	}
}

// DemoTape is a recorded input stream, one byte per frame.
type DemoTape struct {
	Frames []byte
}

// Append records one frame. It returns ErrDemoFull once the tape holds
// DemoCapacity frames.
func (t *DemoTape) Append(in Input) error {
	if len(t.Frames) >= DemoCapacity {
		return ErrDemoFull
	}
	t.Frames = append(t.Frames, EncodeDemoFrame(in))
	return nil
}

// MarshalBinary encodes the tape as a little-endian frame count followed by
// the frames.
func (t *DemoTape) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, 2+len(t.Frames))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(t.Frames)))
	return append(buf, t.Frames...), nil
}

// UnmarshalBinary decodes a tape. Trailing bytes past the frame count are
// ignored.
func (t *DemoTape) UnmarshalBinary(data []byte) error {
	if len(data) < 2 {
		return fmt.Errorf("engine: decode demo: %w", io.ErrUnexpectedEOF)
	}
	n := int(binary.LittleEndian.Uint16(data))
	if n > DemoCapacity {
		return fmt.Errorf("engine: decode demo: %d frames: %w", n, ErrDemoFull)
	}
	if len(data)-2 < n {
		return fmt.Errorf("engine: decode demo: want %d frames, have %d: %w", n, len(data)-2, io.ErrUnexpectedEOF)
	}
	t.Frames = append([]byte(nil), data[2:2+n]...)
	return nil
}

// ReadDemoTape reads an encoded tape from r.
func ReadDemoTape(r io.Reader) (*DemoTape, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("engine: read demo: %w", err)
	}
	t := &DemoTape{}
	if err := t.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return t, nil
}

// WriteTo writes the encoded tape to wr.
func (t *DemoTape) WriteTo(wr io.Writer) (int64, error) {
	data, _ := t.MarshalBinary()
	n, err := wr.Write(data)
	if err != nil {
		return int64(n), fmt.Errorf("engine: write demo: %w", err)
	}
	return int64(n), nil
}

// DemoState is the world's demo mode plus the tape and playback cursor.
type DemoState struct {
	Mode DemoMode
	Tape *DemoTape
	pos  int
}

// StartDemoRecording begins a new game at the first demo level, recording
// every frame of input.
func (w *World) StartDemoRecording() error {
	w.Demo = DemoState{Mode: DemoRecord, Tape: &DemoTape{}}
	return w.startDemoGame()
}

// StartDemoPlayback begins a new game at the first demo level driven by
// tape.
func (w *World) StartDemoPlayback(tape *DemoTape) error {
	w.Demo = DemoState{Mode: DemoPlay, Tape: tape}
	return w.startDemoGame()
}

func (w *World) startDemoGame() error {
	w.InitializeGame()
	return w.SwitchLevel(DemoLevels[0])
}

// readDemoFrame loads the next tape frame into the commands. It reports
// true once the tape has run out.
func (w *World) readDemoFrame() bool {
	d := &w.Demo
	var b byte
	if d.Tape != nil && d.pos < len(d.Tape.Frames) {
		b = d.Tape.Frames[d.pos]
	}
	in := DecodeDemoFrame(b)
	w.Cmd = in
	w.WinLevel = in.Win

	d.pos++
	return d.Tape == nil || d.pos > len(d.Tape.Frames)
}

// writeDemoFrame appends the current commands to the tape. It reports true
// when the tape is full.
func (w *World) writeDemoFrame(win bool) bool {
	w.WinLevel = win
	in := w.Cmd
	in.Win = win
	return w.Demo.Tape.Append(in) != nil
}
