package terminal

import (
	"unicode/utf8"

	"github.com/lixenwraith/vi-snake/constant"
)

// decoder turns raw stdin bytes into key runes
// Arrow keys are folded onto the movement runes; other control input is dropped
type decoder struct {
	// Persistent buffer for stream assembly, holds partial sequences across reads
	buf  []byte
	keys []rune
}

func newDecoder() *decoder {
	return &decoder{
		buf:  make([]byte, 0, 64),
		keys: make([]rune, 0, 16),
	}
}

// feed appends data and decodes every complete key
func (d *decoder) feed(data []byte) {
	d.buf = append(d.buf, data...)
	consumed := d.parse(d.buf)

	// Compact buffer
	if consumed >= len(d.buf) {
		d.buf = d.buf[:0]
	} else if consumed > 0 {
		copy(d.buf, d.buf[consumed:])
		d.buf = d.buf[:len(d.buf)-consumed]
	}
}

// idle is called when a poll expired; a partial sequence left over has no
// follow-up coming (lone ESC, truncated CSI) and is dropped
func (d *decoder) idle() {
	d.buf = d.buf[:0]
}

// next pops the oldest decoded key
func (d *decoder) next() (rune, bool) {
	if len(d.keys) == 0 {
		return 0, false
	}
	r := d.keys[0]
	copy(d.keys, d.keys[1:])
	d.keys = d.keys[:len(d.keys)-1]
	return r, true
}

// parse decodes data and returns bytes consumed (stop on incomplete sequence)
func (d *decoder) parse(data []byte) int {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		// Fast path: printable ASCII
		if b >= 0x20 && b < 0x7f {
			d.keys = append(d.keys, rune(b))
			i++
			continue
		}

		if b == 0x1b {
			if i+1 >= n {
				return i // Wait for more data
			}
			consumed := d.parseEscape(data[i:])
			if consumed == 0 {
				return i
			}
			i += consumed
			continue
		}

		// UTF-8 multibyte
		if b >= 0x80 {
			if !utf8.FullRune(data[i:]) {
				return i
			}
			r, size := utf8.DecodeRune(data[i:])
			if r != utf8.RuneError {
				d.keys = append(d.keys, r)
			}
			i += size
			continue
		}

		// Control characters and DEL carry no binding
		i++
	}
	return i
}

// parseEscape consumes one escape sequence, returns 0 on incomplete
func (d *decoder) parseEscape(data []byte) int {
	switch data[1] {
	case '[':
		return d.parseCSI(data)
	case 'O':
		// SS3: ESC O <final>, sent by application cursor mode
		if len(data) < 3 {
			return 0
		}
		d.arrow(data[2])
		return 3
	case 0x1b:
		// ESC ESC: first ESC is standalone
		return 1
	}

	// Alt+key: ESC prefix dropped, key kept
	return 1
}

// parseCSI consumes ESC [ params final
func (d *decoder) parseCSI(data []byte) int {
	maxScan := len(data)
	if maxScan > 16 {
		maxScan = 16
	}

	for end := 2; end < maxScan; end++ {
		b := data[end]
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			// Plain or modified arrows: ESC [ A, ESC [ 1 ; 5 A
			d.arrow(b)
			return end + 1
		}
		if b < 0x20 || b > 0x7e {
			// Malformed; drop the introducer and resync
			return 2
		}
	}

	if len(data) >= 16 {
		// Overlong sequence, discard what was scanned
		return maxScan
	}
	return 0
}

// arrow maps a cursor-key final byte to its movement rune
func (d *decoder) arrow(final byte) {
	switch final {
	case 'A':
		d.keys = append(d.keys, constant.KeyUp)
	case 'B':
		d.keys = append(d.keys, constant.KeyDown)
	case 'C':
		d.keys = append(d.keys, constant.KeyRight)
	case 'D':
		d.keys = append(d.keys, constant.KeyLeft)
	}
}
