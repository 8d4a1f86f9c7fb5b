// Package sanitize removes terminal control sequences from text.
//
// Tab renderers frequently color their output or move the cursor. Those
// sequences carry no tablature and would corrupt column arithmetic, so they
// are removed before any structural analysis. Recognition follows the
// ECMA-48 parser in github.com/charmbracelet/x/ansi: CSI (colors, cursor
// movement, erase), OSC, DCS, APC/PM/SOS strings and two byte escapes are
// all removed. A sequence that never completes, either still open when the
// input ends or cut off by a byte that cannot continue it (such as
// "\x1b[3" followed by a newline), is not recognized and its bytes are kept
// as literal text. So are lone C1 bytes that introduce no sequence.
package sanitize

import (
	"strings"

	"github.com/signadot/tabflow/debug"

	"github.com/charmbracelet/x/ansi"
)

const esc = 0x1b

// String returns s with every complete escape sequence removed. All other
// characters, including control characters such as tab and newline, are
// passed through unchanged.
func String(s string) string {
	if !hasIntroducer(s) {
		return s
	}
	var (
		b       strings.Builder
		state   byte
		removed int
	)
	b.Grow(len(s))
	for len(s) > 0 {
		seq, width, n, newState := ansi.DecodeSequence(s, state, nil)
		if n <= 0 {
			// never expected; keep the remainder rather than spin.
			b.WriteString(s)
			break
		}
		switch {
		case newState != ansi.NormalState:
			// still open at end of input
			b.WriteString(seq)
		case width == 0 && complete(seq):
			removed++
		default:
			b.WriteString(seq)
		}
		state = ansi.NormalState
		s = s[n:]
	}
	if debug.Sanitize() {
		debug.Logf("sanitize: removed %d sequences\n", removed)
	}
	return b.String()
}

// Bytes is String for byte slices.
func Bytes(d []byte) []byte {
	return []byte(String(string(d)))
}

func hasIntroducer(s string) bool {
	for i := 0; i < len(s); i++ {
		if isIntroducer(s[i]) {
			return true
		}
	}
	return false
}

// isIntroducer reports whether c starts an escape sequence: ESC or one of
// the 8-bit C1 introducers.
func isIntroducer(c byte) bool {
	return c == esc || (c >= 0x80 && c <= 0x9f)
}

// complete reports whether seq, as returned by the decoder, is a whole
// escape sequence. The decoder also returns the bytes of a sequence that
// was aborted before its final byte or terminator.
func complete(seq string) bool {
	if len(seq) < 2 {
		return false
	}
	last := seq[len(seq)-1]
	switch {
	case ansi.HasOscPrefix(seq):
		return last == ansi.BEL || terminated(seq)
	case ansi.HasDcsPrefix(seq), ansi.HasApcPrefix(seq), ansi.HasSosPrefix(seq), ansi.HasPmPrefix(seq):
		return terminated(seq)
	case ansi.HasCsiPrefix(seq):
		intro := 1
		if seq[0] == esc {
			intro = 2
		}
		return len(seq) > intro && last >= '@' && last <= '~'
	case seq[0] == esc:
		return last >= '0' && last <= '~'
	}
	return false
}

func terminated(seq string) bool {
	return seq[len(seq)-1] == ansi.ST || strings.HasSuffix(seq, "\x1b\\")
}
