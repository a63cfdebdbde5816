package naming

const labelAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// LabelSequence hands out short two-character display labels in a fixed
// order: the Cartesian product of the alphabet 0-9A-Z with itself, skipping
// all-digit pairs, which are reserved. Each sequence owns its own cursor; a
// fresh sequence restarts from "0A".
type LabelSequence struct {
	cursor int
}

// NewLabelSequence returns a sequence positioned at the first label.
func NewLabelSequence() *LabelSequence {
	return &LabelSequence{}
}

// Next returns the next label and advances the cursor. It panics once the
// label space (1196 usable pairs) is exhausted.
func (s *LabelSequence) Next() string {
	n := len(labelAlphabet)
	for {
		if s.cursor >= n*n {
			panic("naming: label sequence exhausted")
		}
		first := labelAlphabet[s.cursor/n]
		second := labelAlphabet[s.cursor%n]
		s.cursor++
		if isDigit(first) && isDigit(second) {
			continue
		}
		return string([]byte{first, second})
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
