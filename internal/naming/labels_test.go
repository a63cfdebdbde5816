package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelSequenceFirstLabels(t *testing.T) {
	seq := NewLabelSequence()

	expected := []string{
		"0A", "0B", "0C", "0D", "0E", "0F", "0G", "0H", "0I", "0J",
		"0K", "0L", "0M", "0N", "0O", "0P", "0Q", "0R", "0S", "0T",
		"0U", "0V", "0W", "0X", "0Y", "0Z", "1A",
	}
	for _, want := range expected {
		assert.Equal(t, want, seq.Next())
	}
}

func TestLabelSequenceSkipsAllDigitPairs(t *testing.T) {
	seq := NewLabelSequence()

	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		label := seq.Next()
		require.Len(t, label, 2)
		assert.False(t, isDigit(label[0]) && isDigit(label[1]),
			"label %q is an all-digit pair", label)
		assert.False(t, seen[label], "label %q repeated", label)
		seen[label] = true
	}
}

func TestLabelSequenceRestartsWhenRebuilt(t *testing.T) {
	first := NewLabelSequence()
	first.Next()
	first.Next()

	assert.Equal(t, "0A", NewLabelSequence().Next())
}
