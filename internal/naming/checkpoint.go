package naming

import (
	"fmt"
	"strconv"
	"strings"
)

// Checkpoint version ranks. An early-stopped checkpoint ranks below a plain
// in-progress one; a best-checkpoint outranks both.
var checkpointTagRanks = map[string]int{
	"(ES)": -1,
	"(*)":  2,
}

const defaultCheckpointRank = 0

// BestCheckpoint returns whichever of two checkpoint labels should be treated
// as more authoritative. A label is either a bare epoch count ("200") or an
// epoch count with a version tag ("200 (ES)", "150 (*)"); a trailing
// " epochs" is ignored. Higher version rank wins, ties break on higher epoch
// count, and exact ties return the first label. An unrecognized version tag
// is an error.
func BestCheckpoint(a, b string) (string, error) {
	epochsA, rankA, err := parseCheckpointLabel(a)
	if err != nil {
		return "", err
	}
	epochsB, rankB, err := parseCheckpointLabel(b)
	if err != nil {
		return "", err
	}

	switch {
	case rankA > rankB:
		return a, nil
	case rankB > rankA:
		return b, nil
	case epochsB > epochsA:
		return b, nil
	default:
		return a, nil
	}
}

func parseCheckpointLabel(label string) (epochs, rank int, err error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(label), " epochs")
	fields := strings.Fields(trimmed)

	switch len(fields) {
	case 1:
		epochs, err = strconv.Atoi(fields[0])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid checkpoint label %q: %w", label, err)
		}
		return epochs, defaultCheckpointRank, nil
	case 2:
		epochs, err = strconv.Atoi(fields[0])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid checkpoint label %q: %w", label, err)
		}
		rank, ok := checkpointTagRanks[fields[1]]
		if !ok {
			return 0, 0, fmt.Errorf("unrecognized checkpoint version tag %q in label %q", fields[1], label)
		}
		return epochs, rank, nil
	default:
		return 0, 0, fmt.Errorf("invalid checkpoint label %q", label)
	}
}
