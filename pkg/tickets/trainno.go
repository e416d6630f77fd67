package tickets

import (
	"strings"

	"golang.org/x/exp/slices"
)

// bookableMarker is the literal token the portal places before the internal
// train number and the public train code in a left-ticket row.
const bookableMarker = "预订"

// ResolveTrainNo scans a batch of raw left-ticket rows for the row whose
// public train code matches trainCode (case insensitive, trimmed) and
// returns the internal train number the schedule endpoints need.
//
// Rows without the bookable marker, or where the two fields after it run
// past the end of the row, are skipped. On a miss the second return value
// lists every public code that was seen, for caller diagnostics.
func ResolveTrainNo(rows []string, trainCode string) (string, []string, bool) {
	want := strings.ToUpper(strings.TrimSpace(trainCode))

	var seenCodes []string

	for _, row := range rows {
		fields := strings.Split(row, "|")

		idx := slices.Index(fields, bookableMarker)
		if idx < 0 || idx+2 >= len(fields) {
			continue
		}

		trainNo := strings.TrimSpace(fields[idx+1])
		code := strings.ToUpper(strings.TrimSpace(fields[idx+2]))

		if code == want {
			return trainNo, nil, true
		}

		if code != "" && !slices.Contains(seenCodes, code) {
			seenCodes = append(seenCodes, code)
		}
	}

	return "", seenCodes, false
}
