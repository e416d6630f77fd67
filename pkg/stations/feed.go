package stations

import (
	"errors"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
)

// ErrFeedFormat means the feed text contained neither of the known
// wrapping patterns around the @-delimited record sequence.
var ErrFeedFormat = errors.New("station feed wrapper not found")

var (
	feedAssignmentRegex = regexp.MustCompile(`var station_names ?= ?'(.*?)';`)
	feedBareRegex       = regexp.MustCompile(`'(@[^']+)';`)
)

// HealWindows bounds the scan-and-substitute repair of shifted feed fields.
// A window of N examines fields 1 through N of the record as substitution
// candidates. The defaults cover the upstream feed's observed anomalies and
// can be overridden from configuration.
type HealWindows struct {
	Code        int `yaml:"code" validate:"gt=1"`
	Pinyin      int `yaml:"pinyin" validate:"gt=1"`
	PinyinShort int `yaml:"pinyin_short" validate:"gt=1"`
}

func DefaultHealWindows() HealWindows {
	return HealWindows{Code: 5, Pinyin: 6, PinyinShort: 7}
}

// healField returns the first of fields 1..window that satisfies valid.
// Pure by design so each field kind is testable on its own.
func healField(fields []string, valid func(string) bool, window int) (string, bool) {
	for idx := 1; idx <= window && idx < len(fields); idx++ {
		if valid(fields[idx]) {
			return fields[idx], true
		}
	}
	return "", false
}

// ParseFeed extracts the @-delimited record sequence from the raw
// station_name.js text and parses every record into a StationRecord,
// preserving feed order.
//
// Records with fewer than 8 fields are skipped with a warning. Fields that
// fail their shape check are repaired from nearby fields where possible;
// irreparable records are kept with the original value and marked Suspect.
// An empty or wholly unparseable sequence yields an empty slice, not an
// error - only a missing wrapper is fatal.
func ParseFeed(feedText string, windows HealWindows) ([]StationRecord, error) {
	match := feedAssignmentRegex.FindStringSubmatch(feedText)
	if match == nil {
		match = feedBareRegex.FindStringSubmatch(feedText)
	}
	if match == nil {
		return nil, ErrFeedFormat
	}

	var records []StationRecord

	for _, raw := range strings.Split(match[1], "@") {
		if raw == "" {
			continue
		}

		fields := strings.Split(raw, "|")
		if len(fields) < 8 {
			log.Warn().Str("record", raw).Msg("Station record has too few fields, skipping")
			continue
		}

		record := StationRecord{
			Name:           strings.TrimSpace(fields[1]),
			Code:           strings.TrimSpace(fields[2]),
			Pinyin:         strings.TrimSpace(fields[3]),
			PinyinShort:    strings.TrimSpace(fields[4]),
			SequenceNumber: strings.TrimSpace(fields[5]),
			City:           strings.TrimSpace(fields[7]),
		}

		if !IsTelecode(record.Code) {
			if healed, ok := healField(fields, IsTelecode, windows.Code); ok {
				log.Warn().Str("station", record.Name).Str("code", healed).Msg("Corrected shifted telecode field")
				record.Code = healed
			} else {
				log.Warn().Str("record", raw).Msg("Telecode failed shape check and could not be repaired")
				record.Suspect = true
			}
		}

		if !isPinyin(record.Pinyin) {
			if healed, ok := healField(fields, isPinyin, windows.Pinyin); ok {
				log.Warn().Str("station", record.Name).Str("pinyin", healed).Msg("Corrected shifted pinyin field")
				record.Pinyin = healed
			} else {
				log.Warn().Str("record", raw).Msg("Pinyin failed shape check and could not be repaired")
				record.Suspect = true
			}
		}

		if !isPinyinShort(record.PinyinShort) {
			if healed, ok := healField(fields, isPinyinShort, windows.PinyinShort); ok {
				log.Warn().Str("station", record.Name).Str("pinyin_short", healed).Msg("Corrected shifted short pinyin field")
				record.PinyinShort = healed
			} else {
				log.Warn().Str("record", raw).Msg("Short pinyin failed shape check and could not be repaired")
				record.Suspect = true
			}
		}

		records = append(records, record)
	}

	return records, nil
}
