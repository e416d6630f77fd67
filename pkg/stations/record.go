package stations

// StationRecord is one entry from the 12306 station master-data feed.
//
// Code is the telecode - the 3 letter uppercase identifier every upstream
// query is keyed on. SequenceNumber comes straight from the feed and is
// never interpreted.
type StationRecord struct {
	Name           string `json:"name" groups:"basic,detailed"`
	Code           string `json:"code" groups:"basic,detailed"`
	Pinyin         string `json:"pinyin" groups:"detailed"`
	PinyinShort    string `json:"pinyin_short" groups:"detailed"`
	SequenceNumber string `json:"sequence_number" groups:"detailed"`
	City           string `json:"city,omitempty" groups:"detailed"`

	// Suspect marks records where a field failed its shape check and no
	// replacement could be found in the heal window. The record is still
	// served, callers just get the raw value.
	Suspect bool `json:"-"`
}

// IsTelecode reports whether val has the telecode shape: exactly 3 ASCII
// uppercase letters.
func IsTelecode(val string) bool {
	if len(val) != 3 {
		return false
	}
	for i := 0; i < len(val); i++ {
		if val[i] < 'A' || val[i] > 'Z' {
			return false
		}
	}
	return true
}

func isPinyin(val string) bool {
	if len(val) < 2 {
		return false
	}
	return allLowerAlpha(val)
}

func isPinyinShort(val string) bool {
	if len(val) < 1 || len(val) > 8 {
		return false
	}
	return allLowerAlpha(val)
}

func allLowerAlpha(val string) bool {
	for i := 0; i < len(val); i++ {
		if val[i] < 'a' || val[i] > 'z' {
			return false
		}
	}
	return true
}
