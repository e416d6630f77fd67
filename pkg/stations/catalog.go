package stations

import (
	"strings"

	"golang.org/x/exp/slices"
)

const nameSuffix = "站"

// Catalog is an immutable, feed-ordered collection of station records.
// All lookups are read only and safe for concurrent use.
type Catalog struct {
	records []StationRecord
}

func NewCatalog(records []StationRecord) *Catalog {
	return &Catalog{records: records}
}

func (c *Catalog) Len() int {
	return len(c.records)
}

func (c *Catalog) Records() []StationRecord {
	return c.records
}

// NormaliseName strips at most one trailing "站" suffix, mirroring how the
// booking portal treats "北京站" and "北京" as the same station. Two-rune
// names keep their suffix as it may be part of the name itself.
func NormaliseName(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasSuffix(name, nameSuffix) && len([]rune(name)) > 2 {
		name = strings.TrimSuffix(name, nameSuffix)
	}
	return name
}

// ByExactName finds the station whose name equals the suffix-normalised
// query. Feed order breaks ties: the earliest inserted record wins.
func (c *Catalog) ByExactName(name string) (StationRecord, bool) {
	name = NormaliseName(name)
	for _, record := range c.records {
		if record.Name == name {
			return record, true
		}
	}
	return StationRecord{}, false
}

// ByCode finds the station with the given telecode. Codes are canonically
// uppercase so the comparison is case sensitive.
func (c *Catalog) ByCode(code string) (StationRecord, bool) {
	for _, record := range c.records {
		if record.Code == code {
			return record, true
		}
	}
	return StationRecord{}, false
}

// Search runs a two phase lookup: an exact pass over name, code, pinyin and
// short pinyin, then a substring pass (also over city) for whatever room is
// left under limit. Exact matches always precede fuzzy ones and the result
// never exceeds limit. An empty result is not an error.
func (c *Catalog) Search(query string, limit int) []StationRecord {
	query = strings.ToLower(NormaliseName(query))

	results := []StationRecord{}
	var matched []int

	for i, record := range c.records {
		if query == strings.ToLower(record.Name) ||
			query == strings.ToLower(record.Code) ||
			query == strings.ToLower(record.Pinyin) ||
			query == strings.ToLower(record.PinyinShort) {
			results = append(results, record)
			matched = append(matched, i)

			if len(results) >= limit {
				return results
			}
		}
	}

	for i, record := range c.records {
		if slices.Contains(matched, i) {
			continue
		}

		if strings.Contains(strings.ToLower(record.Name), query) ||
			strings.Contains(strings.ToLower(record.Pinyin), query) ||
			strings.Contains(strings.ToLower(record.PinyinShort), query) ||
			strings.Contains(strings.ToLower(record.Code), query) ||
			(record.City != "" && strings.Contains(strings.ToLower(record.City), query)) {
			results = append(results, record)

			if len(results) >= limit {
				break
			}
		}
	}

	return results
}

// ResolveCode turns a station token - already a telecode, or a display
// name - into a telecode. This is the canonical resolution step in front of
// every upstream query. Tokens that already have the telecode shape pass
// through without consulting the catalog.
func (c *Catalog) ResolveCode(token string) (string, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	if IsTelecode(token) {
		return token, true
	}

	if record, found := c.ByExactName(token); found {
		return record.Code, true
	}

	// The feed occasionally grows codes before names catch up.
	if record, found := c.ByCode(token); found {
		return record.Code, true
	}

	return "", false
}
