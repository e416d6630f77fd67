package tickets

import "strings"

// QueryContext is the request the record was fetched for. It travels with
// the decoded record for display purposes only - nothing in it is derived
// from the record itself.
type QueryContext struct {
	FromStation string `json:"from_station" groups:"basic,detailed"`
	ToStation   string `json:"to_station" groups:"basic,detailed"`
	TrainDate   string `json:"train_date" groups:"basic,detailed"`
}

// TicketRecord is one decoded left-ticket row.
type TicketRecord struct {
	TrainCode       string `json:"train_code" groups:"basic,detailed"`
	FromStationCode string `json:"from_station_code" groups:"detailed"`
	ToStationCode   string `json:"to_station_code" groups:"detailed"`
	StartTime       string `json:"start_time" groups:"basic,detailed"`
	ArriveTime      string `json:"arrive_time" groups:"basic,detailed"`
	Duration        string `json:"duration" groups:"basic,detailed"`
	CanWebBuy       string `json:"can_web_buy" groups:"detailed"`

	Seats SeatAvailability `json:"seats" groups:"basic,detailed"`

	Query QueryContext `json:"query" groups:"detailed"`
}

// SeatAvailability holds the remaining-count strings per seat class. An
// empty string means the class is not offered on that train and must be
// omitted from any rendering.
type SeatAvailability struct {
	Business            string `json:"business,omitempty" groups:"basic,detailed"`
	FirstClass          string `json:"first_class,omitempty" groups:"basic,detailed"`
	SecondClass         string `json:"second_class,omitempty" groups:"basic,detailed"`
	AdvancedSoftSleeper string `json:"advanced_soft_sleeper,omitempty" groups:"basic,detailed"`
	SoftSleeper         string `json:"soft_sleeper,omitempty" groups:"basic,detailed"`
	HardSleeper         string `json:"hard_sleeper,omitempty" groups:"basic,detailed"`
	SoftSeat            string `json:"soft_seat,omitempty" groups:"basic,detailed"`
	HardSeat            string `json:"hard_seat,omitempty" groups:"basic,detailed"`
	NoSeat              string `json:"no_seat,omitempty" groups:"basic,detailed"`
	Dongwo              string `json:"dongwo,omitempty" groups:"basic,detailed"`
}

// MinTicketFields is the smallest field count a left-ticket row can have
// and still be decodable. Shorter rows are malformed and skipped.
const MinTicketFields = 35

// ticketFieldIndex is the authoritative 0-based position of every field we
// read from a left-ticket row. The upstream wire format is undocumented and
// positional; when it shifts, this table is the only thing to change.
var ticketFieldIndex = map[string]int{
	"train_code":            3,
	"from_station_code":     6,
	"to_station_code":       7,
	"start_time":            8,
	"arrive_time":           9,
	"duration":              10,
	"can_web_buy":           11,
	"advanced_soft_sleeper": 21,
	"soft_sleeper":          23,
	"soft_seat":             24,
	"no_seat":               26,
	"hard_sleeper":          28,
	"hard_seat":             29,
	"second_class":          30,
	"first_class":           31,
	"business":              32,
	"dongwo":                33,
}

// Decode converts one |-delimited left-ticket row into a TicketRecord.
// Rows with fewer than MinTicketFields fields return nil - the caller
// skips them and carries on with the rest of the batch.
func Decode(raw string, query QueryContext) *TicketRecord {
	fields := strings.Split(raw, "|")
	if len(fields) < MinTicketFields {
		return nil
	}

	at := func(name string) string {
		return fields[ticketFieldIndex[name]]
	}

	return &TicketRecord{
		TrainCode:       at("train_code"),
		FromStationCode: at("from_station_code"),
		ToStationCode:   at("to_station_code"),
		StartTime:       at("start_time"),
		ArriveTime:      at("arrive_time"),
		Duration:        at("duration"),
		CanWebBuy:       at("can_web_buy"),
		Seats: SeatAvailability{
			Business:            at("business"),
			FirstClass:          at("first_class"),
			SecondClass:         at("second_class"),
			AdvancedSoftSleeper: at("advanced_soft_sleeper"),
			SoftSleeper:         at("soft_sleeper"),
			HardSleeper:         at("hard_sleeper"),
			SoftSeat:            at("soft_seat"),
			HardSeat:            at("hard_seat"),
			NoSeat:              at("no_seat"),
			Dongwo:              at("dongwo"),
		},
		Query: query,
	}
}

// DecodeBatch decodes every row it can and drops the rest.
func DecodeBatch(rows []string, query QueryContext) []*TicketRecord {
	var records []*TicketRecord
	for _, row := range rows {
		if record := Decode(row, query); record != nil {
			records = append(records, record)
		}
	}
	return records
}

// DisplayLines renders the offered seat classes in the portal's fixed
// order. Classes with an empty remaining count are not offered and do not
// appear at all.
func (s SeatAvailability) DisplayLines() []string {
	ordered := []struct {
		label string
		value string
	}{
		{"商务座", s.Business},
		{"一等座", s.FirstClass},
		{"二等座", s.SecondClass},
		{"高级软卧", s.AdvancedSoftSleeper},
		{"软卧", s.SoftSleeper},
		{"硬卧", s.HardSleeper},
		{"软座", s.SoftSeat},
		{"硬座", s.HardSeat},
		{"无座", s.NoSeat},
		{"动卧", s.Dongwo},
	}

	var lines []string
	for _, entry := range ordered {
		if entry.value != "" {
			lines = append(lines, entry.label+":"+entry.value)
		}
	}
	return lines
}
