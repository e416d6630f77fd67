package transfer

import "context"

// PageSize is the upstream's fixed page length for transfer queries.
const PageSize = 10

// PageSource fetches one page of middle groups at the given offset. Each
// fetch depends on session state from the previous one, so pages are always
// pulled sequentially.
type PageSource interface {
	FetchPage(ctx context.Context, offset int) ([]RawGroup, error)
}

// FetchAll walks the offset pagination until the upstream runs dry: keep
// fetching while the last page came back full, stop on an empty or partial
// page. Any page error aborts the whole query - a partial itinerary list is
// never returned silently.
func FetchAll(ctx context.Context, source PageSource) ([]RawGroup, error) {
	var groups []RawGroup

	for offset := 0; ; offset += PageSize {
		page, err := source.FetchPage(ctx, offset)
		if err != nil {
			return nil, err
		}

		if len(page) == 0 {
			break
		}

		groups = append(groups, page...)

		if len(page) < PageSize {
			break
		}
	}

	return groups, nil
}

// seatClassKeys is the portal's fixed seat-class ordering for the transfer
// feed. A class line is emitted exactly when its key is present on the leg,
// even when the value is a placeholder dash.
var seatClassKeys = []struct {
	key   string
	label string
}{
	{"swz_num", "商务座"},
	{"tz_num", "特等座"},
	{"zy_num", "一等座"},
	{"ze_num", "二等座"},
	{"gr_num", "高级软卧"},
	{"rw_num", "软卧/动卧"},
	{"rz_num", "一等卧/软座"},
	{"yw_num", "硬卧"},
	{"yz_num", "硬座"},
	{"wz_num", "无座"},
}

func assembleLeg(raw RawLeg) Leg {
	leg := Leg{
		TrainCode:   raw.str("station_train_code", "?"),
		FromStation: raw.str("from_station_name", "?"),
		ToStation:   raw.str("to_station_name", "?"),
		StartTime:   raw.str("start_time", "?"),
		ArriveTime:  raw.str("arrive_time", "?"),
		Duration:    raw.str("lishi", ""),
	}

	for _, class := range seatClassKeys {
		if _, present := raw[class.key]; present {
			value := raw.str(class.key, "--")
			if value == "" {
				value = "--"
			}
			leg.SeatLines = append(leg.SeatLines, class.label+":"+value)
		}
	}

	return leg
}

// Assemble turns raw middle groups into itineraries, preserving upstream
// pagination order. Groups prefer their full leg list and fall back to the
// partial one; anything left with fewer than two legs is not a transfer
// and is dropped without comment. No re-ranking happens here.
func Assemble(groups []RawGroup) []Itinerary {
	var itineraries []Itinerary

	for _, group := range groups {
		rawLegs := group.FullList
		if len(rawLegs) == 0 {
			rawLegs = group.TrainList
		}
		if len(rawLegs) < 2 {
			continue
		}

		legs := make([]Leg, 0, len(rawLegs))
		for _, raw := range rawLegs {
			legs = append(legs, assembleLeg(raw))
		}

		connection := group.MiddleStationName
		if connection == "" {
			connection = legs[0].ToStation
		}

		itineraries = append(itineraries, Itinerary{
			ConnectionStation: connection,
			TotalDuration:     group.TotalDuration,
			WaitTime:          group.WaitTime,
			Legs:              legs,
		})
	}

	return itineraries
}
