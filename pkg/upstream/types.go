package upstream

import "github.com/railgate/railgate/pkg/transfer"

type leftTicketEnvelope struct {
	Status bool `json:"status"`
	Data   struct {
		Result []string `json:"result"`
	} `json:"data"`
}

type transferEnvelope struct {
	Data struct {
		MiddleList []transfer.RawGroup `json:"middleList"`
	} `json:"data"`
}

// RouteStation is one stop of a train's schedule. The endpoint has shipped
// two key spellings over time, so both are decoded and the accessors pick
// whichever is populated.
type RouteStation struct {
	StationNo       string `json:"station_no"`
	StationName     string `json:"station_name"`
	FromStationNo   string `json:"from_station_no"`
	FromStationName string `json:"from_station_name"`
	ArriveTime      string `json:"arrive_time"`
	StartTime       string `json:"start_time"`
	StopoverTime    string `json:"stopover_time"`
}

func (r RouteStation) Number() string {
	if r.StationNo != "" {
		return r.StationNo
	}
	return r.FromStationNo
}

func (r RouteStation) Name() string {
	if r.StationName != "" {
		return r.StationName
	}
	return r.FromStationName
}

type routeEnvelope struct {
	Data routeData `json:"data"`
}

// routeData covers the several shapes the schedule endpoint has answered
// with: a flat list, a list nested per middle group, or "route".
type routeData struct {
	Data       []RouteStation `json:"data"`
	FullList   []RouteStation `json:"fullList"`
	Route      []RouteStation `json:"route"`
	MiddleList []struct {
		FullList []RouteStation `json:"fullList"`
	} `json:"middleList"`
}

func (d routeData) Stations() []RouteStation {
	if len(d.Data) > 0 {
		return d.Data
	}
	if len(d.MiddleList) > 0 {
		var stations []RouteStation
		for _, middle := range d.MiddleList {
			stations = append(stations, middle.FullList...)
		}
		if len(stations) > 0 {
			return stations
		}
	}
	if len(d.FullList) > 0 {
		return d.FullList
	}
	return d.Route
}
