package transfer

import (
	"encoding/json"
	"fmt"
)

// RawLeg is one train segment as the transfer endpoint returns it. Unlike
// the direct left-ticket feed this feed is keyed by name, and whether a
// seat-class key is present at all is significant, so legs stay maps until
// assembly.
type RawLeg map[string]any

func (l RawLeg) str(key, fallback string) string {
	value, ok := l[key]
	if !ok || value == nil {
		return fallback
	}
	if s, ok := value.(string); ok {
		return s
	}
	if number, ok := value.(json.Number); ok {
		return number.String()
	}
	return fmt.Sprint(value)
}

// RawGroup is the upstream's unit of one candidate transfer plan.
type RawGroup struct {
	FullList          []RawLeg `json:"fullList"`
	TrainList         []RawLeg `json:"trainList"`
	MiddleStationName string   `json:"middle_station_name"`
	WaitTime          string   `json:"wait_time"`
	TotalDuration     string   `json:"all_lishi"`
}

// Leg is one assembled segment of an itinerary.
type Leg struct {
	TrainCode   string   `json:"train_code" groups:"basic,detailed"`
	FromStation string   `json:"from_station" groups:"basic,detailed"`
	ToStation   string   `json:"to_station" groups:"basic,detailed"`
	StartTime   string   `json:"start_time" groups:"basic,detailed"`
	ArriveTime  string   `json:"arrive_time" groups:"basic,detailed"`
	Duration    string   `json:"duration,omitempty" groups:"detailed"`
	SeatLines   []string `json:"seat_lines,omitempty" groups:"detailed"`
}

// Itinerary is a ranked transfer plan of two or more legs joined at a
// single connection station. It owns its leg slice outright.
type Itinerary struct {
	ConnectionStation string `json:"connection_station" groups:"basic,detailed"`
	TotalDuration     string `json:"total_duration" groups:"basic,detailed"`
	WaitTime          string `json:"wait_time" groups:"basic,detailed"`
	Legs              []Leg  `json:"legs" groups:"basic,detailed"`
}
