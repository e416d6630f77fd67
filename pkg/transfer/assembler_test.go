package transfer

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedPageSource struct {
	pages   [][]RawGroup
	err     error
	errAt   int
	fetches int
	offsets []int
}

func (s *scriptedPageSource) FetchPage(ctx context.Context, offset int) ([]RawGroup, error) {
	s.offsets = append(s.offsets, offset)
	page := s.fetches
	s.fetches++

	if s.err != nil && page == s.errAt {
		return nil, s.err
	}
	if page >= len(s.pages) {
		return nil, nil
	}
	return s.pages[page], nil
}

func groupsOf(n int) []RawGroup {
	groups := make([]RawGroup, n)
	for i := range groups {
		groups[i] = RawGroup{
			MiddleStationName: fmt.Sprintf("中转%d", i),
			TrainList: []RawLeg{
				{"station_train_code": "G1"},
				{"station_train_code": "G2"},
			},
		}
	}
	return groups
}

func TestFetchAll_StopsOnPartialPage(t *testing.T) {
	source := &scriptedPageSource{pages: [][]RawGroup{groupsOf(10), groupsOf(10), groupsOf(4)}}

	groups, err := FetchAll(context.Background(), source)
	require.NoError(t, err)

	assert.Len(t, groups, 24)
	assert.Equal(t, 3, source.fetches)
	assert.Equal(t, []int{0, 10, 20}, source.offsets)
}

func TestFetchAll_StopsOnEmptyPage(t *testing.T) {
	source := &scriptedPageSource{pages: [][]RawGroup{groupsOf(10)}}

	groups, err := FetchAll(context.Background(), source)
	require.NoError(t, err)

	assert.Len(t, groups, 10)
	assert.Equal(t, 2, source.fetches)
}

func TestFetchAll_EmptyFirstPage(t *testing.T) {
	source := &scriptedPageSource{}

	groups, err := FetchAll(context.Background(), source)
	require.NoError(t, err)
	assert.Empty(t, groups)
	assert.Equal(t, 1, source.fetches)
}

func TestFetchAll_PageErrorAbortsEverything(t *testing.T) {
	source := &scriptedPageSource{
		pages: [][]RawGroup{groupsOf(10), groupsOf(10)},
		err:   errors.New("session expired"),
		errAt: 1,
	}

	groups, err := FetchAll(context.Background(), source)
	assert.Error(t, err)
	assert.Nil(t, groups)
}

func TestAssemble_PrefersFullList(t *testing.T) {
	groups := []RawGroup{{
		MiddleStationName: "南京南",
		WaitTime:          "00:37",
		TotalDuration:     "07:12",
		FullList: []RawLeg{
			{"station_train_code": "G101", "from_station_name": "北京南", "to_station_name": "南京南", "start_time": "08:00", "arrive_time": "11:40", "lishi": "03:40"},
			{"station_train_code": "G7001", "from_station_name": "南京南", "to_station_name": "上海虹桥", "start_time": "12:17", "arrive_time": "13:45", "lishi": "01:28"},
		},
		TrainList: []RawLeg{{"station_train_code": "ignored"}},
	}}

	itineraries := Assemble(groups)
	require.Len(t, itineraries, 1)

	plan := itineraries[0]
	assert.Equal(t, "南京南", plan.ConnectionStation)
	assert.Equal(t, "00:37", plan.WaitTime)
	assert.Equal(t, "07:12", plan.TotalDuration)
	require.Len(t, plan.Legs, 2)
	assert.Equal(t, "G101", plan.Legs[0].TrainCode)
	assert.Equal(t, "G7001", plan.Legs[1].TrainCode)
}

func TestAssemble_FallsBackToTrainList(t *testing.T) {
	groups := []RawGroup{{
		TrainList: []RawLeg{
			{"station_train_code": "K101", "to_station_name": "郑州"},
			{"station_train_code": "K205"},
		},
	}}

	itineraries := Assemble(groups)
	require.Len(t, itineraries, 1)

	// Missing middle station falls back to the first leg's arrival.
	assert.Equal(t, "郑州", itineraries[0].ConnectionStation)
}

func TestAssemble_DropsSingleLegGroups(t *testing.T) {
	groups := []RawGroup{
		{FullList: []RawLeg{{"station_train_code": "G1"}}},
		{},
	}

	assert.Empty(t, Assemble(groups))
}

func TestAssembleLeg_SeatLineRequiresKeyPresence(t *testing.T) {
	leg := assembleLeg(RawLeg{
		"station_train_code": "G101",
		"ze_num":             "有",
		"zy_num":             "",
		"swz_num":            "--",
	})

	// Present keys render even with placeholder values; absent keys do not
	// render at all.
	assert.Equal(t, []string{"商务座:--", "一等座:--", "二等座:有"}, leg.SeatLines)
}

func TestAssembleLeg_MissingCoreFields(t *testing.T) {
	leg := assembleLeg(RawLeg{})

	assert.Equal(t, "?", leg.TrainCode)
	assert.Equal(t, "?", leg.FromStation)
	assert.Equal(t, "?", leg.ToStation)
	assert.Empty(t, leg.Duration)
	assert.Empty(t, leg.SeatLines)
}
