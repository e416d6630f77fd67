package tools

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railgate/railgate/pkg/stations"
)

func testToolset() *Toolset {
	store := stations.NewStore()
	store.Swap(toolsetCatalog())
	return &Toolset{Store: store}
}

func TestRegistry_PublishesSixTools(t *testing.T) {
	registry := testToolset().Registry()

	assert.Equal(t, []string{
		"query-tickets",
		"search-stations",
		"query-transfer",
		"get-train-route-stations",
		"get-train-no-by-train-code",
		"get-current-time",
	}, registry.Names())

	for _, tool := range registry.List() {
		assert.NotEmpty(t, tool.Description, tool.Name)
		assert.NotNil(t, tool.InputSchema, tool.Name)
		assert.NotNil(t, tool.Handler, tool.Name)
	}
}

func TestCurrentTime_DefaultTimezone(t *testing.T) {
	content, err := testToolset().currentTime(context.Background(), map[string]any{})
	require.NoError(t, err)
	require.Len(t, content, 1)

	assert.Contains(t, content[0].Text, "Asia/Shanghai")

	shanghai, err := time.LoadLocation("Asia/Shanghai")
	require.NoError(t, err)
	assert.Contains(t, content[0].Text, time.Now().In(shanghai).Format("2006-01-02"))
}

func TestCurrentTime_ExplicitTimezone(t *testing.T) {
	content, err := testToolset().currentTime(context.Background(), map[string]any{"timezone": "UTC"})
	require.NoError(t, err)
	assert.Contains(t, content[0].Text, "UTC")
}

func TestCurrentTime_UnknownTimezoneFallsBack(t *testing.T) {
	content, err := testToolset().currentTime(context.Background(), map[string]any{"timezone": "Mars/Olympus"})
	require.NoError(t, err)
	assert.Contains(t, content[0].Text, "Asia/Shanghai")
}

func TestSearchStations_Match(t *testing.T) {
	content, err := testToolset().searchStations(context.Background(), map[string]any{"query": "bjn"})
	require.NoError(t, err)
	require.NotEmpty(t, content)

	assert.Contains(t, content[0].Text, "北京南")
	assert.Contains(t, content[0].Text, "VNP")

	// The structured block rides along with the markdown.
	require.Len(t, content, 2)
	assert.Equal(t, "json", content[1].Type)
}

func TestSearchStations_NoMatch(t *testing.T) {
	content, err := testToolset().searchStations(context.Background(), map[string]any{"query": "zzzzz"})
	require.NoError(t, err)
	require.Len(t, content, 1)
	assert.Contains(t, content[0].Text, "未找到匹配的车站")
}

func TestSearchStations_EmptyQuery(t *testing.T) {
	content, err := testToolset().searchStations(context.Background(), map[string]any{})
	require.NoError(t, err)
	assert.Contains(t, content[0].Text, "请输入搜索关键词")
}

func TestSearchStations_LimitClamped(t *testing.T) {
	toolset := testToolset()

	content, err := toolset.searchStations(context.Background(), map[string]any{"query": "北京", "limit": 99.0})
	require.NoError(t, err)
	// Out-of-range limits fall back to the default rather than erroring.
	assert.Contains(t, content[0].Text, "搜索结果")
}

func TestQueryTickets_MissingArguments(t *testing.T) {
	content, err := testToolset().queryTickets(context.Background(), map[string]any{})
	require.NoError(t, err)
	require.Len(t, content, 1)

	assert.Contains(t, content[0].Text, "参数验证失败")
	assert.Contains(t, content[0].Text, "出发站不能为空")
	assert.Contains(t, content[0].Text, "到达站不能为空")
	assert.Contains(t, content[0].Text, "出发日期不能为空")
}

func TestQueryTickets_BadDateFormat(t *testing.T) {
	content, err := testToolset().queryTickets(context.Background(), map[string]any{
		"from_station": "北京南",
		"to_station":   "上海虹桥",
		"train_date":   "09/01/2026",
	})
	require.NoError(t, err)
	assert.Contains(t, content[0].Text, "日期格式错误")
}

func TestQueryTickets_UnknownStationSuggests(t *testing.T) {
	content, err := testToolset().queryTickets(context.Background(), map[string]any{
		"from_station": "北京",
		"to_station":   "上海虹桥",
		"train_date":   "2030-01-01",
	})
	require.NoError(t, err)
	require.Len(t, content, 1)
	assert.Contains(t, content[0].Text, "出发站无效或无法识别")
	assert.Contains(t, content[0].Text, "北京南")
}
