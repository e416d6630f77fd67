package tools

import (
	"github.com/railgate/railgate/pkg/mcp"
	"github.com/railgate/railgate/pkg/stations"
	"github.com/railgate/railgate/pkg/upstream"
)

// Toolset binds the six railway tools to their collaborators: the live
// station catalog and the upstream booking portal client.
type Toolset struct {
	Store    *stations.Store
	Upstream *upstream.Client
}

func (t *Toolset) catalog() *stations.Catalog {
	return t.Store.Get()
}

// Registry builds the MCP tool registry this server publishes.
func (t *Toolset) Registry() *mcp.Registry {
	return mcp.NewRegistry(
		mcp.Tool{
			Name:        "query-tickets",
			Description: "官方12306余票/车次/座席/时刻一站式查询。输入出发站、到达站、日期，返回所有可购车次、时刻、历时、各席别余票等详细信息。支持中文名、三字码。",
			InputSchema: queryTicketsSchema(),
			Handler:     t.queryTickets,
		},
		mcp.Tool{
			Name:        "search-stations",
			Description: "智能模糊查站，支持中文名、拼音、简拼、三字码等多种方式，快速获取车站全名与三字码。",
			InputSchema: searchStationsSchema(),
			Handler:     t.searchStations,
		},
		mcp.Tool{
			Name:        "query-transfer",
			Description: "官方中转换乘方案查询。输入出发站、到达站、日期，可选中转站/无座/学生票，自动分页抓取全部中转方案，输出每段车次、时刻、余票、等候时间、总历时等详细信息。",
			InputSchema: queryTransferSchema(),
			Handler:     t.queryTransfer,
		},
		mcp.Tool{
			Name:        "get-train-route-stations",
			Description: "列车经停站全表查询。支持输入车次号或官方编号，自动转换，返回所有经停站、到发时刻、停留时间。支持三字码/全名。",
			InputSchema: trainRouteSchema(),
			Handler:     t.trainRouteStations,
		},
		mcp.Tool{
			Name:        "get-train-no-by-train-code",
			Description: "车次号转官方唯一编号（train_no），支持三字码/全名。常用于经停站查询前置转换。",
			InputSchema: trainNoSchema(),
			Handler:     t.trainNoByTrainCode,
		},
		mcp.Tool{
			Name:        "get-current-time",
			Description: "获取当前日期和时间信息。返回当前日期、时间，方便用户在查询火车票时选择正确的日期。",
			InputSchema: currentTimeSchema(),
			Handler:     t.currentTime,
		},
	)
}
