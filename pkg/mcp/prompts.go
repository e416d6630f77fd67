package mcp

type Prompt struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
}

type ResourceTemplate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

var promptCatalog = []Prompt{
	{
		Name:        "查询余票",
		Title:       "查询余票",
		Description: "查询某天某线路的余票信息",
		Prompt:      "查询明天北京到上海的高铁票",
	},
	{
		Name:        "中转换乘",
		Title:       "中转换乘",
		Description: "查找需要中转的车次方案",
		Prompt:      "查询北京到广州的中转换乘方案",
	},
	{
		Name:        "车站模糊搜索",
		Title:       "车站模糊搜索",
		Description: "输入拼音、简拼或三字码快速查找车站",
		Prompt:      "查找南昌的三字码",
	},
	{
		Name:        "经停站查询",
		Title:       "经停站查询",
		Description: "查询某车次的所有经停站和时刻表",
		Prompt:      "查询G1234的经停站",
	},
	{
		Name:        "获取当前时间",
		Title:       "获取当前时间",
		Description: "获取今天、明天、后天等常用日期",
		Prompt:      "现在的日期和明天的日期",
	},
}

var templateCatalog = []ResourceTemplate{
	{
		ID:          "query_ticket_template",
		Name:        "query_ticket_template",
		Title:       "查询余票模板",
		Description: "快速查询某天某线路的余票信息",
		Content:     "查询{date}{from_station}到{to_station}的高铁票",
	},
	{
		ID:          "transfer_template",
		Name:        "transfer_template",
		Title:       "中转换乘模板",
		Description: "查找需要中转的车次方案",
		Content:     "查询{from_station}到{to_station}的中转换乘方案",
	},
}
