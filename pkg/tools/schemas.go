package tools

const jsonSchemaDraft = "http://json-schema.org/draft-07/schema#"

func queryTicketsSchema() map[string]any {
	return map[string]any{
		"$schema":     jsonSchemaDraft,
		"type":        "object",
		"title":       "车票查询参数",
		"description": "查询火车票所需的参数",
		"properties": map[string]any{
			"from_station": map[string]any{
				"type": "string", "title": "出发站",
				"description": "出发车站名称，例如：北京、上海、广州", "minLength": 1,
			},
			"to_station": map[string]any{
				"type": "string", "title": "到达站",
				"description": "到达车站名称，例如：北京、上海、广州", "minLength": 1,
			},
			"train_date": map[string]any{
				"type": "string", "title": "出发日期",
				"description": "出发日期，格式：YYYY-MM-DD", "pattern": `^\d{4}-\d{2}-\d{2}$`,
			},
		},
		"required":             []string{"from_station", "to_station", "train_date"},
		"additionalProperties": false,
	}
}

func searchStationsSchema() map[string]any {
	return map[string]any{
		"$schema":     jsonSchemaDraft,
		"type":        "object",
		"title":       "车站搜索参数",
		"description": "搜索火车站所需的参数",
		"properties": map[string]any{
			"query": map[string]any{
				"type": "string", "title": "搜索关键词",
				"description": "车站搜索关键词，支持：车站名称、拼音、简拼等",
				"minLength":   1, "maxLength": 20,
			},
			"limit": map[string]any{
				"type": "integer", "title": "结果数量限制",
				"description": "返回结果的最大数量",
				"minimum":     1, "maximum": 50, "default": 10,
			},
		},
		"required":             []string{"query"},
		"additionalProperties": false,
	}
}

func queryTransferSchema() map[string]any {
	return map[string]any{
		"$schema":     jsonSchemaDraft,
		"type":        "object",
		"title":       "中转查询参数",
		"description": "查询A到B的中转换乘（含一次换乘）",
		"properties": map[string]any{
			"from_station": map[string]any{"type": "string", "title": "出发站"},
			"to_station":   map[string]any{"type": "string", "title": "到达站"},
			"train_date": map[string]any{
				"type": "string", "title": "出发日期", "pattern": `^\d{4}-\d{2}-\d{2}$`,
			},
			"middle_station": map[string]any{
				"type": "string", "title": "中转站（可选）",
				"description": "指定中转站名称或三字码，可选",
			},
			"isShowWZ": map[string]any{
				"type": "string", "title": "是否显示无座车次（Y/N）",
				"description": "Y=显示无座车次，N=不显示，默认N", "default": "N",
			},
			"purpose_codes": map[string]any{
				"type": "string", "title": "乘客类型（00=普通，0X=学生）",
				"description": "00为普通，0X为学生，默认00",
			},
		},
		"required":             []string{"from_station", "to_station", "train_date"},
		"additionalProperties": false,
	}
}

func trainRouteSchema() map[string]any {
	return map[string]any{
		"$schema": jsonSchemaDraft,
		"type":    "object",
		"title":   "列车经停站查询参数",
		"properties": map[string]any{
			"train_no":     map[string]any{"type": "string", "title": "车次编码", "minLength": 1},
			"from_station": map[string]any{"type": "string", "title": "出发站id", "minLength": 1},
			"to_station":   map[string]any{"type": "string", "title": "到达站id", "minLength": 1},
			"train_date": map[string]any{
				"type": "string", "title": "出发日期", "pattern": `^\d{4}-\d{2}-\d{2}$`,
			},
		},
		"required":             []string{"train_no", "from_station", "to_station", "train_date"},
		"additionalProperties": false,
	}
}

func trainNoSchema() map[string]any {
	return map[string]any{
		"$schema": jsonSchemaDraft,
		"type":    "object",
		"title":   "车次号转编号参数",
		"properties": map[string]any{
			"train_code":   map[string]any{"type": "string", "title": "车次号", "minLength": 1},
			"from_station": map[string]any{"type": "string", "title": "出发站id或全名", "minLength": 1},
			"to_station":   map[string]any{"type": "string", "title": "到达站id或全名", "minLength": 1},
			"train_date": map[string]any{
				"type": "string", "title": "出发日期", "pattern": `^\d{4}-\d{2}-\d{2}$`,
			},
		},
		"required":             []string{"train_code", "from_station", "to_station", "train_date"},
		"additionalProperties": false,
	}
}

func currentTimeSchema() map[string]any {
	return map[string]any{
		"$schema":     jsonSchemaDraft,
		"type":        "object",
		"title":       "获取当前时间参数",
		"description": "获取当前时间和日期信息",
		"properties": map[string]any{
			"timezone": map[string]any{
				"type": "string", "title": "时区",
				"description": "时区设置，默认为中国时区", "default": "Asia/Shanghai",
			},
			"format": map[string]any{
				"type": "string", "title": "日期格式",
				"description": "返回的日期格式，默认为YYYY-MM-DD", "default": "YYYY-MM-DD",
			},
		},
		"additionalProperties": false,
	}
}
