package tools

import (
	"context"
	"fmt"

	"github.com/railgate/railgate/pkg/mcp"
)

func (t *Toolset) searchStations(ctx context.Context, args map[string]any) ([]mcp.ContentBlock, error) {
	query := stringArg(args, "query")
	if query == "" {
		return textOnly("❌ 请输入搜索关键词"), nil
	}

	limit := intArg(args, "limit", 10)
	if limit < 1 || limit > 50 {
		limit = 10
	}

	results := t.catalog().Search(query, limit)

	if len(results) == 0 {
		text := "❌ **未找到匹配的车站**\n\n"
		text += fmt.Sprintf("🔍 **搜索关键词:** `%s`\n\n", query)
		text += "💡 **搜索建议:**\n"
		text += "• 尝试完整城市名称 (如: `北京`)\n"
		text += "• 尝试拼音 (如: `beijing`)\n"
		text += "• 尝试简拼 (如: `bj`)\n"
		text += "• 检查拼写是否正确"
		return textOnly(text), nil
	}

	text := fmt.Sprintf("🚉 **搜索结果:** `%s`\n\n", query)
	text += fmt.Sprintf("📊 找到 **%d** 个车站:\n\n", len(results))

	for i, station := range results {
		text += fmt.Sprintf("**%d.** 🚉 **%s** `(%s)`\n", i+1, station.Name, station.Code)
		text += fmt.Sprintf("       📍 拼音: `%s`", station.Pinyin)
		if station.PinyinShort != "" {
			text += fmt.Sprintf(" | 简拼: `%s`", station.PinyinShort)
		}
		text += "\n"
		if station.SequenceNumber != "" {
			text += fmt.Sprintf("       🔢 编号: `%s`\n", station.SequenceNumber)
		}
		text += "\n"
	}

	content := textOnly(text)
	if block, ok := reducedJSON(results, "detailed"); ok {
		content = append(content, block)
	}

	return content, nil
}
