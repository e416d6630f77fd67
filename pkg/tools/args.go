package tools

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"

	"github.com/railgate/railgate/pkg/mcp"
	"github.com/railgate/railgate/pkg/stations"
)

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func stringArg(args map[string]any, key string) string {
	if value, ok := args[key].(string); ok {
		return strings.TrimSpace(value)
	}
	return ""
}

func intArg(args map[string]any, key string, fallback int) int {
	// JSON numbers decode as float64.
	if value, ok := args[key].(float64); ok {
		return int(value)
	}
	return fallback
}

func validDate(value string) bool {
	if !dateRegex.MatchString(value) {
		return false
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

func beforeToday(value string) bool {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return false
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return parsed.Before(today)
}

// resolveStation resolves a station token to a telecode. On a miss it
// builds a near-miss suggestion text from the top fuzzy matches so the
// caller can show useful alternatives instead of a bare failure.
func resolveStation(catalog *stations.Catalog, token string, label string) (string, string) {
	if code, found := catalog.ResolveCode(token); found {
		return code, ""
	}

	suggestions := catalog.Search(token, 3)
	if len(suggestions) == 0 {
		return "", fmt.Sprintf("❌ %s无效或无法识别：%s", label, token)
	}

	text := fmt.Sprintf("❌ %s无效或无法识别：%s\n\n🔍 '%s'可能是：\n", label, token, token)
	for _, station := range suggestions {
		text += fmt.Sprintf("- %s（%s，拼音：%s，简拼：%s）\n", station.Name, station.Code, station.Pinyin, station.PinyinShort)
	}
	text += "\n💡 可尝试拼音、简拼、三字码或用 search-stations 工具辅助查询。"

	return "", text
}

// reducedJSON marshals value down to the fields tagged with the given
// sheriff group, for the structured json content block beside the
// markdown text.
func reducedJSON(value any, groupNames ...string) (mcp.ContentBlock, bool) {
	reduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: groupNames,
	}, value)

	if err != nil {
		log.Warn().Err(err).Msg("Sheriff could not reduce tool result")
		return mcp.ContentBlock{}, false
	}

	return mcp.JSONContent(reduced), true
}

func textOnly(text string) []mcp.ContentBlock {
	return []mcp.ContentBlock{mcp.TextContent(text)}
}
