package tools

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/railgate/railgate/pkg/mcp"
)

// Public train codes look like C9569 or G1234; internal train numbers are
// longer digit/letter strings like 57000C95690L.
var publicTrainCodeRegex = regexp.MustCompile(`^[A-Z]+\d+$`)

func (t *Toolset) trainRouteStations(ctx context.Context, args map[string]any) ([]mcp.ContentBlock, error) {
	trainNo := stringArg(args, "train_no")
	fromStation := strings.ToUpper(stringArg(args, "from_station"))
	toStation := strings.ToUpper(stringArg(args, "to_station"))
	trainDate := stringArg(args, "train_date")

	if trainNo == "" {
		return textOnly("❌ 车次编号(train_no)不能为空"), nil
	}
	if fromStation == "" {
		return textOnly("❌ 出发站不能为空"), nil
	}
	if toStation == "" {
		return textOnly("❌ 到达站不能为空"), nil
	}
	if trainDate == "" {
		return textOnly("❌ 出发日期不能为空"), nil
	}
	if !validDate(trainDate) {
		return textOnly("❌ 出发日期格式错误，应为YYYY-MM-DD"), nil
	}
	if beforeToday(trainDate) {
		return textOnly("❌ 出发日期不能早于今天"), nil
	}

	catalog := t.catalog()

	fromCode, suggestion := resolveStation(catalog, fromStation, "出发站")
	if fromCode == "" {
		return textOnly(suggestion), nil
	}
	toCode, suggestion := resolveStation(catalog, toStation, "到达站")
	if toCode == "" {
		return textOnly(suggestion), nil
	}

	actualTrainNo := trainNo
	if publicTrainCodeRegex.MatchString(trainNo) {
		log.Info().Str("train_code", trainNo).Msg("Converting public train code to internal train number")

		resolved, failure, err := t.resolveTrainNo(ctx, trainNo, fromCode, toCode, trainDate)
		if err != nil {
			return nil, err
		}
		if failure != "" {
			return textOnly(failure), nil
		}
		actualTrainNo = resolved
	}

	route, err := t.Upstream.TrainRoute(ctx, actualTrainNo, fromCode, toCode, trainDate)
	if err != nil {
		return nil, err
	}

	if len(route) == 0 {
		return textOnly(fmt.Sprintf("❌ 未找到车次 %s 的经停站信息", trainNo)), nil
	}

	text := fmt.Sprintf("🚄 **%s** 经停站时刻表 (%s)\n\n", trainNo, trainDate)

	for _, stop := range route {
		text += fmt.Sprintf("%s. %s  到达: %s  发车: %s  停留: %s\n",
			stop.Number(), stop.Name(),
			orDashes(stop.ArriveTime), orDashes(stop.StartTime), orDashes(stop.StopoverTime))
	}

	text += fmt.Sprintf("\n📊 共 **%d** 个经停站", len(route))

	content := textOnly(text)
	content = append(content, mcp.JSONContent(route))

	return content, nil
}

func orDashes(value string) string {
	if value == "" {
		return "----"
	}
	return value
}
