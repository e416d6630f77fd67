package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/railgate/railgate/pkg/mcp"
	"github.com/railgate/railgate/pkg/tickets"
)

// resolveTrainNo maps a public train code on a given leg and date to the
// portal's internal train number. The failure text lists the public codes
// that were actually on offer, which is what callers need to self-correct.
func (t *Toolset) resolveTrainNo(ctx context.Context, trainCode string, fromCode string, toCode string, trainDate string) (string, string, error) {
	rows, err := t.Upstream.LeftTickets(ctx, fromCode, toCode, trainDate, "ADULT")
	if err != nil {
		return "", "", err
	}

	if len(rows) == 0 {
		return "", fmt.Sprintf("❌ 未找到该线路的余票数据（%s->%s %s）", fromCode, toCode, trainDate), nil
	}

	trainNo, seenCodes, found := tickets.ResolveTrainNo(rows, trainCode)
	if !found {
		return "", fmt.Sprintf("❌ 未找到该车次号的列车编号（%s %s->%s %s）。\n可用车次号: %s",
			trainCode, fromCode, toCode, trainDate, strings.Join(seenCodes, ", ")), nil
	}

	return trainNo, "", nil
}

func (t *Toolset) trainNoByTrainCode(ctx context.Context, args map[string]any) ([]mcp.ContentBlock, error) {
	trainCode := strings.ToUpper(stringArg(args, "train_code"))
	fromStation := strings.ToUpper(stringArg(args, "from_station"))
	toStation := strings.ToUpper(stringArg(args, "to_station"))
	trainDate := stringArg(args, "train_date")

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

	trainNo, failure, err := t.resolveTrainNo(ctx, trainCode, fromCode, toCode, trainDate)
	if err != nil {
		return nil, err
	}
	if failure != "" {
		return textOnly(failure), nil
	}

	content := textOnly(fmt.Sprintf("车次 %s（%s→%s，%s）的列车编号为：%s", trainCode, fromCode, toCode, trainDate, trainNo))
	content = append(content, mcp.JSONContent(map[string]string{
		"train_code": trainCode,
		"train_no":   trainNo,
	}))

	return content, nil
}
