package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/railgate/railgate/pkg/mcp"
	"github.com/railgate/railgate/pkg/tickets"
)

func (t *Toolset) queryTickets(ctx context.Context, args map[string]any) ([]mcp.ContentBlock, error) {
	fromStation := stringArg(args, "from_station")
	toStation := stringArg(args, "to_station")
	trainDate := stringArg(args, "train_date")

	log.Info().Str("from", fromStation).Str("to", toStation).Str("date", trainDate).Msg("Ticket query")

	var problems []string
	if fromStation == "" {
		problems = append(problems, "出发站不能为空")
	}
	if toStation == "" {
		problems = append(problems, "到达站不能为空")
	}
	if trainDate == "" {
		problems = append(problems, "出发日期不能为空")
	} else if !validDate(trainDate) {
		problems = append(problems, "日期格式错误，请使用 YYYY-MM-DD 格式")
	}
	if len(problems) > 0 {
		text := "❌ **参数验证失败:**\n"
		for i, problem := range problems {
			text += fmt.Sprintf("%d. %s\n", i+1, problem)
		}
		return textOnly(text), nil
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

	rows, err := t.Upstream.LeftTickets(ctx, fromCode, toCode, trainDate, "ADULT")
	if err != nil {
		return nil, err
	}

	records := tickets.DecodeBatch(rows, tickets.QueryContext{
		FromStation: fromStation,
		ToStation:   toStation,
		TrainDate:   trainDate,
	})

	if len(records) == 0 {
		return textOnly(fmt.Sprintf("❌ 未找到该线路的余票（%s→%s %s）", fromStation, toStation, trainDate)), nil
	}

	text := fmt.Sprintf("🚄 **%s → %s** (%s)\n\n", fromStation, toStation, trainDate)
	text += fmt.Sprintf("📊 找到 **%d** 趟列车:\n\n", len(records))

	for i, record := range records {
		fromName := record.FromStationCode
		if station, found := catalog.ByCode(record.FromStationCode); found {
			fromName = station.Name
		}
		toName := record.ToStationCode
		if station, found := catalog.ByCode(record.ToStationCode); found {
			toName = station.Name
		}

		text += fmt.Sprintf("**%d.** 🚆 **%s** （%s[%s] → %s[%s]）\n",
			i+1, record.TrainCode, fromName, record.FromStationCode, toName, record.ToStationCode)
		text += fmt.Sprintf("      ⏰ `%s` → `%s`", record.StartTime, record.ArriveTime)
		if record.Duration != "" {
			text += fmt.Sprintf(" (历时 %s)", record.Duration)
		}
		text += "\n"

		if seatLines := record.Seats.DisplayLines(); len(seatLines) > 0 {
			text += "      💺 " + strings.Join(seatLines, " | ") + "\n"
		}
		text += "\n"
	}

	content := textOnly(text)
	if block, ok := reducedJSON(records, "basic"); ok {
		content = append(content, block)
	}

	return content, nil
}
