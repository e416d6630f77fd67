package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/railgate/railgate/pkg/mcp"
	"github.com/railgate/railgate/pkg/transfer"
	"github.com/railgate/railgate/pkg/upstream"
)

func (t *Toolset) queryTransfer(ctx context.Context, args map[string]any) ([]mcp.ContentBlock, error) {
	fromStation := stringArg(args, "from_station")
	toStation := stringArg(args, "to_station")
	trainDate := stringArg(args, "train_date")
	middleStation := stringArg(args, "middle_station")

	showNoSeat := strings.ToUpper(stringArg(args, "isShowWZ"))
	if showNoSeat == "" {
		showNoSeat = "N"
	}
	purposeCodes := strings.ToUpper(stringArg(args, "purpose_codes"))
	if purposeCodes == "" {
		purposeCodes = "00"
	}

	if fromStation == "" || toStation == "" || trainDate == "" {
		return textOnly("❌ 请输入出发站、到达站和出发日期"), nil
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

	source, err := t.Upstream.TransferSource(ctx, upstream.TransferParams{
		FromCode:      fromCode,
		ToCode:        toCode,
		TrainDate:     trainDate,
		MiddleStation: middleStation,
		ShowNoSeat:    showNoSeat,
		PurposeCodes:  purposeCodes,
	})
	if err != nil {
		return nil, err
	}

	groups, err := transfer.FetchAll(ctx, source)
	if err != nil {
		return nil, err
	}

	log.Info().Int("groups", len(groups)).Str("from", fromCode).Str("to", toCode).Msg("Transfer pagination finished")

	itineraries := transfer.Assemble(groups)
	if len(itineraries) == 0 {
		return textOnly(fmt.Sprintf("❌ 未查到中转方案（%s→%s %s）", fromStation, toStation, trainDate)), nil
	}

	text := fmt.Sprintf("🚉 **中转查询结果**\n\n%s → %s（%s）\n\n", fromStation, toStation, trainDate)

	for i, itinerary := range itineraries {
		text += fmt.Sprintf("**%d.** 中转站:%s  ⏱️总历时:%s  ⏳等候:%s\n",
			i+1, itinerary.ConnectionStation, itinerary.TotalDuration, itinerary.WaitTime)

		for j, leg := range itinerary.Legs {
			text += fmt.Sprintf("    %d. %s %s(%s) → %s(%s)",
				j+1, leg.TrainCode, leg.FromStation, leg.StartTime, leg.ToStation, leg.ArriveTime)
			if leg.Duration != "" {
				text += " 历时:" + leg.Duration
			}
			if len(leg.SeatLines) > 0 {
				text += "\n         " + strings.Join(leg.SeatLines, " | ")
			}
			text += "\n"
		}
		text += "\n"
	}

	content := textOnly(text)
	if block, ok := reducedJSON(itineraries, "basic"); ok {
		content = append(content, block)
	}

	return content, nil
}
