package tools

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/railgate/railgate/pkg/mcp"
)

const defaultTimezone = "Asia/Shanghai"

func (t *Toolset) currentTime(ctx context.Context, args map[string]any) ([]mcp.ContentBlock, error) {
	timezone := stringArg(args, "timezone")
	if timezone == "" {
		timezone = defaultTimezone
	}

	location, err := time.LoadLocation(timezone)
	if err != nil {
		log.Warn().Str("timezone", timezone).Msg("Unknown timezone, falling back to default")
		location, err = time.LoadLocation(defaultTimezone)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now().In(location)

	return textOnly(now.Format("2006-01-02 15:04:05") + " " + location.String()), nil
}
