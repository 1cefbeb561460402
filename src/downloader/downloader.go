package downloader

import (
	"context"

	"github.com/andrewyi/scraper/src/entity"
)

type Downloader interface {
	Download(context.Context, string) entity.PageInfo
}
