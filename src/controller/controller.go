package controller

import (
	"context"

	"github.com/andrewyi/scraper/src/entity"
)

type Controller interface {
	// Fetch 返回带失败分类的结果
	Fetch(context.Context, entity.SiteRequest) entity.FetchResult
	// Extract 只返回内容，任何失败都得到空列表
	Extract(context.Context, entity.SiteRequest) []string
}
