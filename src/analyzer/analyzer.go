package analyzer

import (
	"github.com/andrewyi/scraper/src/entity"
)

type Analyzer interface {
	Analyze(entity.PageInfo, entity.Selector) entity.ParsedPageInfo
}
