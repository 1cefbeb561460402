package controller

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/andrewyi/scraper/src/analyzer"
	"github.com/andrewyi/scraper/src/downloader"
	"github.com/andrewyi/scraper/src/entity"
	"github.com/andrewyi/scraper/src/enum"
	"github.com/andrewyi/scraper/src/robots"
	"github.com/andrewyi/scraper/src/util"
)

type SimpleController struct {
	logger *log.Logger

	robots     robots.Checker
	downloader downloader.Downloader
	analyzer   analyzer.Analyzer
}

func NewSimpleController(checker robots.Checker, d downloader.Downloader, a analyzer.Analyzer, logger *log.Logger) Controller {
	return &SimpleController{
		logger:     logger,
		robots:     checker,
		downloader: d,
		analyzer:   a,
	}
}

func (c *SimpleController) Extract(ctx context.Context, req entity.SiteRequest) []string {
	return c.Fetch(ctx, req).Content
}

func (c *SimpleController) Fetch(ctx context.Context, req entity.SiteRequest) entity.FetchResult {
	logger := c.logger.WithField("url", req.URL).WithField("selector", req.Selector.String())
	if domain, err := util.GetDomain(req.URL); err == nil {
		logger = logger.WithField("domain", domain)
	}

	if err := req.Selector.Validate(); err != nil {
		logger.WithError(err).Error("invalid request, skipped")
		return failResult(req.URL, enum.FailureInvalidRequest, err)
	}

	// robots不允许时不会请求目标页面
	if ok, err := c.robots.Check(ctx, req.URL); !ok {
		kind := enum.FailureRobotsFetch
		if errors.Is(err, robots.ErrDisallowed) {
			kind = enum.FailureRobotsDenied
		}
		logger.WithError(err).WithField("kind", kind.String()).Warn("url not allowed by robots.txt, skipped")
		return failResult(req.URL, kind, err)
	}

	page := c.downloader.Download(ctx, req.URL)
	if page.State != enum.PageStateSuccess {
		logger.WithError(page.Err).WithField("status", page.StatusCode).Error("fail to download page")
		return failResult(req.URL, page.Kind, page.Err)
	}

	parsedPage := c.analyzer.Analyze(page, req.Selector)
	if parsedPage.State != enum.PageStateSuccess {
		logger.WithError(parsedPage.Err).Error("fail to analyze page")
		return failResult(req.URL, parsedPage.Kind, parsedPage.Err)
	}

	logger.WithField("matched", len(parsedPage.Texts)).Info("page extracted")
	return entity.FetchResult{
		URL:     req.URL,
		Kind:    enum.FailureNone,
		Content: parsedPage.Texts,
	}
}

func failResult(url string, kind enum.FailureKind, err error) entity.FetchResult {
	return entity.FetchResult{
		URL:     url,
		Kind:    kind,
		Err:     err,
		Content: []string{},
	}
}
