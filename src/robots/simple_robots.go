// robots.txt获取失败（网络错误、非2xx、解析失败）时一律视为不允许抓取
// 可选地按origin缓存解析结果，失败结果不缓存
package robots

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
	log "github.com/sirupsen/logrus"
	"github.com/temoto/robotstxt"

	"github.com/andrewyi/scraper/src/util"
)

type Options struct {
	Agent        string
	CacheTTL     time.Duration // 0表示不缓存
	CacheSize    int
	MissingAllow bool // robots.txt返回404/410时视为全部允许
}

type SimpleChecker struct {
	logger *log.Logger
	client *resty.Client
	opts   Options

	cache *expirable.LRU[string, *robotstxt.RobotsData]
}

func NewSimpleChecker(client *resty.Client, opts Options, logger *log.Logger) Checker {
	if opts.Agent == "" {
		opts.Agent = "*"
	}
	c := &SimpleChecker{
		logger: logger,
		client: client,
		opts:   opts,
	}
	if opts.CacheTTL > 0 {
		size := opts.CacheSize
		if size <= 0 {
			size = 128
		}
		c.cache = expirable.NewLRU[string, *robotstxt.RobotsData](size, nil, opts.CacheTTL)
	}
	return c
}

func (c *SimpleChecker) Allowed(ctx context.Context, u string) bool {
	ok, err := c.Check(ctx, u)
	if err != nil {
		c.logger.WithError(err).WithField("url", u).Warn("url not allowed")
		return false
	}
	return ok
}

func (c *SimpleChecker) Check(ctx context.Context, u string) (bool, error) {
	robotsURL, err := util.RobotsURL(u)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	path, err := util.RequestPath(u)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	data, err := c.policy(ctx, robotsURL)
	if err != nil {
		return false, err
	}

	if !data.FindGroup(c.opts.Agent).Test(path) {
		return false, ErrDisallowed
	}
	return true, nil
}

func (c *SimpleChecker) policy(ctx context.Context, robotsURL string) (*robotstxt.RobotsData, error) {
	if c.cache != nil {
		if data, ok := c.cache.Get(robotsURL); ok {
			return data, nil
		}
	}

	data, err := c.fetch(ctx, robotsURL)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		c.cache.Add(robotsURL, data)
	}
	return data, nil
}

func (c *SimpleChecker) fetch(ctx context.Context, robotsURL string) (*robotstxt.RobotsData, error) {
	resp, err := c.client.R().SetContext(ctx).Get(robotsURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	status := resp.StatusCode()
	if c.opts.MissingAllow && (status == http.StatusNotFound || status == http.StatusGone) {
		c.logger.WithField("robots", robotsURL).Debug("robots.txt missing, allow all")
		return robotstxt.FromStatusAndBytes(status, nil)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: status %d", ErrFetch, status)
	}

	data, err := robotstxt.FromBytes(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	return data, nil
}
