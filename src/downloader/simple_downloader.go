// 仅仅实现了简单的http Get方式下载，不重试
// 超时、跳转均使用client的默认行为，timeout为0时不覆盖
package downloader

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"

	"github.com/andrewyi/scraper/src/entity"
	"github.com/andrewyi/scraper/src/enum"
)

var ErrStatus = errors.New("unexpected http status")

// 下载器与robots检查共用同一个client，resty自身的日志也输出到logger
func NewClient(userAgent string, timeout time.Duration, logger *log.Logger) *resty.Client {
	client := resty.New()
	if logger != nil {
		client.SetLogger(logger)
	}
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return client
}

type SimpleDownloader struct {
	client *resty.Client
}

func NewSimpleDownloader(client *resty.Client) Downloader {
	return &SimpleDownloader{
		client: client,
	}
}

func (s *SimpleDownloader) Download(ctx context.Context, url string) entity.PageInfo {
	resp, err := s.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return failPage(url, 0, err)
	}

	if !resp.IsSuccess() {
		return failPage(url, resp.StatusCode(), fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode()))
	}

	return entity.PageInfo{
		URL:        url,
		State:      enum.PageStateSuccess,
		Kind:       enum.FailureNone,
		StatusCode: resp.StatusCode(),
		Content:    resp.Body(),
	}
}

func failPage(url string, status int, err error) entity.PageInfo {
	return entity.PageInfo{
		URL:        url,
		State:      enum.PageStateFail,
		Kind:       enum.FailurePageFetch,
		StatusCode: status,
		Remark:     err.Error(),
		Err:        err,
	}
}
