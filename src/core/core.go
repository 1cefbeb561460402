package core

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/andrewyi/scraper/src/config"
	"github.com/andrewyi/scraper/src/controller"
	"github.com/andrewyi/scraper/src/entity"
	"github.com/andrewyi/scraper/src/enum"
)

// 顺序处理所有请求，结果与输入一一对应、顺序一致
// ctx取消后不再发起新的请求，剩余请求得到空结果
func RunAll(ctx context.Context, logger *log.Logger, c controller.Controller, requests []entity.SiteRequest) []entity.ExtractionResult {
	results := make([]entity.ExtractionResult, 0, len(requests))

	for i, req := range requests {
		if err := ctx.Err(); err != nil {
			logger.WithError(err).WithField("url", req.URL).Warn("run cancelled, skipped")
			results = append(results, entity.ExtractionResult{URL: req.URL, Content: []string{}})
			continue
		}

		res := c.Fetch(ctx, req)
		if !res.OK() {
			logger.WithFields(log.Fields{
				"index": i,
				"url":   req.URL,
				"kind":  res.Kind.String(),
			}).Info("empty result")
		}
		results = append(results, entity.ExtractionResult{URL: req.URL, Content: res.Content})
	}

	return results
}

// 合并配置中的sites与seed文件，均为空时使用默认请求
func LoadRequests(cfg *config.Config) ([]entity.SiteRequest, error) {
	var requests []entity.SiteRequest
	for _, s := range cfg.Core.Sites {
		requests = append(requests, entity.SiteRequest{
			URL:      strings.TrimSpace(s.URL),
			Selector: entity.Selector{Tag: strings.TrimSpace(s.Tag), Class: strings.TrimSpace(s.Class)},
		})
	}

	if cfg.Core.SeedFilePath != "" {
		seeds, err := ReadSeedFile(cfg.Core.SeedFilePath)
		if err != nil {
			return nil, err
		}
		requests = append(requests, seeds...)
	}

	if len(requests) == 0 {
		requests = append(requests, DefaultRequest())
	}
	return requests, nil
}

func DefaultRequest() entity.SiteRequest {
	return entity.SiteRequest{
		URL:      enum.DefaultURL,
		Selector: entity.Selector{Tag: enum.DefaultTag, Class: enum.DefaultClass},
	}
}

// 导入seed文件，空行与#开头的行被忽略
func ReadSeedFile(seedFilePath string) ([]entity.SiteRequest, error) {
	file, err := os.Open(seedFilePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var requests []entity.SiteRequest
	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanLines)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("seed file %s line %d: want \"url tag [class]\", got %q", seedFilePath, lineNo, line)
		}
		req := entity.SiteRequest{
			URL:      fields[0],
			Selector: entity.Selector{Tag: fields[1]},
		}
		if len(fields) == 3 {
			req.Selector.Class = fields[2]
		}
		requests = append(requests, req)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}
