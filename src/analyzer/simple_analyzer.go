// 按tag选择元素，class非空时要求元素的class属性包含该class
// 返回元素去除首尾空白后的文本，保持文档顺序
package analyzer

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/andrewyi/scraper/src/entity"
	"github.com/andrewyi/scraper/src/enum"
)

var ErrParse = errors.New("fail to parse html")

type SimpleAnalyzer struct{}

func NewSimpleAnalyzer() Analyzer {
	return &SimpleAnalyzer{}
}

func (a *SimpleAnalyzer) Analyze(page entity.PageInfo, selector entity.Selector) entity.ParsedPageInfo {
	var parsedPageInfo = entity.ParsedPageInfo{
		URL:    page.URL,
		State:  page.State,
		Kind:   page.Kind,
		Remark: page.Remark,
		Err:    page.Err,
	}

	if page.State != enum.PageStateSuccess {
		return parsedPageInfo
	}

	if err := selector.Validate(); err != nil {
		return failParsed(parsedPageInfo, enum.FailureInvalidRequest, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page.Content))
	if err != nil {
		return failParsed(parsedPageInfo, enum.FailureParse, fmt.Errorf("%w: %v", ErrParse, err))
	}

	parsedPageInfo.Texts = Select(doc.Selection, selector)
	return parsedPageInfo
}

// Select 在已解析的文档中执行选择，按元素名精确匹配，调用方需先Validate
func Select(root *goquery.Selection, selector entity.Selector) []string {
	tag := strings.ToLower(strings.TrimSpace(selector.Tag))
	matched := root.Find("*").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return goquery.NodeName(s) == tag
	})
	if class := strings.TrimSpace(selector.Class); class != "" {
		matched = matched.FilterFunction(func(_ int, s *goquery.Selection) bool {
			return s.HasClass(class)
		})
	}

	texts := make([]string, 0, matched.Length())
	matched.Each(func(_ int, s *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(s.Text()))
	})
	return texts
}

func failParsed(p entity.ParsedPageInfo, kind enum.FailureKind, err error) entity.ParsedPageInfo {
	p.State = enum.PageStateFail
	p.Kind = kind
	p.Remark = err.Error()
	p.Err = err
	return p
}
