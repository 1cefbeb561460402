package entity

import (
	"errors"
	"regexp"
	"strings"

	"github.com/andrewyi/scraper/src/enum"
)

var (
	ErrEmptyTag   = errors.New("selector tag is empty")
	ErrInvalidTag = errors.New("selector tag is not an element name")
)

// 只接受单个元素名，不接受css选择器语法
var tagPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*$`)

// 选择器，tag必填，class可选
type Selector struct {
	Tag   string
	Class string
}

func (s Selector) Validate() error {
	if strings.TrimSpace(s.Tag) == "" {
		return ErrEmptyTag
	}
	if !tagPattern.MatchString(strings.TrimSpace(s.Tag)) {
		return ErrInvalidTag
	}
	return nil
}

func (s Selector) String() string {
	if s.Class == "" {
		return s.Tag
	}
	return s.Tag + "." + s.Class
}

type SiteRequest struct {
	URL      string
	Selector Selector
}

// 保存了下载的内容
type PageInfo struct {
	URL        string
	State      uint32 // enum.PageState*
	Kind       enum.FailureKind
	StatusCode int
	Remark     string // error description, if any
	Err        error
	Content    []byte
}

// 保存了分析后的内容，Texts为按文档顺序匹配到的元素文本
type ParsedPageInfo struct {
	URL    string
	State  uint32
	Kind   enum.FailureKind
	Remark string
	Err    error
	Texts  []string
}

// 单个SiteRequest的处理结果，失败时Kind/Err说明原因
type FetchResult struct {
	URL     string
	Kind    enum.FailureKind
	Err     error
	Content []string
}

func (r FetchResult) OK() bool {
	return r.Kind == enum.FailureNone
}

type ExtractionResult struct {
	URL     string
	Content []string
}
