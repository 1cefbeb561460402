package enum

const (
	// 定义了page的状态
	PageStatePending = 0
	PageStateSuccess = 1
	PageStateFail    = 2
)

// 失败的分类，用于区分robots、下载、解析等不同阶段的错误
type FailureKind uint8

const (
	FailureNone FailureKind = iota
	FailureInvalidRequest
	FailureRobotsFetch
	FailureRobotsDenied
	FailurePageFetch
	FailureParse
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureInvalidRequest:
		return "invalid_request"
	case FailureRobotsFetch:
		return "robots_fetch"
	case FailureRobotsDenied:
		return "robots_denied"
	case FailurePageFetch:
		return "page_fetch"
	case FailureParse:
		return "parse"
	}
	return "unknown"
}

const (
	DefaultURL       = "https://example-blog.com"
	DefaultTag       = "h1"
	DefaultClass     = "entry-title"
	DefaultAgent     = "*"
	DefaultCSVPath   = "./results.csv"
	DefaultSeparator = "\n"
	DefaultCacheSize = 128
)
