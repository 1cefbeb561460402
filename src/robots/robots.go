package robots

import (
	"context"
	"errors"
)

var (
	ErrFetch      = errors.New("robots.txt unavailable")
	ErrDisallowed = errors.New("disallowed by robots.txt")
)

// Checker 判断某个url是否允许抓取
// Check 返回具体原因；Allowed 只返回结果，任何错误都视为不允许
type Checker interface {
	Check(ctx context.Context, url string) (bool, error)
	Allowed(ctx context.Context, url string) bool
}
