package research

import (
	"context"
	"errors"
)

// ErrUnavailable marks lookup failures caused by the remote API (network,
// HTTP status, malformed response) as opposed to a topic simply not existing.
var ErrUnavailable = errors.New("research source unavailable")

// Summary is the context retrieved for a topic. A zero Summary with a nil
// error means the topic has no usable extract.
type Summary struct {
	Extract   string
	PageTitle string
	PageURL   string
}

// Empty reports whether the lookup yielded no usable context.
func (s Summary) Empty() bool {
	return s.Extract == ""
}

// Client 抽象百科检索客户端，便于替换/Mock。
type Client interface {
	Lookup(ctx context.Context, topic string) (Summary, error)
}
