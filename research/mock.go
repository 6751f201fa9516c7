package research

import "context"

// Mock 一个简单的占位实现，便于本地调试，不调用外部 API。
type Mock struct{}

func (Mock) Lookup(_ context.Context, topic string) (Summary, error) {
	return Summary{
		Extract:   "Placeholder background for " + topic + ", produced without any network call.",
		PageTitle: topic,
	}, nil
}
