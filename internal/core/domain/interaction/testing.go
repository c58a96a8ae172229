package interaction

import "context"

type FakeAnalyzer struct {
	Intent   Intent
	Entities Entities
	Texts    []string
}

func NewFakeAnalyzer() *FakeAnalyzer {
	return &FakeAnalyzer{}
}

func (a *FakeAnalyzer) Classify(ctx context.Context, text string) Intent {
	a.Texts = append(a.Texts, text)
	return a.Intent
}

func (a *FakeAnalyzer) Extract(ctx context.Context, text string) Entities {
	return a.Entities
}
