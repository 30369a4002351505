package llm

import "go.uber.org/fx"

// Module provides the LLM clients
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewLimiter,
		NewChatClient,
		NewActivityAnalyzer,
	),
)
