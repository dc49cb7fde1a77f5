package ports

import (
	"iter"
	"phoneforward/internal/app/domain/number"
)

// EnginePort is the forwarding engine. Implementations are not expected to
// be safe for concurrent use.
type EnginePort interface {
	Add(source, target string) error
	Remove(prefix string) bool
	Get(num string) *number.Numbers
	Reverse(num string) *number.Numbers
	GetReverse(num string) *number.Numbers
	Rules() iter.Seq2[string, string]
	Len() int
	Nodes() int
	NodeLimit() int
	SetNodeLimit(limit int)
	Clear()
}
