package ports

type ForwardingPort interface {
	Add(from, to string) error
	Remove(prefix string) (bool, error)
	Get(num string) ([]string, error)
	Reverse(num string) ([]string, error)
	GetReverse(num string) ([]string, error)
	Clear() int
	Rules() []Rule
	Stats() Stats
}

type Rule struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Stats struct {
	Rules       int `json:"rules"`
	Nodes       int `json:"nodes"`
	NodeLimit   int `json:"node_limit"`
	Cached      int `json:"cached"`
	Subscribers int `json:"subscribers"`
}
