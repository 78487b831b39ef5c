package models

// SelectOption is one entry of a dashboard dropdown.
type SelectOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SelectorDefaults are the values the dashboard starts with.
type SelectorDefaults struct {
	Band   string `json:"band"`
	Domain string `json:"domain"`
	Share  string `json:"share"`
}

// OptionsEntry lists every valid selector value.
type OptionsEntry struct {
	Bands    []SelectOption   `json:"bands"`
	Domains  []SelectOption   `json:"domains"`
	Shares   []SelectOption   `json:"shares"`
	Defaults SelectorDefaults `json:"defaults"`
}
