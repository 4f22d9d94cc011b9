package models

// Priority buckets for goals.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Goal is a measurable target with manual progress increments.
// Deadline is an ISO date string; empty means no deadline.
type Goal struct {
	Lifecycle

	Title    string   `json:"title"`
	Target   float64  `json:"target"`
	Current  float64  `json:"current"`
	Unit     string   `json:"unit,omitempty"`
	Deadline string   `json:"deadline,omitempty"`
	Priority Priority `json:"priority,omitempty"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// Reached reports whether progress has met the target. Goals with no
// target never auto-complete.
func (g *Goal) Reached() bool {
	return g.Target > 0 && g.Current >= g.Target
}

// Wish is a savings target.
type Wish struct {
	Lifecycle

	Title        string  `json:"title"`
	TargetAmount float64 `json:"targetAmount"`
	SavedAmount  float64 `json:"savedAmount"`
	Deadline     string  `json:"deadline,omitempty"`
	Link         string  `json:"link,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

// Funded reports whether the saved amount has met the target.
func (w *Wish) Funded() bool {
	return w.TargetAmount > 0 && w.SavedAmount >= w.TargetAmount
}
