package bank

import "sort"

// PlaceholderFeedback is the row inserted alongside a new category.
const PlaceholderFeedback = "<replace me>"

type Entry struct {
	Category string `json:"category" yaml:"category"`
	Feedback string `json:"feedback" yaml:"feedback"`
}

// Group is one category with its feedback in ascending order.
type Group struct {
	Category string   `json:"category" yaml:"category"`
	Feedback []string `json:"feedback" yaml:"feedback"`
}

func DefaultEntries() []Entry {
	return []Entry{
		{Category: "Analysis", Feedback: "Good"},
		{Category: "Analysis", Feedback: "Bad"},
		{Category: "Methodology", Feedback: "Could be improved"},
	}
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Category != entries[j].Category {
			return entries[i].Category < entries[j].Category
		}
		return entries[i].Feedback < entries[j].Feedback
	})
}

func cloneEntries(entries []Entry) []Entry {
	if entries == nil {
		return nil
	}
	return append([]Entry(nil), entries...)
}
