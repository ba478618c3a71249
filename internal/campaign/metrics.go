package campaign

import "math"

// Summary aggregates campaign counters for the dashboard. ROI is a rounded
// percentage; the remaining fields are plain sums over the input campaigns.
type Summary struct {
	Impressions         int64   `json:"impressions"`
	Clicks              int64   `json:"clicks"`
	Conversions         int64   `json:"conversions"`
	ROI                 int64   `json:"roi"`
	Spent               float64 `json:"spent"`
	Budget              float64 `json:"budget"`
	UnreadNotifications int     `json:"unreadNotifications"`
}

// Summarize reduces a campaign list into dashboard totals.
// roi = round(conversions*100/spent) when spent > 0, otherwise 0.
func Summarize(campaigns []Campaign, unread int) Summary {
	var s Summary
	for _, c := range campaigns {
		s.Impressions += c.Impressions
		s.Clicks += c.Clicks
		s.Conversions += c.Conversions
		s.Spent += c.Spent
		s.Budget += c.Budget
	}
	if s.Spent > 0 {
		s.ROI = int64(math.Round(float64(s.Conversions) * 100 / s.Spent))
	}
	s.UnreadNotifications = unread
	return s
}

// CTR returns the click-through rate as a percentage, 0 with no impressions.
func (s Summary) CTR() float64 {
	if s.Impressions == 0 {
		return 0
	}
	return float64(s.Clicks) * 100 / float64(s.Impressions)
}

// CPC returns the average cost per click, 0 with no clicks.
func (s Summary) CPC() float64 {
	if s.Clicks == 0 {
		return 0
	}
	return s.Spent / float64(s.Clicks)
}

// BudgetUsage returns spent as a percentage of budget, 0 with no budget.
func (s Summary) BudgetUsage() float64 {
	if s.Budget == 0 {
		return 0
	}
	return s.Spent * 100 / s.Budget
}
