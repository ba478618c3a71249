package campaign

import "testing"

func TestSummarizeROIRounding(t *testing.T) {
	campaigns := []Campaign{
		{Spent: 1220, Conversions: 950},
	}
	s := Summarize(campaigns, 0)
	// round(950*100/1220) = round(77.868...) = 78
	if s.ROI != 78 {
		t.Fatalf("expected ROI 78, got %d", s.ROI)
	}
}

func TestSummarizeZeroSpend(t *testing.T) {
	campaigns := []Campaign{
		{Spent: 0, Conversions: 10000},
	}
	s := Summarize(campaigns, 0)
	if s.ROI != 0 {
		t.Fatalf("expected ROI 0 with zero spend, got %d", s.ROI)
	}
}

func TestSummarizeTotals(t *testing.T) {
	campaigns := []Campaign{
		{Budget: 2500, Spent: 1892, Impressions: 450000, Clicks: 25000, Conversions: 1200},
		{Budget: 1800, Spent: 1220, Impressions: 380000, Clicks: 18000, Conversions: 950},
		{Budget: 2000, Spent: 980, Impressions: 320000, Clicks: 15000, Conversions: 720},
	}
	s := Summarize(campaigns, 2)

	if s.Impressions != 1150000 {
		t.Fatalf("impressions: got %d", s.Impressions)
	}
	if s.Clicks != 58000 {
		t.Fatalf("clicks: got %d", s.Clicks)
	}
	if s.Conversions != 2870 {
		t.Fatalf("conversions: got %d", s.Conversions)
	}
	if s.Spent != 4092 {
		t.Fatalf("spent: got %v", s.Spent)
	}
	if s.Budget != 6300 {
		t.Fatalf("budget: got %v", s.Budget)
	}
	if s.UnreadNotifications != 2 {
		t.Fatalf("unread: got %d", s.UnreadNotifications)
	}
	// round(2870*100/4092) = round(70.136...) = 70
	if s.ROI != 70 {
		t.Fatalf("roi: got %d", s.ROI)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, 0)
	if s.ROI != 0 || s.Spent != 0 || s.Impressions != 0 {
		t.Fatalf("expected zero summary, got %+v", s)
	}
	if s.CTR() != 0 || s.CPC() != 0 || s.BudgetUsage() != 0 {
		t.Fatal("derived rates must be 0 on an empty summary")
	}
}

func TestDerivedRates(t *testing.T) {
	s := Summarize([]Campaign{
		{Budget: 200, Spent: 100, Impressions: 10000, Clicks: 250, Conversions: 50},
	}, 0)
	if got := s.CTR(); got != 2.5 {
		t.Fatalf("CTR: got %v", got)
	}
	if got := s.CPC(); got != 0.4 {
		t.Fatalf("CPC: got %v", got)
	}
	if got := s.BudgetUsage(); got != 50 {
		t.Fatalf("BudgetUsage: got %v", got)
	}
}
