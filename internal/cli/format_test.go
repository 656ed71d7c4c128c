package cli

import (
	"strings"
	"testing"

	"spent/internal/model"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"12.34", 12.34, false},
		{"12,34", 12.34, false},
		{" 5 ", 5, false},
		{"12.345", 12.35, false}, // rounds to cents, half up
		{"12.344", 12.34, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseAmount(%q) = %v, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAmount(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-10")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Format(DateLayout) != "2025-06-10" {
		t.Errorf("parsed date = %v", d)
	}

	if _, err := ParseDate("10/06/2025"); err == nil {
		t.Error("ParseDate accepted a non-ISO date")
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{1234.5, "$1,234.50"},
		{0, "$0.00"},
		{99.999, "$100.00"},
		{-42.5, "-$42.50"},
		{1000000, "$1,000,000.00"},
	}

	for _, tt := range tests {
		if got := FormatMoney(tt.amount, "$"); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatShareAndPercent(t *testing.T) {
	if got := FormatShare(0.8333); got != "83.3%" {
		t.Errorf("FormatShare = %q, want 83.3%%", got)
	}
	if got := FormatPercent(66.666); got != "66.7%" {
		t.Errorf("FormatPercent = %q, want 66.7%%", got)
	}
}

func TestFormatDelta(t *testing.T) {
	if got := FormatDelta(120, 100, "$"); got != "+$20.00" {
		t.Errorf("positive delta = %q", got)
	}
	if got := FormatDelta(80, 100, "$"); got != "-$20.00" {
		t.Errorf("negative delta = %q", got)
	}
}

func TestInsightText_CoversEveryRule(t *testing.T) {
	rules := []model.InsightRule{
		model.RuleDominantCategory,
		model.RuleTrend,
		model.RuleMoreHistory,
		model.RuleProjection,
		model.RuleBudgetExceeded,
		model.RuleBudgetWarning,
		model.RuleWeekendSpending,
		model.RuleFrequency,
		model.RuleOnTrack,
	}

	for _, rule := range rules {
		in := model.Insight{
			Rule:     rule,
			Category: "Food & Dining",
			Percent:  0.5,
			Amount:   100,
			Compare:  200,
			Trend:    model.TrendIncreasing,
		}
		text := InsightText(in, "$")
		if text == "" || text == string(rule) {
			t.Errorf("no wording for rule %s", rule)
		}
	}
}

func TestInsightText_DominantNamesCategory(t *testing.T) {
	in := model.Insight{
		Rule:     model.RuleDominantCategory,
		Severity: model.SeverityInfo,
		Category: "Food & Dining",
		Percent:  0.50,
	}
	text := InsightText(in, "$")
	if !strings.Contains(text, "Food & Dining") || !strings.Contains(text, "50.0%") {
		t.Errorf("dominant text = %q, want category and share named", text)
	}
}
