package models

import "testing"

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"일상", CategoryDaily, true},
		{"Daily", CategoryDaily, true},
		{"개발", CategoryDev, true},
		{"Dev", CategoryDev, true},
		{"daily", "", false},
		{"Cooking", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizeCategory(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("NormalizeCategory(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCategoryBySlug(t *testing.T) {
	if got, ok := CategoryBySlug("daily-life"); !ok || got != CategoryDaily {
		t.Errorf("CategoryBySlug(daily-life) = (%q, %v)", got, ok)
	}
	if got, ok := CategoryBySlug("development"); !ok || got != CategoryDev {
		t.Errorf("CategoryBySlug(development) = (%q, %v)", got, ok)
	}
	if _, ok := CategoryBySlug("cooking"); ok {
		t.Error("CategoryBySlug(cooking) should not resolve")
	}
}

func TestCategoryValid(t *testing.T) {
	if !CategoryDaily.Valid() || !CategoryDev.Valid() {
		t.Error("built-in categories should be valid")
	}
	if Category("일상").Valid() {
		t.Error("the localized spelling is an input alias, not a stored value")
	}
}
