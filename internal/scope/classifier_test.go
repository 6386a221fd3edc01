package scope

import "testing"

func TestClassifyDefaultCategoryRule(t *testing.T) {
	cases := []struct {
		category string
		expected Classification
	}{
		{"done", Completed},
		{"indeterminate", InProgress},
		{"new", Todo},
		{"", Todo},
		{"unknown-category", Todo},
	}

	for _, c := range cases {
		if got := Classify("Any", c.category, nil); got != c.expected {
			t.Errorf("Classify(category=%q) = %s, expected %s", c.category, got, c.expected)
		}
	}
}

func TestClassifyExplicitListsWinOutright(t *testing.T) {
	cfg := &StatusConfig{
		CompletedStatuses:  []string{"Shipped"},
		InProgressStatuses: []string{"Building"},
	}

	if got := Classify("shipped", "new", cfg); got != Completed {
		t.Errorf("Expected list membership to win over category, got %s", got)
	}
	if got := Classify("Building", "done", cfg); got != InProgress {
		t.Errorf("Expected list membership to win over category, got %s", got)
	}
	// Anything outside the lists is Todo, even with a done category.
	if got := Classify("Done", "done", cfg); got != Todo {
		t.Errorf("Expected Todo for status outside explicit lists, got %s", got)
	}
}

func TestClassifyOverrideMap(t *testing.T) {
	cfg := &StatusConfig{
		Overrides: map[string]Classification{"Waiting": Completed},
	}

	if got := Classify("waiting", "indeterminate", cfg); got != Completed {
		t.Errorf("Expected override map to win, got %s", got)
	}
	// Names without an override fall through to the category rule.
	if got := Classify("In Dev", "indeterminate", cfg); got != InProgress {
		t.Errorf("Expected category fallback, got %s", got)
	}
}
