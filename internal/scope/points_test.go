package scope

import "testing"

func TestExtractPointsShapes(t *testing.T) {
	cases := []struct {
		name      string
		value     any
		points    int
		estimated bool
	}{
		{"number", 8.0, 8, true},
		{"fractional number truncates", 5.5, 5, true},
		{"numeric string", "13", 13, true},
		{"padded numeric string", " 3 ", 3, true},
		{"object with value", map[string]any{"value": 5.0}, 5, true},
		{"object with count", map[string]any{"count": "2"}, 2, true},
		{"object with total", map[string]any{"total": 7.0}, 7, true},
		{"zero is genuine", 0.0, 0, true},
		{"negative is not genuine", -3.0, 0, false},
		{"empty string", "", 0, false},
		{"non-numeric string", "high", 0, false},
		{"nil value", nil, 0, false},
		{"object without known key", map[string]any{"id": "123"}, 0, false},
	}

	for _, c := range cases {
		fields := map[string]any{"customfield_1": c.value}
		points, estimated := ExtractPoints(fields, "customfield_1")
		if points != c.points || estimated != c.estimated {
			t.Errorf("%s: got (%d, %v), expected (%d, %v)", c.name, points, estimated, c.points, c.estimated)
		}
	}
}

func TestExtractPointsMissingField(t *testing.T) {
	points, estimated := ExtractPoints(map[string]any{}, "customfield_1")
	if points != 0 || estimated {
		t.Errorf("Expected (0, false) for absent field, got (%d, %v)", points, estimated)
	}
}

func TestExtractPointsUnconfiguredField(t *testing.T) {
	// An unconfigured points field means every ticket is estimated at zero.
	for _, field := range []string{"", "   "} {
		points, estimated := ExtractPoints(map[string]any{"customfield_1": 8.0}, field)
		if points != 0 || !estimated {
			t.Errorf("field %q: got (%d, %v), expected (0, true)", field, points, estimated)
		}
	}
}
