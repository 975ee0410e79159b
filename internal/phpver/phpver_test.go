package phpver

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in      string
		want    ID
		wantErr bool
	}{
		{"7", 70000, false},
		{"7.0", 70000, false},
		{"7.1", 70100, false},
		{"7.1.3", 70103, false},
		{"8.0", 80000, false},
		{" 7.4 ", 70400, false},
		{"", 0, true},
		{"seven", 0, true},
		{"7.1.2.3", 0, true},
		{"7.-1", 0, true},
		{"7.100", 0, true},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("Parse(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("Parse(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		id   ID
		want string
	}{
		{PHP70, "7.0"},
		{PHP71, "7.1"},
		{70103, "7.1.3"},
		{PHP80, "8.0"},
	}
	for _, tc := range cases {
		if got := tc.id.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", tc.id, got, tc.want)
		}
	}
}
