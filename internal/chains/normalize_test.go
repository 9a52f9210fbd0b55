package chains

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Pizza Hut", "pizza hut"},
		{"  PIZZA   HUT  ", "pizza hut"},
		{"Domino's Pizza", "dominos pizza"},
		{"Cafe-Noir", "cafenoir"},
		{"McDonald's", "mcdonalds"},
		{"...", ""},
		{"", ""},
		{"Burger King #42", "burger king 42"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
