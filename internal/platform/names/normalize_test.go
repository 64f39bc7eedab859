package names

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"  Bob   Smith ":   "bob smith",
		"BOB\tSMITH":       "bob smith",
		"bob smith":        "bob smith",
		"":                 "",
		"   ":              "",
		"Mary-Ann  O'Neil": "mary-ann o'neil",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q)=%q want=%q", in, got, want)
		}
	}
}

func TestLastName(t *testing.T) {
	t.Parallel()

	if got := LastName(" Jane  DOE "); got != "doe" {
		t.Fatalf("unexpected last name: got=%q want=%q", got, "doe")
	}
	if got := LastName(""); got != "" {
		t.Fatalf("expected empty last name, got=%q", got)
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	if !Equal("Jane Doe", " jane   doe") {
		t.Fatalf("expected names to be equal")
	}
	if Equal("Jane Doe", "Jane Does") {
		t.Fatalf("expected names to differ")
	}
}
