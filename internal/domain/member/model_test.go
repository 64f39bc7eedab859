package member

import "testing"

func TestMember_BelongsTo(t *testing.T) {
	t.Parallel()

	m := Member{Name: " Jane  Doe", HomeClub: "Winnetka", OtherClubs: []string{"Skokie Valley"}}
	if !m.BelongsTo("winnetka") || !m.BelongsTo("Skokie Valley ") {
		t.Fatalf("expected membership for home and other club")
	}
	if m.BelongsTo("Glenview") || m.BelongsTo("") {
		t.Fatalf("unexpected membership")
	}
	if got := m.NormalizedName(); got != "jane doe" {
		t.Fatalf("unexpected normalized name: got=%q want=%q", got, "jane doe")
	}
}
