package catalog

import "testing"

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	db, _ := NewDatabase(BuiltinTeams())
	return NewResolver(db)
}

func TestResolveExactAllAliases(t *testing.T) {
	db, _ := NewDatabase(BuiltinTeams())
	r := NewResolver(db)

	for _, team := range BuiltinTeams() {
		for _, alias := range team.Aliases {
			m, ok := r.ResolveExact(alias)
			if !ok {
				t.Fatalf("alias %q did not resolve", alias)
			}
			if m.Confidence != 1.0 {
				t.Fatalf("alias %q resolved with confidence %v", alias, m.Confidence)
			}
			if _, found := db.Get(m.Key); !found {
				t.Fatalf("alias %q resolved to unknown key %q", alias, m.Key)
			}
		}
	}
}

func TestResolveExactCJK(t *testing.T) {
	r := newTestResolver(t)
	m, ok := r.Resolve("巴黎圣日耳曼", DefaultQueryCutoff)
	if !ok || m.Key != "paris saint-germain" || m.Confidence != 1.0 {
		t.Fatalf("got %+v, %v", m, ok)
	}
}

func TestResolveContainment(t *testing.T) {
	r := newTestResolver(t)

	// Alias inside the input.
	m, ok := r.Resolve("FC Barcelona 2024 Special Edition", DefaultQueryCutoff)
	if !ok || m.Key != "barcelona" {
		t.Fatalf("got %+v, %v", m, ok)
	}
	if m.Confidence != 0.95 {
		t.Fatalf("confidence = %v, want 0.95", m.Confidence)
	}

	// Input inside an alias.
	m, ok = r.Resolve("arsen", DefaultQueryCutoff)
	if !ok || m.Key != "arsenal" || m.Confidence != 0.95 {
		t.Fatalf("got %+v, %v", m, ok)
	}
}

func TestResolveContainmentSkipsShortLatinAliases(t *testing.T) {
	if !skipForContainment("om") {
		t.Fatal("two-rune Latin alias should be skipped")
	}
	if skipForContainment("主场") {
		t.Fatal("two-rune CJK alias should stay eligible")
	}
	if skipForContainment("psg") {
		t.Fatal("three-rune alias should stay eligible")
	}
	if !skipForContainment("x") {
		t.Fatal("single-rune alias should be skipped")
	}
}

func TestResolveFuzzyMisspelling(t *testing.T) {
	r := newTestResolver(t)
	m, ok := r.ResolveFuzzy("Barcleona", DefaultQueryCutoff)
	if !ok || m.Key != "barcelona" {
		t.Fatalf("got %+v, %v", m, ok)
	}
	if m.Confidence < 0.85 || m.Confidence > 1.0 {
		t.Fatalf("confidence = %v", m.Confidence)
	}
}

func TestResolveFuzzySkipsShortInput(t *testing.T) {
	r := newTestResolver(t)
	if _, ok := r.ResolveFuzzy("zz", DefaultIngestCutoff); ok {
		t.Fatal("fuzzy matched a two-rune input")
	}
}

func TestResolveNoMatch(t *testing.T) {
	r := newTestResolver(t)
	if m, ok := r.Resolve("xyzqwv 123456789", DefaultQueryCutoff); ok {
		t.Fatalf("unexpected match: %+v", m)
	}
}

func TestResolveTitlePipeline(t *testing.T) {
	r := newTestResolver(t)

	cases := []struct {
		title string
		key   string
	}{
		{"24-25 PSG Home Jersey", "paris saint-germain"},
		{"Maillot Extérieur Olympique de Marseille 2024/25", "marseille"},
		{"Barcleona Home 24-25", "barcelona"},
		{"曼联主场球衣 24-25", "manchester united"},
	}
	for _, tc := range cases {
		m, ok := r.ResolveTitle(tc.title, DefaultIngestCutoff)
		if !ok {
			t.Fatalf("ResolveTitle(%q) found nothing", tc.title)
		}
		if m.Key != tc.key {
			t.Fatalf("ResolveTitle(%q) = %q, want %q", tc.title, m.Key, tc.key)
		}
	}
}

func TestStripTitleNoise(t *testing.T) {
	got := stripTitleNoise("24-25 PSG Home Jersey Long Sleeve")
	if got != "PSG" {
		t.Fatalf("stripTitleNoise = %q, want %q", got, "PSG")
	}
}
