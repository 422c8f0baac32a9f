package thikana

import (
	"testing"
)

func TestRoundTrip(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	// ──────────────────────────────────────────────
	// Round-trip: name → id → record → same name
	// ──────────────────────────────────────────────

	t.Run("DivisionNameToIDToName", func(t *testing.T) {
		for _, want := range g.Divisions() {
			t.Run(want.Name, func(t *testing.T) {
				id, ok := g.DivisionIDByName(want.Name)
				if !ok {
					t.Fatalf("DivisionIDByName(%q) found nothing", want.Name)
				}
				got, ok := g.DivisionByID(id)
				if !ok {
					t.Fatalf("DivisionByID(%q) found nothing", id)
				}
				if got.Name != want.Name {
					t.Errorf("round-trip: %q → %q → %q", want.Name, id, got.Name)
				}
			})
		}
	})

	t.Run("DistrictNameToIDToName", func(t *testing.T) {
		for _, want := range g.Districts() {
			id, ok := g.DistrictIDByName(want.Name)
			if !ok {
				t.Errorf("DistrictIDByName(%q) found nothing", want.Name)
				continue
			}
			// District names are unique, so the id round-trips exactly.
			if id != want.ID {
				t.Errorf("round-trip: %q → %q, want %q", want.Name, id, want.ID)
			}
		}
	})

	t.Run("UpazilaNameToIDToName", func(t *testing.T) {
		for _, want := range g.Upazilas() {
			id, ok := g.UpazilaIDByName(want.Name)
			if !ok {
				t.Errorf("UpazilaIDByName(%q) found nothing", want.Name)
				continue
			}
			// A dozen upazila names repeat across districts, so only the
			// name is guaranteed to round-trip, not the id.
			got, ok := g.UpazilaByID(id)
			if !ok {
				t.Errorf("UpazilaByID(%q) found nothing", id)
				continue
			}
			if got.Name != want.Name {
				t.Errorf("round-trip: %q → %q → %q", want.Name, id, got.Name)
			}
		}
	})

	// ──────────────────────────────────────────────
	// Round-trip: selection → record → selection over the whole dataset
	// ──────────────────────────────────────────────

	t.Run("RecordPipelineEveryUpazila", func(t *testing.T) {
		for _, u := range g.Upazilas() {
			d, ok := g.DistrictByID(u.DistrictID)
			if !ok {
				t.Fatalf("upazila %s references missing district %s", u.ID, u.DistrictID)
			}
			sel := Selection{DivisionID: d.DivisionID, DistrictID: d.ID, UpazilaID: u.ID}

			rec := g.ToRecord(sel)
			back := g.FromRecord(rec)
			if back != sel {
				t.Errorf("upazila %s: %+v → %+v → %+v", u.ID, sel, rec, back)
			}
		}
	})

	t.Run("RecordPipelineZeroSelection", func(t *testing.T) {
		rec := g.ToRecord(Selection{})
		if rec != (Record{}) {
			t.Errorf("ToRecord(zero) = %+v, want zero record", rec)
		}
		if sel := g.FromRecord(rec); !sel.IsZero() {
			t.Errorf("FromRecord(zero) = %+v, want zero selection", sel)
		}
	})

	// ──────────────────────────────────────────────
	// Reconciliation is idempotent: resolving a resolved record changes
	// nothing
	// ──────────────────────────────────────────────

	t.Run("ReconcileIdempotence", func(t *testing.T) {
		records := []Record{
			{Division: "DHAKA", District: "301", Upazila: "30102"},
			{Division: "dhaka", District: " 301", Upazila: "30102 "},
			{Division: "CHITTAGONG", District: "301", Upazila: "30102"},
			{Division: "NOTAREALDIVISION", District: "301", Upazila: "30101"},
			{Division: "SYLHET"},
			{},
		}
		for _, rec := range records {
			first := g.FromRecord(rec)
			second := g.FromRecord(g.ToRecord(first))
			if second != first {
				t.Errorf("record %+v: first pass %+v, second pass %+v", rec, first, second)
			}
		}
	})

	// ──────────────────────────────────────────────
	// Deterministic: same record → same resolution
	// ──────────────────────────────────────────────

	t.Run("Deterministic", func(t *testing.T) {
		rec := Record{Division: "CHITTAGONG", District: "204", Upazila: "20415"}
		s1, r1 := g.Reconcile(rec)
		s2, r2 := g.Reconcile(rec)
		if s1 != s2 {
			t.Errorf("non-deterministic selections: %+v vs %+v", s1, s2)
		}
		if r1 != r2 {
			t.Errorf("non-deterministic reports: %+v vs %+v", r1, r2)
		}
	})
}
