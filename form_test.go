package thikana

import (
	"testing"
)

func TestFormUserEditLifecycle(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	f := g.NewForm()

	if !f.Selection().IsZero() {
		t.Fatalf("new form selection = %+v, want zero", f.Selection())
	}
	if f.Hydrating() {
		t.Fatal("new form reports hydrating")
	}
	if n := len(f.CandidateDistricts()); n != 0 {
		t.Errorf("district candidates before any pick = %d, want 0", n)
	}

	sel := f.SelectDivision("3")
	if sel != (Selection{DivisionID: "3"}) {
		t.Fatalf("after division pick selection = %+v", sel)
	}
	if n := len(f.CandidateDistricts()); n != 13 {
		t.Errorf("district candidates for DHAKA = %d, want 13", n)
	}
	if n := len(f.CandidateUpazilas()); n != 0 {
		t.Errorf("upazila candidates before district pick = %d, want 0", n)
	}

	sel = f.SelectDistrict("301")
	if sel != (Selection{DivisionID: "3", DistrictID: "301"}) {
		t.Fatalf("after district pick selection = %+v", sel)
	}
	if n := len(f.CandidateUpazilas()); n != 5 {
		t.Errorf("upazila candidates for Dhaka district = %d, want 5", n)
	}

	sel = f.SelectUpazila("30102")
	want := Selection{DivisionID: "3", DistrictID: "301", UpazilaID: "30102"}
	if sel != want {
		t.Fatalf("after upazila pick selection = %+v, want %+v", sel, want)
	}

	if rec := f.Record(); rec != (Record{Division: "DHAKA", District: "301", Upazila: "30102"}) {
		t.Errorf("Record() = %+v", rec)
	}

	// Switching division as a user edit cascades.
	sel = f.SelectDivision("2")
	if sel != (Selection{DivisionID: "2"}) {
		t.Errorf("after division switch selection = %+v, want division only", sel)
	}
}

func TestFormHydrationLifecycle(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	f := g.NewForm()

	rec := Record{Division: "DHAKA", District: "301", Upazila: "30102"}
	report := f.BeginHydration(rec)
	if !report.Clean() {
		t.Fatalf("clean record reported drops: %+v", report)
	}
	if !f.Hydrating() {
		t.Fatal("Hydrating() = false right after BeginHydration")
	}

	want := Selection{DivisionID: "3", DistrictID: "301", UpazilaID: "30102"}
	if f.Selection() != want {
		t.Fatalf("hydrated selection = %+v, want %+v", f.Selection(), want)
	}

	if !f.ConfirmHydration() {
		t.Fatal("ConfirmHydration() = false with a hydration pending")
	}
	if f.Hydrating() {
		t.Error("Hydrating() = true after ConfirmHydration")
	}
	if f.Selection() != want {
		t.Errorf("selection after confirm = %+v, want %+v", f.Selection(), want)
	}

	// The loaded selection renders back to the record it came from.
	if got := f.Record(); got != rec {
		t.Errorf("Record() = %+v, want %+v", got, rec)
	}
}

func TestFormConfirmWithoutBegin(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	f := g.NewForm()

	if f.ConfirmHydration() {
		t.Error("ConfirmHydration() = true with no hydration pending")
	}

	// Confirm is one-shot per BeginHydration.
	f.BeginHydration(Record{Division: "SYLHET"})
	if !f.ConfirmHydration() {
		t.Error("first ConfirmHydration() = false")
	}
	if f.ConfirmHydration() {
		t.Error("second ConfirmHydration() = true, want false")
	}
}

func TestFormRehydration(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	f := g.NewForm()

	f.BeginHydration(Record{Division: "DHAKA", District: "301", Upazila: "30102"})
	f.ConfirmHydration()

	// Loading a different record over a populated form replaces the
	// selection wholesale.
	f.BeginHydration(Record{Division: "RANGPUR", District: "707", Upazila: "70707"})
	f.ConfirmHydration()

	want := Selection{DivisionID: "7", DistrictID: "707", UpazilaID: "70707"}
	if f.Selection() != want {
		t.Errorf("rehydrated selection = %+v, want %+v", f.Selection(), want)
	}
}
