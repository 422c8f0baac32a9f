package thikana

// Form drives one address selection through user edits and record
// hydration.
//
// Hydration is the awkward phase: a persisted record is applied to the
// selection while the UI re-renders its cascading selects, and every
// programmatic re-render fires the same change events a user edit would.
// Without gating, the echoed division event would cascade-clear the
// district and upazila that were just loaded. The Form therefore carries
// an explicit hydrating flag: BeginHydration raises it and applies the
// record in one shot, Select calls while it is raised assign without
// cascading, and ConfirmHydration (driven by the render-complete event,
// never by a timer) verifies the loaded values against their candidate
// lists and lowers it.
//
// A Form is not safe for concurrent use; create one per address form.
type Form struct {
	g         *Gazetteer
	sel       Selection
	hydrating bool
}

// NewForm returns an empty form backed by g's reference data.
func (g *Gazetteer) NewForm() *Form {
	return &Form{g: g}
}

// BeginHydration reconciles rec into the form's selection atomically and
// raises the hydrating flag. Select calls between BeginHydration and
// ConfirmHydration assign single fields without cascade-clearing, so
// echoed change events cannot destroy the loaded values.
func (f *Form) BeginHydration(rec Record) ReconcileReport {
	sel, report := f.g.Reconcile(rec)
	f.sel = sel
	f.hydrating = true
	return report
}

// ConfirmHydration completes hydration: any loaded value that is absent
// from its candidate list is unset along with its descendants, and the
// hydrating flag is lowered. It reports whether a hydration was actually
// pending. Callers invoke it from the event that marks the selects as
// fully populated.
func (f *Form) ConfirmHydration() bool {
	if !f.hydrating {
		return false
	}
	if f.sel.DistrictID != "" && !containsDistrict(f.g.CandidateDistricts(f.sel), f.sel.DistrictID) {
		f.sel.DistrictID = ""
		f.sel.UpazilaID = ""
	}
	if f.sel.UpazilaID != "" && !containsUpazila(f.g.CandidateUpazilas(f.sel), f.sel.UpazilaID) {
		f.sel.UpazilaID = ""
	}
	f.hydrating = false
	return true
}

// Hydrating reports whether the form is between BeginHydration and
// ConfirmHydration.
func (f *Form) Hydrating() bool {
	return f.hydrating
}

// SelectDivision applies a division pick from the form's selector and
// returns the resulting selection.
func (f *Form) SelectDivision(id string) Selection {
	if f.hydrating {
		if _, ok := f.g.DivisionByID(id); ok {
			f.sel.DivisionID = id
		} else {
			f.sel.DivisionID = ""
		}
		return f.sel
	}
	f.sel = f.g.SetDivision(f.sel, id)
	return f.sel
}

// SelectDistrict applies a district pick from the form's selector and
// returns the resulting selection.
func (f *Form) SelectDistrict(id string) Selection {
	if f.hydrating {
		if _, ok := f.g.DistrictByID(id); ok {
			f.sel.DistrictID = id
		} else {
			f.sel.DistrictID = ""
		}
		return f.sel
	}
	f.sel = f.g.SetDistrict(f.sel, id)
	return f.sel
}

// SelectUpazila applies an upazila pick from the form's selector and
// returns the resulting selection.
func (f *Form) SelectUpazila(id string) Selection {
	if f.hydrating {
		if _, ok := f.g.UpazilaByID(id); ok {
			f.sel.UpazilaID = id
		} else {
			f.sel.UpazilaID = ""
		}
		return f.sel
	}
	f.sel = f.g.SetUpazila(f.sel, id)
	return f.sel
}

// Selection returns the form's current selection.
func (f *Form) Selection() Selection {
	return f.sel
}

// Record renders the form's current selection in its persisted shape.
func (f *Form) Record() Record {
	return f.g.ToRecord(f.sel)
}

// CandidateDistricts returns the districts currently selectable in the
// form's district dropdown.
func (f *Form) CandidateDistricts() []District {
	return f.g.CandidateDistricts(f.sel)
}

// CandidateUpazilas returns the upazilas currently selectable in the
// form's upazila dropdown.
func (f *Form) CandidateUpazilas() []Upazila {
	return f.g.CandidateUpazilas(f.sel)
}

func containsDistrict(districts []District, id string) bool {
	for _, d := range districts {
		if d.ID == id {
			return true
		}
	}
	return false
}

func containsUpazila(upazilas []Upazila, id string) bool {
	for _, u := range upazilas {
		if u.ID == id {
			return true
		}
	}
	return false
}
