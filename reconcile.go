package thikana

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Record is the persisted shape of an address selection. The division is
// stored as its uppercase English name while district and upazila are
// stored as ids; that mixed contract is fixed by existing data and cannot
// change here. Empty strings mean the field was never filled in.
type Record struct {
	Division string `json:"division"`
	District string `json:"district"`
	Upazila  string `json:"upazila"`
}

// FieldOutcome describes what Reconcile did with one incoming field.
type FieldOutcome struct {
	Input      string `json:"input"`
	Resolved   string `json:"resolved"`
	Dropped    bool   `json:"dropped"`
	Reason     string `json:"reason,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// ReconcileReport collects the per-field outcomes of a Reconcile call.
// The report is advisory; reconciliation never auto-corrects a field.
type ReconcileReport struct {
	Division FieldOutcome `json:"division"`
	District FieldOutcome `json:"district"`
	Upazila  FieldOutcome `json:"upazila"`
}

// Clean reports whether no field was dropped.
func (r ReconcileReport) Clean() bool {
	return !r.Division.Dropped && !r.District.Dropped && !r.Upazila.Dropped
}

const (
	reasonUnknownDivision = "unknown division name"
	reasonUnknownDistrict = "unknown district id"
	reasonUnknownUpazila  = "unknown upazila id"
	reasonDivisionUnset   = "division could not be resolved"
	reasonDistrictUnset   = "district could not be resolved"
	reasonForeignDistrict = "district belongs to a different division"
	reasonForeignUpazila  = "upazila belongs to a different district"
)

// FromRecord resolves a persisted record into a Selection, silently
// unsetting fields that no longer reconcile against the reference data.
// The result always satisfies Consistent. It never returns an error; a
// record full of garbage resolves to the zero Selection.
func (g *Gazetteer) FromRecord(rec Record) Selection {
	sel, _ := g.Reconcile(rec)
	return sel
}

// Reconcile resolves a persisted record into a Selection and reports what
// happened to each field. A field drops when its value is unknown or when
// its parent did not resolve; a dropped parent therefore always drops its
// descendants.
func (g *Gazetteer) Reconcile(rec Record) (Selection, ReconcileReport) {
	var sel Selection
	var report ReconcileReport
	sel.DivisionID, report.Division = g.reconcileDivision(rec.Division)
	sel.DistrictID, report.District = g.reconcileDistrict(rec.District, sel.DivisionID)
	sel.UpazilaID, report.Upazila = g.reconcileUpazila(rec.Upazila, sel.DistrictID)
	return sel, report
}

func (g *Gazetteer) reconcileDivision(name string) (string, FieldOutcome) {
	name = strings.TrimSpace(name)
	out := FieldOutcome{Input: name}
	if name == "" {
		return "", out
	}
	id, ok := g.DivisionIDByName(name)
	if !ok {
		out.Dropped = true
		out.Reason = reasonUnknownDivision
		if d, ok := g.SuggestDivision(name); ok {
			out.Suggestion = d.Name
		}
		return "", out
	}
	out.Resolved = id
	return id, out
}

func (g *Gazetteer) reconcileDistrict(id, divisionID string) (string, FieldOutcome) {
	id = strings.TrimSpace(id)
	out := FieldOutcome{Input: id}
	if id == "" {
		return "", out
	}
	d, ok := g.DistrictByID(id)
	if !ok {
		out.Dropped = true
		out.Reason = reasonUnknownDistrict
		return "", out
	}
	if divisionID == "" {
		out.Dropped = true
		out.Reason = reasonDivisionUnset
		return "", out
	}
	if d.DivisionID != divisionID {
		out.Dropped = true
		out.Reason = reasonForeignDistrict
		return "", out
	}
	out.Resolved = id
	return id, out
}

func (g *Gazetteer) reconcileUpazila(id, districtID string) (string, FieldOutcome) {
	id = strings.TrimSpace(id)
	out := FieldOutcome{Input: id}
	if id == "" {
		return "", out
	}
	u, ok := g.UpazilaByID(id)
	if !ok {
		out.Dropped = true
		out.Reason = reasonUnknownUpazila
		return "", out
	}
	if districtID == "" {
		out.Dropped = true
		out.Reason = reasonDistrictUnset
		return "", out
	}
	if u.DistrictID != districtID {
		out.Dropped = true
		out.Reason = reasonForeignUpazila
		return "", out
	}
	out.Resolved = id
	return id, out
}

// ToRecord renders sel in its persisted shape: the division's uppercase
// English name, and the district and upazila ids verbatim. Unset fields
// become empty strings. For any selection produced by FromRecord,
// ToRecord(FromRecord(rec)) round-trips to itself.
func (g *Gazetteer) ToRecord(sel Selection) Record {
	var rec Record
	if d, ok := g.DivisionByID(sel.DivisionID); ok {
		rec.Division = strings.ToUpper(d.Name)
	}
	rec.District = sel.DistrictID
	rec.Upazila = sel.UpazilaID
	return rec
}

// maxSuggestDistance caps the edit distance for name suggestions. Larger
// distances over names this short produce noise, not typo corrections.
const maxSuggestDistance = 3

// maxNameInputLen caps the length of untrusted name input before it hits
// the Levenshtein matcher.
const maxNameInputLen = 256

func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) > maxNameInputLen {
		return string(runes[:maxNameInputLen])
	}
	return name
}

// SuggestDivision returns the division whose English name is closest to
// name within maxSuggestDistance edits, case-insensitively. Ties resolve
// to the first record in dataset order.
func (g *Gazetteer) SuggestDivision(name string) (Division, bool) {
	name = strings.ToLower(strings.TrimSpace(truncateName(name)))
	if name == "" {
		return Division{}, false
	}
	best := -1
	bestDist := maxSuggestDistance + 1
	for i, d := range g.divisions {
		dist := levenshtein.ComputeDistance(name, strings.ToLower(d.Name))
		if dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	if best < 0 {
		return Division{}, false
	}
	return g.divisions[best], true
}

// SuggestDistrict returns the district whose English name is closest to
// name within maxSuggestDistance edits, optionally narrowed to one
// division. Ties resolve to the first record in dataset order.
func (g *Gazetteer) SuggestDistrict(name, divisionID string) (District, bool) {
	name = strings.ToLower(strings.TrimSpace(truncateName(name)))
	if name == "" {
		return District{}, false
	}
	best := -1
	bestDist := maxSuggestDistance + 1
	for i, d := range g.districts {
		if divisionID != "" && d.DivisionID != divisionID {
			continue
		}
		dist := levenshtein.ComputeDistance(name, strings.ToLower(d.Name))
		if dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	if best < 0 {
		return District{}, false
	}
	return g.districts[best], true
}
