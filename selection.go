package thikana

// Selection is a hierarchical pick of division, district and upazila by
// id. An empty string means the field is unset. A district is only
// meaningful under its division and an upazila only under its district;
// the setters below maintain that invariant by cascade-clearing dependent
// fields when an ancestor genuinely changes.
type Selection struct {
	DivisionID string `json:"division_id"`
	DistrictID string `json:"district_id"`
	UpazilaID  string `json:"upazila_id"`
}

// IsZero reports whether no field is set.
func (s Selection) IsZero() bool {
	return s == Selection{}
}

// SetDivision returns sel with the division set to id. Dependent fields
// are kept when they still belong under the new division (re-assigning
// the current division is a no-op) and cleared otherwise. An empty or
// unknown id clears the whole selection.
func (g *Gazetteer) SetDivision(sel Selection, id string) Selection {
	if _, ok := g.divisionByID[id]; !ok {
		return Selection{}
	}
	out := Selection{DivisionID: id}
	if d, ok := g.DistrictByID(sel.DistrictID); ok && d.DivisionID == id {
		out.DistrictID = sel.DistrictID
		if u, ok := g.UpazilaByID(sel.UpazilaID); ok && u.DistrictID == sel.DistrictID {
			out.UpazilaID = sel.UpazilaID
		}
	}
	return out
}

// SetDistrict returns sel with the district set to id. The division is
// never altered. An id that is empty, unknown or outside the current
// division unsets the district and the upazila. The upazila is kept when
// it still belongs under the new district.
func (g *Gazetteer) SetDistrict(sel Selection, id string) Selection {
	out := Selection{DivisionID: sel.DivisionID}
	d, ok := g.DistrictByID(id)
	if !ok || d.DivisionID != sel.DivisionID {
		return out
	}
	out.DistrictID = id
	if u, ok := g.UpazilaByID(sel.UpazilaID); ok && u.DistrictID == id {
		out.UpazilaID = sel.UpazilaID
	}
	return out
}

// SetUpazila returns sel with the upazila set to id. An id that is empty,
// unknown or outside the current district unsets the upazila only.
func (g *Gazetteer) SetUpazila(sel Selection, id string) Selection {
	out := sel
	out.UpazilaID = ""
	u, ok := g.UpazilaByID(id)
	if !ok || sel.DistrictID == "" || u.DistrictID != sel.DistrictID {
		return out
	}
	out.UpazilaID = id
	return out
}

// CandidateDistricts returns the districts selectable under sel's
// division, in dataset order. An unset division has no candidates.
// Computing candidates never mutates the selection.
func (g *Gazetteer) CandidateDistricts(sel Selection) []District {
	if sel.DivisionID == "" {
		return []District{}
	}
	return g.DistrictsByDivision(sel.DivisionID)
}

// CandidateUpazilas returns the upazilas selectable under sel's district,
// in dataset order. An unset district has no candidates.
func (g *Gazetteer) CandidateUpazilas(sel Selection) []Upazila {
	if sel.DistrictID == "" {
		return []Upazila{}
	}
	return g.UpazilasByDistrict(sel.DistrictID)
}

// Consistent reports whether every set field of sel names a known record
// and every child belongs to its set parent. The zero Selection is
// consistent.
func (g *Gazetteer) Consistent(sel Selection) bool {
	if sel.DivisionID != "" {
		if _, ok := g.divisionByID[sel.DivisionID]; !ok {
			return false
		}
	}
	if sel.DistrictID != "" {
		d, ok := g.DistrictByID(sel.DistrictID)
		if !ok || d.DivisionID != sel.DivisionID {
			return false
		}
	}
	if sel.UpazilaID != "" {
		u, ok := g.UpazilaByID(sel.UpazilaID)
		if !ok || u.DistrictID != sel.DistrictID {
			return false
		}
	}
	return true
}
