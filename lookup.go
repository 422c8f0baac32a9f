package thikana

import "strings"

// Divisions returns every division in dataset order.
func (g *Gazetteer) Divisions() []Division {
	out := make([]Division, len(g.divisions))
	copy(out, g.divisions)
	return out
}

// Districts returns every district in dataset order.
func (g *Gazetteer) Districts() []District {
	out := make([]District, len(g.districts))
	copy(out, g.districts)
	return out
}

// Upazilas returns every upazila in dataset order.
func (g *Gazetteer) Upazilas() []Upazila {
	out := make([]Upazila, len(g.upazilas))
	copy(out, g.upazilas)
	return out
}

// DivisionCount returns the number of loaded divisions.
func (g *Gazetteer) DivisionCount() int { return len(g.divisions) }

// DistrictCount returns the number of loaded districts.
func (g *Gazetteer) DistrictCount() int { return len(g.districts) }

// UpazilaCount returns the number of loaded upazilas.
func (g *Gazetteer) UpazilaCount() int { return len(g.upazilas) }

// DivisionByID returns the division with the given id.
func (g *Gazetteer) DivisionByID(id string) (Division, bool) {
	i, ok := g.divisionByID[id]
	if !ok {
		return Division{}, false
	}
	return g.divisions[i], true
}

// DistrictByID returns the district with the given id.
func (g *Gazetteer) DistrictByID(id string) (District, bool) {
	i, ok := g.districtByID[id]
	if !ok {
		return District{}, false
	}
	return g.districts[i], true
}

// UpazilaByID returns the upazila with the given id.
func (g *Gazetteer) UpazilaByID(id string) (Upazila, bool) {
	i, ok := g.upazilaByID[id]
	if !ok {
		return Upazila{}, false
	}
	return g.upazilas[i], true
}

// DivisionIDByName resolves an English division name to its id. Matching
// is exact first, then case-insensitive; when several records share a
// folded name the first one in dataset order wins.
func (g *Gazetteer) DivisionIDByName(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	idxs := g.divisionNameIdx[strings.ToLower(name)]
	if len(idxs) == 0 {
		return "", false
	}
	for _, i := range idxs {
		if g.divisions[i].Name == name {
			return g.divisions[i].ID, true
		}
	}
	return g.divisions[idxs[0]].ID, true
}

// DistrictIDByName resolves an English district name to its id, with the
// same matching rules as DivisionIDByName.
func (g *Gazetteer) DistrictIDByName(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	idxs := g.districtNameIdx[strings.ToLower(name)]
	if len(idxs) == 0 {
		return "", false
	}
	for _, i := range idxs {
		if g.districts[i].Name == name {
			return g.districts[i].ID, true
		}
	}
	return g.districts[idxs[0]].ID, true
}

// UpazilaIDByName resolves an English upazila name to its id, with the
// same matching rules as DivisionIDByName. Several upazilas share a name
// (four are called Kaliganj); the first record in dataset order wins.
func (g *Gazetteer) UpazilaIDByName(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	idxs := g.upazilaNameIdx[strings.ToLower(name)]
	if len(idxs) == 0 {
		return "", false
	}
	for _, i := range idxs {
		if g.upazilas[i].Name == name {
			return g.upazilas[i].ID, true
		}
	}
	return g.upazilas[idxs[0]].ID, true
}

// DistrictsByDivision returns the districts of a division in dataset
// order. Unknown division ids yield an empty slice.
func (g *Gazetteer) DistrictsByDivision(divisionID string) []District {
	idxs := g.districtsOf[divisionID]
	out := make([]District, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, g.districts[i])
	}
	return out
}

// UpazilasByDistrict returns the upazilas of a district in dataset order.
// Unknown district ids yield an empty slice.
func (g *Gazetteer) UpazilasByDistrict(districtID string) []Upazila {
	idxs := g.upazilasOf[districtID]
	out := make([]Upazila, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, g.upazilas[i])
	}
	return out
}
