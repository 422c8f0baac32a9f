// Package thikana resolves Bangladesh's administrative address hierarchy:
// 8 divisions, 64 districts and the upazilas beneath them. It loads an
// embedded gazetteer once, then answers id and name lookups, validates
// hierarchical selections with cascade-clearing, and reconciles the mixed
// name/id shape that address records are persisted in.
//
// "Thikana" is Bengali for "address".
package thikana

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
)

// Embedded reference data. The JSON files are the source of truth for the
// hierarchy; ids are stable and never reassigned between releases.
//
//go:embed data
var refData embed.FS

const (
	divisionsFile = "divisions.json"
	districtsFile = "districts.json"
	upazilasFile  = "upazilas.json"
)

// Division is a first-level administrative division. Name is the canonical
// uppercase English label ("DHAKA") that persisted address records store;
// BnName is the Bengali name. Lat/Lng locate the divisional headquarters.
type Division struct {
	ID     string  `json:"id"`
	Name   string  `json:"en_name"`
	BnName string  `json:"bn_name"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
}

// District is a second-level administrative division. Lat/Lng locate the
// district headquarters.
type District struct {
	ID         string  `json:"id"`
	DivisionID string  `json:"division_id"`
	Name       string  `json:"en_name"`
	BnName     string  `json:"bn_name"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
}

// Upazila is a third-level administrative division (sub-district).
type Upazila struct {
	ID         string `json:"id"`
	DistrictID string `json:"district_id"`
	Name       string `json:"en_name"`
	BnName     string `json:"bn_name"`
}

// Config holds configuration options for creating a Gazetteer.
type Config struct {
	// DataDir optionally names a directory whose divisions.json,
	// districts.json and upazilas.json override the embedded data.
	// Files missing from the directory fall back to the embedded copy.
	DataDir string
}

// Option is a functional option for configuring a Gazetteer.
type Option func(*Config)

// WithDataDir overrides the embedded reference data with files from dir.
func WithDataDir(dir string) Option {
	return func(c *Config) {
		c.DataDir = dir
	}
}

func defaultConfig() Config {
	return Config{}
}

// Gazetteer holds the administrative reference data and the lookup indexes
// derived from it. It is immutable after New returns and safe for
// concurrent use. Accessors return copies, never aliases into the
// internal slices.
type Gazetteer struct {
	divisions []Division
	districts []District
	upazilas  []Upazila

	// id -> index into the slices above
	divisionByID map[string]int
	districtByID map[string]int
	upazilaByID  map[string]int

	// case-folded English name -> indices in dataset order
	divisionNameIdx map[string][]int
	districtNameIdx map[string][]int
	upazilaNameIdx  map[string][]int

	// parent id -> child indices in dataset order
	districtsOf map[string][]int
	upazilasOf  map[string][]int

	cellIndex districtCellIndex

	config Config
}

// New loads the reference data and returns a ready Gazetteer.
func New(opts ...Option) (*Gazetteer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Gazetteer{config: cfg}
	if err := g.load(); err != nil {
		return nil, err
	}
	g.buildIndexes()
	g.buildCellIndex()
	return g, nil
}

var (
	defaultGazetteer     *Gazetteer
	defaultGazetteerOnce sync.Once
	defaultGazetteerErr  error
)

// Default returns a process-wide Gazetteer built from the embedded data.
// The first call builds it; subsequent calls return the same instance.
func Default() (*Gazetteer, error) {
	defaultGazetteerOnce.Do(func() {
		defaultGazetteer, defaultGazetteerErr = New()
	})
	return defaultGazetteer, defaultGazetteerErr
}

func (g *Gazetteer) load() error {
	divisions, err := loadDataFile[Division](g, divisionsFile)
	if err != nil {
		return err
	}
	districts, err := loadDataFile[District](g, districtsFile)
	if err != nil {
		return err
	}
	upazilas, err := loadDataFile[Upazila](g, upazilasFile)
	if err != nil {
		return err
	}
	g.divisions = divisions
	g.districts = districts
	g.upazilas = upazilas
	return nil
}

// openDataFile opens name from the configured override directory when the
// file exists there, falling back to the embedded copy.
func (g *Gazetteer) openDataFile(name string) (io.ReadCloser, error) {
	if g.config.DataDir != "" {
		f, err := os.Open(filepath.Join(g.config.DataDir, name))
		if err == nil {
			return f, nil
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	return refData.Open(path.Join("data", name))
}

func loadDataFile[T any](g *Gazetteer, name string) ([]T, error) {
	f, err := g.openDataFile(name)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	var records []T
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return records, nil
}

// ExportData writes the loaded reference data into dir as divisions.json,
// districts.json and upazilas.json, one record per line in dataset order.
// It is the companion to WithDataDir for preparing dataset updates: load
// the candidate files, Verify them, then export the canonical form.
func (g *Gazetteer) ExportData(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	if err := writeDataFile(filepath.Join(dir, divisionsFile), g.divisions); err != nil {
		return err
	}
	if err := writeDataFile(filepath.Join(dir, districtsFile), g.districts); err != nil {
		return err
	}
	return writeDataFile(filepath.Join(dir, upazilasFile), g.upazilas)
}

func writeDataFile[T any](dest string, records []T) error {
	var buf bytes.Buffer
	buf.WriteString("[\n")
	for i, r := range records {
		b, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", filepath.Base(dest), err)
		}
		buf.WriteString("  ")
		buf.Write(b)
		if i < len(records)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("]\n")
	if err := os.WriteFile(dest, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(dest), err)
	}
	return nil
}

func (g *Gazetteer) buildIndexes() {
	g.divisionByID = make(map[string]int, len(g.divisions))
	g.divisionNameIdx = make(map[string][]int, len(g.divisions))
	for i, d := range g.divisions {
		g.divisionByID[d.ID] = i
		key := strings.ToLower(d.Name)
		g.divisionNameIdx[key] = append(g.divisionNameIdx[key], i)
	}

	g.districtByID = make(map[string]int, len(g.districts))
	g.districtNameIdx = make(map[string][]int, len(g.districts))
	g.districtsOf = make(map[string][]int, len(g.divisions))
	for i, d := range g.districts {
		g.districtByID[d.ID] = i
		key := strings.ToLower(d.Name)
		g.districtNameIdx[key] = append(g.districtNameIdx[key], i)
		g.districtsOf[d.DivisionID] = append(g.districtsOf[d.DivisionID], i)
	}

	g.upazilaByID = make(map[string]int, len(g.upazilas))
	g.upazilaNameIdx = make(map[string][]int, len(g.upazilas))
	g.upazilasOf = make(map[string][]int, len(g.districts))
	for i, u := range g.upazilas {
		g.upazilaByID[u.ID] = i
		key := strings.ToLower(u.Name)
		g.upazilaNameIdx[key] = append(g.upazilaNameIdx[key], i)
		g.upazilasOf[u.DistrictID] = append(g.upazilasOf[u.DistrictID], i)
	}
}

// Validation thresholds for dataset integrity checks. Bangladesh has had
// exactly 8 divisions since 2015 and 64 districts since 1984; upazilas are
// still occasionally carved out of existing ones, so that count is a floor.
const (
	divisionCount    = 8
	minDistrictCount = 64
	minUpazilaCount  = 480
)

// knownSelection is a spot-check row used by Verify: a division name with
// a district and upazila that must resolve under it.
type knownSelection struct {
	division   string
	divisionID string
	districtID string
	upazilaID  string
}

var knownSelections = []knownSelection{
	{"DHAKA", "3", "301", "30102"},      // Dohar, Dhaka
	{"CHITTAGONG", "2", "204", "20415"}, // Sitakunda, Chittagong
	{"RANGPUR", "7", "707", "70707"},    // Rangpur Sadar
	{"SYLHET", "8", "804", "80412"},     // Sylhet Sadar
}

// Verify runs integrity and functional checks over the loaded reference
// data: counts, id uniqueness, the uppercase division-name contract,
// orphaned parent references and a handful of known-value lookups. It is
// the guard for override data directories and for dataset updates.
func (g *Gazetteer) Verify() error {
	if len(g.divisions) != divisionCount {
		return fmt.Errorf("division count: got %d, want %d", len(g.divisions), divisionCount)
	}
	if len(g.districts) < minDistrictCount {
		return fmt.Errorf("district count too low: got %d, want >= %d", len(g.districts), minDistrictCount)
	}
	if len(g.upazilas) < minUpazilaCount {
		return fmt.Errorf("upazila count too low: got %d, want >= %d", len(g.upazilas), minUpazilaCount)
	}

	seen := make(map[string]struct{}, len(g.divisions))
	folded := make(map[string]string, len(g.divisions))
	for i, d := range g.divisions {
		if d.ID == "" || d.Name == "" {
			return fmt.Errorf("division %d has an empty id or name", i)
		}
		if d.Name != strings.ToUpper(d.Name) {
			return fmt.Errorf("division %s name %q is not uppercase", d.ID, d.Name)
		}
		if _, ok := seen[d.ID]; ok {
			return fmt.Errorf("duplicate division id %s", d.ID)
		}
		seen[d.ID] = struct{}{}
		key := strings.ToLower(d.Name)
		if other, ok := folded[key]; ok {
			return fmt.Errorf("division names %q and %q collide under case folding", other, d.Name)
		}
		folded[key] = d.Name
	}

	seen = make(map[string]struct{}, len(g.districts))
	for i, d := range g.districts {
		if d.ID == "" || d.Name == "" {
			return fmt.Errorf("district %d has an empty id or name", i)
		}
		if _, ok := seen[d.ID]; ok {
			return fmt.Errorf("duplicate district id %s", d.ID)
		}
		seen[d.ID] = struct{}{}
		if _, ok := g.divisionByID[d.DivisionID]; !ok {
			return fmt.Errorf("district %s references unknown division %q", d.ID, d.DivisionID)
		}
		if d.Lat == 0 && d.Lng == 0 {
			return fmt.Errorf("district %s has no headquarters coordinates", d.ID)
		}
	}

	seen = make(map[string]struct{}, len(g.upazilas))
	for i, u := range g.upazilas {
		if u.ID == "" || u.Name == "" {
			return fmt.Errorf("upazila %d has an empty id or name", i)
		}
		if _, ok := seen[u.ID]; ok {
			return fmt.Errorf("duplicate upazila id %s", u.ID)
		}
		seen[u.ID] = struct{}{}
		if _, ok := g.districtByID[u.DistrictID]; !ok {
			return fmt.Errorf("upazila %s references unknown district %q", u.ID, u.DistrictID)
		}
	}

	for _, ks := range knownSelections {
		id, ok := g.DivisionIDByName(ks.division)
		if !ok || id != ks.divisionID {
			return fmt.Errorf("division lookup %q = %q, want %q", ks.division, id, ks.divisionID)
		}
		d, ok := g.DistrictByID(ks.districtID)
		if !ok {
			return fmt.Errorf("district %s missing", ks.districtID)
		}
		if d.DivisionID != ks.divisionID {
			return fmt.Errorf("district %s division = %q, want %q", ks.districtID, d.DivisionID, ks.divisionID)
		}
		u, ok := g.UpazilaByID(ks.upazilaID)
		if !ok {
			return fmt.Errorf("upazila %s missing", ks.upazilaID)
		}
		if u.DistrictID != ks.districtID {
			return fmt.Errorf("upazila %s district = %q, want %q", ks.upazilaID, u.DistrictID, ks.districtID)
		}
	}

	return nil
}
