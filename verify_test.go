package thikana

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTestDataDir writes the given record sets as data files into a fresh
// temp directory. A nil slice skips its file, leaving the embedded copy in
// effect for that level.
func writeTestDataDir(t *testing.T, divisions []Division, districts []District, upazilas []Upazila) string {
	t.Helper()
	dir := t.TempDir()
	write := func(name string, v any) {
		t.Helper()
		b, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshaling %s: %v", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), b, 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	if divisions != nil {
		write(divisionsFile, divisions)
	}
	if districts != nil {
		write(districtsFile, districts)
	}
	if upazilas != nil {
		write(upazilasFile, upazilas)
	}
	return dir
}

func TestVerifyEmbeddedData(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if err := g.Verify(); err != nil {
		t.Errorf("Verify() on embedded data: %v", err)
	}
}

func TestVerifyCatchesCorruptData(t *testing.T) {
	base, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(d []Division, di []District, u []Upazila)
		wantErr string
	}{
		{
			name: "lowercase_division_name",
			mutate: func(d []Division, di []District, u []Upazila) {
				d[2].Name = "Dhaka"
			},
			wantErr: "not uppercase",
		},
		{
			name: "duplicate_division_id",
			mutate: func(d []Division, di []District, u []Upazila) {
				d[1].ID = d[0].ID
			},
			wantErr: "duplicate division id",
		},
		{
			name: "division_names_collide_under_folding",
			mutate: func(d []Division, di []District, u []Upazila) {
				d[1].Name = d[0].Name
			},
			wantErr: "collide under case folding",
		},
		{
			name: "empty_division_name",
			mutate: func(d []Division, di []District, u []Upazila) {
				d[0].Name = ""
			},
			wantErr: "empty id or name",
		},
		{
			name: "orphan_district",
			mutate: func(d []Division, di []District, u []Upazila) {
				di[0].DivisionID = "99"
			},
			wantErr: "references unknown division",
		},
		{
			name: "district_without_coordinates",
			mutate: func(d []Division, di []District, u []Upazila) {
				di[0].Lat = 0
				di[0].Lng = 0
			},
			wantErr: "no headquarters coordinates",
		},
		{
			name: "duplicate_district_id",
			mutate: func(d []Division, di []District, u []Upazila) {
				di[1].ID = di[0].ID
			},
			wantErr: "duplicate district id",
		},
		{
			name: "orphan_upazila",
			mutate: func(d []Division, di []District, u []Upazila) {
				u[0].DistrictID = "99999"
			},
			wantErr: "references unknown district",
		},
		{
			name: "duplicate_upazila_id",
			mutate: func(d []Division, di []District, u []Upazila) {
				u[1].ID = u[0].ID
			},
			wantErr: "duplicate upazila id",
		},
		{
			name: "empty_upazila_name",
			mutate: func(d []Division, di []District, u []Upazila) {
				u[0].Name = ""
			},
			wantErr: "empty id or name",
		},
		{
			name: "renamed_division_breaks_known_lookup",
			mutate: func(d []Division, di []District, u []Upazila) {
				d[2].Name = "DACCA"
			},
			wantErr: "division lookup",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			divisions := base.Divisions()
			districts := base.Districts()
			upazilas := base.Upazilas()
			tt.mutate(divisions, districts, upazilas)

			dir := writeTestDataDir(t, divisions, districts, upazilas)
			g, err := New(WithDataDir(dir))
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}

			err = g.Verify()
			if err == nil {
				t.Fatal("Verify() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Verify() error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestVerifyCatchesWrongCounts(t *testing.T) {
	base, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	t.Run("missing_division", func(t *testing.T) {
		dir := writeTestDataDir(t, base.Divisions()[:7], base.Districts(), base.Upazilas())
		g, err := New(WithDataDir(dir))
		if err != nil {
			t.Fatalf("New() error: %v", err)
		}
		err = g.Verify()
		if err == nil || !strings.Contains(err.Error(), "division count") {
			t.Errorf("Verify() = %v, want division count error", err)
		}
	})

	t.Run("too_few_districts", func(t *testing.T) {
		dir := writeTestDataDir(t, base.Divisions(), base.Districts()[:50], base.Upazilas())
		g, err := New(WithDataDir(dir))
		if err != nil {
			t.Fatalf("New() error: %v", err)
		}
		err = g.Verify()
		if err == nil || !strings.Contains(err.Error(), "district count too low") {
			t.Errorf("Verify() = %v, want district count error", err)
		}
	})

	t.Run("too_few_upazilas", func(t *testing.T) {
		dir := writeTestDataDir(t, base.Divisions(), base.Districts(), base.Upazilas()[:100])
		g, err := New(WithDataDir(dir))
		if err != nil {
			t.Fatalf("New() error: %v", err)
		}
		err = g.Verify()
		if err == nil || !strings.Contains(err.Error(), "upazila count too low") {
			t.Errorf("Verify() = %v, want upazila count error", err)
		}
	})
}
