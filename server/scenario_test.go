package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mlunde/raider-web/game"
)

const sampleScenario = `
sectors:
  - name: alpha
    ship: { x: 4000, y: 3000 }
    raiders: 6
    bases:
      - { x: 1000, y: 1000, antimatter: 5000 }
      - { x: 7000, y: 5000, antimatter: 8000 }
  - name: beta
    raiders: 3
    bases:
      - { x: 2000, y: 2000, antimatter: 1000 }
`

func writeScenario(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sectors.yaml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSectorEmptyPathUsesDefault(t *testing.T) {
	sec, err := LoadSector("", "")
	if err != nil {
		t.Fatalf("LoadSector: %v", err)
	}
	if sec.Name != DefaultSector().Name {
		t.Errorf("sector = %q, want the default", sec.Name)
	}
}

func TestLoadSectorMissingFileUsesDefault(t *testing.T) {
	sec, err := LoadSector(filepath.Join(t.TempDir(), "nope.yaml"), "")
	if err != nil {
		t.Fatalf("LoadSector: %v", err)
	}
	if len(sec.Bases) == 0 {
		t.Error("default sector has no bases")
	}
}

func TestLoadSectorFirstByDefault(t *testing.T) {
	sec, err := LoadSector(writeScenario(t, sampleScenario), "")
	if err != nil {
		t.Fatalf("LoadSector: %v", err)
	}
	if sec.Name != "alpha" {
		t.Errorf("sector = %q, want alpha", sec.Name)
	}
	if len(sec.Bases) != 2 || sec.Raiders != 6 {
		t.Errorf("sector = %+v", sec)
	}
}

func TestLoadSectorByName(t *testing.T) {
	sec, err := LoadSector(writeScenario(t, sampleScenario), "beta")
	if err != nil {
		t.Fatalf("LoadSector: %v", err)
	}
	if sec.Name != "beta" || sec.Raiders != 3 {
		t.Errorf("sector = %+v, want beta", sec)
	}
}

func TestLoadSectorUnknownName(t *testing.T) {
	if _, err := LoadSector(writeScenario(t, sampleScenario), "gamma"); err == nil {
		t.Error("LoadSector found a sector that does not exist")
	}
}

func TestLoadSectorValidation(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"no sectors", "sectors: []\n"},
		{"no bases", "sectors:\n  - name: bad\n    bases: []\n"},
		{
			"base outside the sector",
			"sectors:\n  - name: bad\n    bases:\n      - { x: -50, y: 100, antimatter: 10 }\n",
		},
		{
			"negative antimatter",
			"sectors:\n  - name: bad\n    bases:\n      - { x: 100, y: 100, antimatter: -1 }\n",
		},
		{
			"negative raider count",
			"sectors:\n  - name: bad\n    raiders: -2\n    bases:\n      - { x: 100, y: 100, antimatter: 10 }\n",
		},
		{"not yaml", "{{{"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadSector(writeScenario(t, tc.data), ""); err == nil {
				t.Error("LoadSector accepted an invalid scenario")
			}
		})
	}
}

func TestWorldBases(t *testing.T) {
	sec := Sector{
		Name:  "x",
		Bases: []BaseDef{{X: 10, Y: 20, Antimatter: 30}},
	}
	bases := sec.WorldBases()
	if len(bases) != 1 {
		t.Fatalf("bases = %d, want 1", len(bases))
	}
	want := game.Base{Pos: game.Vec2{X: 10, Y: 20}, Antimatter: 30}
	if bases[0] != want {
		t.Errorf("base = %+v, want %+v", bases[0], want)
	}
}
