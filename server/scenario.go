package server

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mlunde/raider-web/game"
)

// Sector is one playable layout: where the bases sit, how much antimatter
// they start with, where the ship starts, and how many raiders spawn.
type Sector struct {
	Name    string    `yaml:"name"`
	Ship    Point     `yaml:"ship"`
	Bases   []BaseDef `yaml:"bases"`
	Raiders int       `yaml:"raiders"` // 0 keeps the default roster size
}

// Point is a position inside the sector.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// BaseDef places one antimatter base.
type BaseDef struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Antimatter float64 `yaml:"antimatter"`
}

type scenarioFile struct {
	Sectors []Sector `yaml:"sectors"`
}

// DefaultSector is the compiled-in layout used when no scenario file is
// available: three bases spread across the middle of the sector.
func DefaultSector() Sector {
	return Sector{
		Name: "patrol-zone",
		Ship: Point{X: game.SectorWidth / 2, Y: game.SectorHeight / 2},
		Bases: []BaseDef{
			{X: 1400, Y: 1200, Antimatter: 24000},
			{X: 6600, Y: 1500, Antimatter: 24000},
			{X: 4000, Y: 4800, Antimatter: 24000},
		},
	}
}

// LoadSector reads the named sector from the YAML scenario file at path. An
// empty path or a missing file yields the default sector; an empty name
// takes the file's first sector.
func LoadSector(path, name string) (Sector, error) {
	if path == "" {
		return DefaultSector(), nil
	}
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultSector(), nil
	}
	if err != nil {
		return Sector{}, fmt.Errorf("read scenario %s: %w", path, err)
	}

	var file scenarioFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Sector{}, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if len(file.Sectors) == 0 {
		return Sector{}, fmt.Errorf("scenario %s: no sectors defined", path)
	}

	sec := file.Sectors[0]
	if name != "" {
		found := false
		for _, candidate := range file.Sectors {
			if candidate.Name == name {
				sec = candidate
				found = true
				break
			}
		}
		if !found {
			return Sector{}, fmt.Errorf("scenario %s: no sector named %q", path, name)
		}
	}

	if err := sec.validate(); err != nil {
		return Sector{}, fmt.Errorf("scenario %s: sector %q: %w", path, sec.Name, err)
	}
	return sec, nil
}

func (sec Sector) validate() error {
	if len(sec.Bases) == 0 {
		return fmt.Errorf("needs at least one base")
	}
	for i, b := range sec.Bases {
		if b.X < 0 || b.X > game.SectorWidth || b.Y < 0 || b.Y > game.SectorHeight {
			return fmt.Errorf("base %d at (%.0f, %.0f) is outside the sector", i, b.X, b.Y)
		}
		if b.Antimatter < 0 {
			return fmt.Errorf("base %d has negative antimatter", i)
		}
	}
	if sec.Raiders < 0 {
		return fmt.Errorf("raider count must not be negative")
	}
	return nil
}

// WorldBases converts the sector's base definitions into world entities.
func (sec Sector) WorldBases() []game.Base {
	bases := make([]game.Base, 0, len(sec.Bases))
	for _, b := range sec.Bases {
		bases = append(bases, game.Base{
			Pos:        game.Vec2{X: b.X, Y: b.Y},
			Antimatter: b.Antimatter,
		})
	}
	return bases
}
