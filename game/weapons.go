package game

// WeaponType tags the three raider weapon systems.
type WeaponType int

const (
	WeaponKinetic WeaponType = iota
	WeaponPhaser
	WeaponTorpedo
)

// WeaponStats holds the firing constants for each weapon system.
type WeaponStats struct {
	Name      string
	Speed     float64 // projectile speed in units per ms
	Threshold float64 // weapon charge consumed per shot
	Power     float64 // antimatter consumed per shot
	Damage    float64 // damage on impact; for phasers, the peak before falloff
	MaxRange  float64 // flight distance before the round expires
	HitRadius float64 // collision radius while in flight
}

var WeaponData = map[WeaponType]WeaponStats{
	WeaponKinetic: {
		Name:      "kinetic",
		Speed:     0.9,
		Threshold: 100,
		Power:     40,
		Damage:    12,
		MaxRange:  2600,
		HitRadius: 40,
	},
	WeaponPhaser: {
		Name:      "phaser",
		Speed:     1.6,
		Threshold: 450,
		Power:     250,
		Damage:    45,
		MaxRange:  MaxPhaserRange,
		HitRadius: 55,
	},
	WeaponTorpedo: {
		Name:      "torpedo",
		Speed:     0.55,
		Threshold: 900,
		Power:     600,
		Damage:    80,
		MaxRange:  2000,
		HitRadius: 70,
	},
}

func (w WeaponType) String() string {
	if stats, ok := WeaponData[w]; ok {
		return stats.Name
	}
	return "unknown"
}

// PhaserBeamDamage returns the damage of a single beam that connected at the
// given range. Falloff is linear: full damage point blank, nothing at
// MaxPhaserRange.
func PhaserBeamDamage(dist float64) float64 {
	return WeaponData[WeaponPhaser].Damage * (1 - dist/MaxPhaserRange)
}

// Hit is one resolved strike against a raider, attached by the combat layer
// and consumed by the defense stage within the same tick. Kinetic and
// torpedo strikes carry their damage directly; a phaser strike carries the
// connect range of every beam in the volley.
type Hit struct {
	Weapon WeaponType
	Damage float64
	Beams  []float64
}

// Total returns the shield damage the hit inflicts.
func (h Hit) Total() float64 {
	if h.Weapon != WeaponPhaser {
		return h.Damage
	}
	total := 0.0
	for _, beam := range h.Beams {
		total += PhaserBeamDamage(beam)
	}
	return total
}
