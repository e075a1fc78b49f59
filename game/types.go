package game

// Tuning constants for the sector simulation
const (
	// Sector dimensions
	SectorWidth  = 8000.0
	SectorHeight = 6000.0

	// Distance thresholds
	TacticalRange         = 2500.0 // beyond this a raider stands down entirely
	EvasionLimit          = 1200.0 // between this and tactical range raiders close in
	KineticFiringDistance = 2000.0 // weapons charge only inside this engagement envelope
	TorpedoFiringDistance = 1800.0
	PhaserFiringDistance  = 900.0
	MaxPhaserRange        = 1000.0 // a phaser beam is spent at this range
	DockingDistance       = 120.0  // theft range against a base

	// Combatant pools
	MaxShields        = 200.0
	MaxAntimatter     = 10000.0
	RunawayAntimatter = 1000.0 // below this a raider inside tactical range breaks off

	// Battle state machine
	StateTransitionMs = 3000.0 // dwell time in a posture before a re-roll

	// Weapons economy
	WeaponChargeRate  = 0.25 // charge per ms at full shields
	FiringSuppression = 0.95 // chance per tick that all trigger pulls are held
	HeadingTolerance  = 0.05 // radians; the ship counts as mid-turn beyond this

	// Shields
	ShieldRechargeRate = 0.01 // shield points per ms
	ShieldRechargeCost = 4.0  // antimatter per shield point restored

	// Motion
	MaxThrust  = 0.0005 // acceleration in units per ms^2
	DragFactor = 0.998  // fraction of velocity retained per ms

	// Destruction
	DebrisYield = 60.0 // scales the random debris cloud magnitude

	// Roster
	KlingonCount    = 12
	DefaultKinetics = 40
	DefaultTorpedos = 8
	InitialDrift    = 0.05 // spawn velocity jitter, units per ms
)

// Klingon is one autonomous raider.
type Klingon struct {
	Pos        Vec2        `json:"pos"`
	Vel        Vec2        `json:"vel"`
	Thrust     Vec2        `json:"thrust"`
	Shields    float64     `json:"shields"`
	Antimatter float64     `json:"antimatter"`
	Kinetics   int         `json:"kinetics"`
	Torpedos   int         `json:"torpedos"`
	Charge     float64     `json:"charge"`
	State      BattleState `json:"state"`
	StateAge   float64     `json:"-"` // ms spent in the current battle state
	Hits       []Hit       `json:"-"` // pending strikes, resolved and cleared each tick
}

// ShieldFraction reports how much of the shield pool remains. Charging and
// thrust both scale with it, so a battered raider fights slower and weaker.
func (k Klingon) ShieldFraction() float64 {
	return k.Shields / MaxShields
}

// Ship is the player's vessel as the raiders see it: position, motion, and
// the helm setting it is turning toward. The raider core never writes it.
type Ship struct {
	Pos        Vec2    `json:"pos"`
	Vel        Vec2    `json:"vel"`
	Heading    float64 `json:"heading"`
	HeadingSet float64 `json:"headingSet"`
}

// Base is a stationary antimatter depot.
type Base struct {
	Pos        Vec2    `json:"pos"`
	Antimatter float64 `json:"antimatter"`
}

// Shot is a round at the instant of launch. The projectile layer takes
// ownership immediately; the raider core never looks at one again.
type Shot struct {
	Pos    Vec2       `json:"pos"`
	Dir    float64    `json:"dir"`
	Weapon WeaponType `json:"weapon"`
}

// Explosion marks a raider kill for the effects layer.
type Explosion struct {
	Pos Vec2    `json:"pos"`
	Age float64 `json:"age"` // ms since creation, advanced by the effects layer
}

// DebrisCloud is the wreckage a destroyed raider leaves behind.
type DebrisCloud struct {
	Pos       Vec2    `json:"pos"`
	Magnitude float64 `json:"magnitude"`
	Age       float64 `json:"age"`
}

// World is the aggregate simulation snapshot. Transforms take it by value
// and hand back a replacement; no entity is ever mutated in place.
type World struct {
	Klingons   []Klingon     `json:"klingons"`
	Ship       Ship          `json:"ship"`
	Bases      []Base        `json:"bases"`
	Shots      []Shot        `json:"shots"`
	Explosions []Explosion   `json:"explosions"`
	Clouds     []DebrisCloud `json:"clouds"`
	GameOver   bool          `json:"gameOver"`
}
