package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// TileType is the code stored in a tile grid cell
type TileType int

const (
	TileAir TileType = iota
	TileGround
	TileBrick
	TileCoin
	TileFlag
	TileSpike
	TilePowerupSpeed
	TilePowerupJump
	TilePowerupInvincible
	TileQuicksand
	TileCactus
	TileWater
	TileIce
	TileLava
	TileBreakable
	TileCheckpoint
)

// TileCategory groups tile types by how entities interact with them
type TileCategory int

const (
	CategoryNone TileCategory = iota
	CategorySolid
	CategoryCoin
	CategoryPowerup
	CategoryHazard
	CategoryGoal
	CategoryMarker
)

// PowerupType identifies a powerup effect
type PowerupType int

const (
	PowerupNone PowerupType = iota
	PowerupSpeed
	PowerupJump
	PowerupInvincible
)

// String returns the string representation of the powerup type
func (p PowerupType) String() string {
	switch p {
	case PowerupSpeed:
		return "speed"
	case PowerupJump:
		return "jump"
	case PowerupInvincible:
		return "invincible"
	default:
		return "none"
	}
}

// TileTraits describes the behavior attached to a tile type
type TileTraits struct {
	Name       string
	Solid      bool
	Category   TileCategory
	Consumable bool        // cleared to air on first interaction
	Powerup    PowerupType // set for powerup tiles
}

// tileTraits is indexed by TileType. New tile kinds are added here.
var tileTraits = [...]TileTraits{
	TileAir:               {Name: "air"},
	TileGround:            {Name: "ground", Solid: true, Category: CategorySolid},
	TileBrick:             {Name: "brick", Solid: true, Category: CategorySolid},
	TileCoin:              {Name: "coin", Category: CategoryCoin, Consumable: true},
	TileFlag:              {Name: "flag", Category: CategoryGoal},
	TileSpike:             {Name: "spike", Category: CategoryHazard},
	TilePowerupSpeed:      {Name: "powerup_speed", Category: CategoryPowerup, Consumable: true, Powerup: PowerupSpeed},
	TilePowerupJump:       {Name: "powerup_jump", Category: CategoryPowerup, Consumable: true, Powerup: PowerupJump},
	TilePowerupInvincible: {Name: "powerup_invincible", Category: CategoryPowerup, Consumable: true, Powerup: PowerupInvincible},
	TileQuicksand:         {Name: "quicksand"},
	TileCactus:            {Name: "cactus", Category: CategoryHazard},
	TileWater:             {Name: "water"},
	TileIce:               {Name: "ice"},
	TileLava:              {Name: "lava", Category: CategoryHazard},
	TileBreakable:         {Name: "breakable"},
	TileCheckpoint:        {Name: "checkpoint", Category: CategoryMarker},
}

// Traits returns the traits for the tile type. Unknown codes behave as air.
func (t TileType) Traits() TileTraits {
	if t < 0 || int(t) >= len(tileTraits) {
		return tileTraits[TileAir]
	}
	return tileTraits[t]
}

// IsSolid reports whether the tile blocks motion
func (t TileType) IsSolid() bool { return t.Traits().Solid }

// Category returns the interaction category of the tile
func (t TileType) Category() TileCategory { return t.Traits().Category }

// String returns the tile name
func (t TileType) String() string {
	if t < 0 || int(t) >= len(tileTraits) {
		return "unknown"
	}
	return tileTraits[t].Name
}

// ParseTileType returns the tile type with the given name
func ParseTileType(name string) (TileType, bool) {
	for i, tr := range tileTraits {
		if tr.Name == name {
			return TileType(i), true
		}
	}
	return TileAir, false
}
