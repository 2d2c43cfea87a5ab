package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display    DisplayConfig               `json:"display"`
	Physics    PhysicsSettings             `json:"physics"`
	Powerups   PowerupConfig               `json:"powerups"`
	Scoring    ScoringConfig               `json:"scoring"`
	Difficulty map[string]DifficultyConfig `json:"difficulty"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// PhysicsSettings values are per frame
type PhysicsSettings struct {
	Gravity      float64 `json:"gravity"`
	MaxFallSpeed float64 `json:"maxFallSpeed"`
	Friction     float64 `json:"friction"`
	StompBounce  float64 `json:"stompBounce"`
}

type PowerupConfig struct {
	Duration        int     `json:"duration"` // frames
	SpeedMultiplier float64 `json:"speedMultiplier"`
	JumpMultiplier  float64 `json:"jumpMultiplier"`
}

type ScoringConfig struct {
	Coin  int `json:"coin"`
	Flag  int `json:"flag"`
	Stomp int `json:"stomp"`
}

// DifficultyConfig holds the absolute stats applied on level load
type DifficultyConfig struct {
	Lives      int     `json:"lives"`
	Speed      float64 `json:"speed"`
	JumpPower  float64 `json:"jumpPower"`
	EnemySpeed float64 `json:"enemySpeed"` // multiplier on walker speed
}

// DefaultPhysicsConfig returns the built-in tuning
func DefaultPhysicsConfig() *PhysicsConfig {
	return &PhysicsConfig{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 448,
			Scale:        1,
			Framerate:    60,
		},
		Physics: PhysicsSettings{
			Gravity:      0.5,
			MaxFallSpeed: 15,
			Friction:     0.8,
			StompBounce:  -8,
		},
		Powerups: PowerupConfig{
			Duration:        600,
			SpeedMultiplier: 1.5,
			JumpMultiplier:  1.3,
		},
		Scoring: ScoringConfig{
			Coin:  100,
			Flag:  1000,
			Stomp: 200,
		},
		Difficulty: map[string]DifficultyConfig{
			"easy":   {Lives: 5, Speed: 5, JumpPower: 16, EnemySpeed: 0.7},
			"normal": {Lives: 3, Speed: 5, JumpPower: 15, EnemySpeed: 1.0},
			"hard":   {Lives: 2, Speed: 4.5, JumpPower: 14, EnemySpeed: 1.3},
		},
	}
}

// DifficultyFor returns the settings for a difficulty, falling back to normal
func (c *PhysicsConfig) DifficultyFor(name string) DifficultyConfig {
	if d, ok := c.Difficulty[name]; ok {
		return d
	}
	if d, ok := c.Difficulty["normal"]; ok {
		return d
	}
	return DefaultPhysicsConfig().Difficulty["normal"]
}
