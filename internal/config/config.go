package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Map generator styles.
const (
	StyleRooms = "rooms"
	StyleBSP   = "bsp"
)

// Game holds everything needed to build and run one world.
type Game struct {
	// Seed for the world's random provider. Zero picks one from the clock.
	Seed int64 `yaml:"seed"`

	Map      MapConfig    `yaml:"map"`
	Player   ActorStats   `yaml:"player"`
	Monsters MonsterStats `yaml:"monsters"`
	Items    ItemStats    `yaml:"items"`

	// Time-score costs charged per action.
	MoveCost  uint32 `yaml:"move_cost"`
	MeleeCost uint32 `yaml:"melee_cost"`

	SavePath string `yaml:"save_path"`
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

// MapConfig controls map generation.
type MapConfig struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Style       string `yaml:"style"` // rooms or bsp
	MaxRooms    int    `yaml:"max_rooms"`
	RoomMinSize int    `yaml:"room_min_size"`
	RoomMaxSize int    `yaml:"room_max_size"`
}

// ActorStats are the starting combat stats and sight range of an actor.
type ActorStats struct {
	HP      int `yaml:"hp"`
	Defense int `yaml:"defense"`
	Power   int `yaml:"power"`
	Sight   int `yaml:"sight"`
}

// MonsterStats configures the monsters placed in each room.
type MonsterStats struct {
	ActorStats `yaml:",inline"`
	MaxPerRoom int `yaml:"max_per_room"`
}

// ItemStats configures the items placed in each room.
type ItemStats struct {
	MaxPerRoom     int `yaml:"max_per_room"`
	PotionHeal     int `yaml:"potion_heal"`
	MissileDamage  int `yaml:"missile_damage"`
	MissileRange   int `yaml:"missile_range"`
	FireballDamage int `yaml:"fireball_damage"`
	FireballRange  int `yaml:"fireball_range"`
	FireballRadius int `yaml:"fireball_radius"`
	ConfusionTurns int `yaml:"confusion_turns"`
	ConfusionRange int `yaml:"confusion_range"`
}

// Server holds the SSH front end settings.
type Server struct {
	BindAddress string `yaml:"bind_address"`
	Port        int    `yaml:"port"`
	HostKeyPath string `yaml:"host_key_path"`
	MaxSessions int    `yaml:"max_sessions"`
	Game        Game   `yaml:"game"`
}

// Default returns the stock game configuration.
func Default() Game {
	return Game{
		Map: MapConfig{
			Width:       80,
			Height:      43,
			Style:       StyleRooms,
			MaxRooms:    30,
			RoomMinSize: 6,
			RoomMaxSize: 10,
		},
		Player: ActorStats{HP: 30, Defense: 2, Power: 5, Sight: 8},
		Monsters: MonsterStats{
			ActorStats: ActorStats{HP: 16, Defense: 1, Power: 4, Sight: 8},
			MaxPerRoom: 4,
		},
		Items: ItemStats{
			MaxPerRoom:     2,
			PotionHeal:     8,
			MissileDamage:  8,
			MissileRange:   6,
			FireballDamage: 20,
			FireballRange:  6,
			FireballRadius: 3,
			ConfusionTurns: 4,
			ConfusionRange: 6,
		},
		MoveCost:  100,
		MeleeCost: 100,
		SavePath:  "savegame.yaml",
		LogLevel:  "info",
	}
}

// DefaultServer returns the stock SSH server configuration.
func DefaultServer() Server {
	return Server{
		BindAddress: "0.0.0.0",
		Port:        2222,
		HostKeyPath: ".ssh/host_ed25519",
		MaxSessions: 32,
		Game:        Default(),
	}
}

// Load reads a game config from a YAML file over the defaults.
// If the file doesn't exist, returns defaults.
func Load(path string) (Game, error) {
	cfg := Default()
	if err := load(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadServer reads a server config from a YAML file over the defaults.
// If the file doesn't exist, returns defaults.
func LoadServer(path string) (Server, error) {
	cfg := DefaultServer()
	if err := load(path, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return cfg, fmt.Errorf("%w: port %d", ErrInvalidConfig, cfg.Port)
	}
	return cfg, cfg.Game.Validate()
}

func load(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// Validate rejects configurations the generator or spawner cannot honour.
func (g Game) Validate() error {
	switch {
	case g.Map.Width < 20 || g.Map.Height < 20:
		return fmt.Errorf("%w: map %dx%d is smaller than 20x20", ErrInvalidConfig, g.Map.Width, g.Map.Height)
	case g.Map.Style != StyleRooms && g.Map.Style != StyleBSP:
		return fmt.Errorf("%w: unknown map style %q", ErrInvalidConfig, g.Map.Style)
	case g.Map.MaxRooms < 1:
		return fmt.Errorf("%w: max_rooms must be positive", ErrInvalidConfig)
	case g.Map.RoomMinSize < 4 || g.Map.RoomMaxSize <= g.Map.RoomMinSize:
		return fmt.Errorf("%w: room sizes %d..%d", ErrInvalidConfig, g.Map.RoomMinSize, g.Map.RoomMaxSize)
	case g.Map.RoomMaxSize+6 > min(g.Map.Width, g.Map.Height):
		return fmt.Errorf("%w: rooms of %d do not fit a %dx%d map", ErrInvalidConfig, g.Map.RoomMaxSize, g.Map.Width, g.Map.Height)
	case g.Player.HP <= 0 || g.Monsters.HP <= 0:
		return fmt.Errorf("%w: hit points must be positive", ErrInvalidConfig)
	case g.MoveCost == 0 || g.MeleeCost == 0:
		return fmt.Errorf("%w: action costs must be positive", ErrInvalidConfig)
	case g.Monsters.MaxPerRoom < 0 || g.Items.MaxPerRoom < 0:
		return fmt.Errorf("%w: per-room counts must not be negative", ErrInvalidConfig)
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(g.LogLevel)); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, g.LogLevel)
	}
	return nil
}

// Level is the configured log level. Unknown names fall back to info.
func (g Game) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(g.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
