package engine

import (
	"fmt"
	"os"
	"time"

	"corsair-server/pkg/utils"

	"github.com/BurntSushi/toml"
)

// Config хранит параметры запуска движка. Загружается из TOML-файла,
// недостающие поля добираются из дефолтов.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	World   WorldConfig   `toml:"world"`
	Vision  VisionConfig  `toml:"vision"`
	Weather WeatherConfig `toml:"weather"`
}

type ServerConfig struct {
	Port string `toml:"port"`
}

type WorldConfig struct {
	// Seed - мастер-зерно. От него зависят погода и поведение NPC.
	// 0 означает "вывести из имени мира, иначе случайное при запуске".
	Seed int64 `toml:"seed"`

	// Name - имя мира. При нулевом сиде зерно детерминированно
	// выводится из имени: одноименные миры повторяются.
	Name string `toml:"name"`
}

type VisionConfig struct {
	// Размер окна видимости (нечетные, наблюдатель в центре)
	FOVHeight int `toml:"fov_height"`
	FOVWidth  int `toml:"fov_width"`
}

type WeatherConfig struct {
	// Systems - сколько погодных систем дрейфует над картой
	Systems   int     `toml:"systems"`
	MaxRadius int     `toml:"max_radius"`
	Intensity float64 `toml:"intensity"`
}

// NewConfig создает конфиг по умолчанию. Нулевой сид разрешается
// в Load: из имени мира или случайно.
func NewConfig() Config {
	return Config{
		Server: ServerConfig{Port: "8080"},
		World:  WorldConfig{},
		Vision: VisionConfig{FOVHeight: 21, FOVWidth: 41},
		Weather: WeatherConfig{
			Systems:   3,
			MaxRadius: 7,
			Intensity: 0.6,
		},
	}
}

// Load читает TOML-файл поверх дефолтов. Пустой путь - просто дефолты.
func Load(path string) (Config, error) {
	cfg := NewConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
		if err := cfg.validate(); err != nil {
			return cfg, err
		}
	}

	// Явный сид всегда главнее; нулевой выводится из имени мира,
	// безымянный мир получает случайный
	if cfg.World.Seed == 0 {
		if cfg.World.Name != "" {
			cfg.World.Seed = utils.StringToSeed(cfg.World.Name)
		} else {
			cfg.World.Seed = time.Now().UnixNano()
		}
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Vision.FOVHeight < 1 || c.Vision.FOVWidth < 1 {
		return fmt.Errorf("vision window must be positive, got %dx%d", c.Vision.FOVHeight, c.Vision.FOVWidth)
	}
	// Окно центрируется на наблюдателе, поэтому стороны нечетные
	if c.Vision.FOVHeight%2 == 0 || c.Vision.FOVWidth%2 == 0 {
		return fmt.Errorf("vision window sides must be odd, got %dx%d", c.Vision.FOVHeight, c.Vision.FOVWidth)
	}
	if c.Weather.Intensity < 0 || c.Weather.Intensity > 1 {
		return fmt.Errorf("weather intensity must be within [0, 1], got %f", c.Weather.Intensity)
	}
	return nil
}
