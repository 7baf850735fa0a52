package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golangdaddy/roadrush/pkg/models"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalidLevel is returned when the starting level is outside 1..10
var ErrInvalidLevel = models.ErrInvalidLevel

// ErrInvalidSetting is returned for out of range numeric settings
var ErrInvalidSetting = errors.New("invalid setting")

const envPrefix = "ROADRUSH"

// CanvasConfig is the logical play field size in pixels
type CanvasConfig struct {
	Width  int `json:"width" mapstructure:"width"`
	Height int `json:"height" mapstructure:"height"`
}

// AudioConfig holds synthesis settings
type AudioConfig struct {
	SampleRate int     `json:"sampleRate" mapstructure:"sampleRate"`
	Volume     float64 `json:"volume" mapstructure:"volume"`
}

// Settings is the resolved game configuration
type Settings struct {
	LogLevel      string       `json:"logLevel" mapstructure:"logLevel"`
	StartingLevel int          `json:"startingLevel" mapstructure:"startingLevel"`
	Muted         bool         `json:"muted" mapstructure:"muted"`
	Canvas        CanvasConfig `json:"canvas" mapstructure:"canvas"`
	Audio         AudioConfig  `json:"audio" mapstructure:"audio"`
	LevelsFile    string       `json:"levelsFile" mapstructure:"levelsFile"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"level":     "startingLevel",
	"muted":     "muted",
	"log-level": "logLevel",
	"levels":    "levelsFile",
}

// RegisterFlags adds the command line flags that Load understands
func RegisterFlags(fs *pflag.FlagSet) {
	fs.IntP("level", "l", 1, "starting level (1-10)")
	fs.Bool("muted", false, "start with sound muted")
	fs.String("log-level", "info", "log level: trace, debug, info, warn, error")
	fs.StringP("config", "c", "", "path to a roadrush.yaml config file")
	fs.String("levels", "", "path to a levels/obstacles YAML file")
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("startingLevel", 1)
	viper.SetDefault("muted", false)

	viper.SetDefault("canvas.width", 480)
	viper.SetDefault("canvas.height", 720)

	viper.SetDefault("audio.sampleRate", 44100)
	viper.SetDefault("audio.volume", 0.8)

	viper.SetDefault("levelsFile", "")
}

// Load resolves settings from defaults, an optional config file, ROADRUSH_* environment
// variables and flags, in increasing order of precedence. fs may be nil.
func Load(fs *pflag.FlagSet) (Settings, error) {
	setDefaults()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	configFile := ""
	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := viper.BindPFlag(key, f); err != nil {
				return Settings{}, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
		if f := fs.Lookup("config"); f != nil {
			configFile = f.Value.String()
		}
	}

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("roadrush")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks ranges of the numeric settings
func (s Settings) Validate() error {
	if err := models.ValidateLevel(s.StartingLevel); err != nil {
		return err
	}
	if s.Canvas.Width <= 0 || s.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidSetting, s.Canvas.Width, s.Canvas.Height)
	}
	if s.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: audio.sampleRate %d", ErrInvalidSetting, s.Audio.SampleRate)
	}
	if s.Audio.Volume < 0 || s.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume %.2f", ErrInvalidSetting, s.Audio.Volume)
	}
	return nil
}

// ConfigFile returns the file the settings were read from, if any
func ConfigFile() string {
	return viper.ConfigFileUsed()
}
