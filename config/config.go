package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/meghashyamc/debugview/geometry"
	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	setDefaults(viperConfig)
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 1200)
	v.SetDefault("window.height", 800)
	v.SetDefault("window.title", "DebugView")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.capacity", 200)
	v.SetDefault("data.dir", ".")
	v.SetDefault("data.scenefilename", "scene.yaml")
	v.SetDefault("scene.line_start.x", 500.0)
	v.SetDefault("scene.line_start.y", 500.0)
	v.SetDefault("scene.line_end.x", 900.0)
	v.SetDefault("scene.line_end.y", 500.0)
	v.SetDefault("scene.point.x", 800.0)
	v.SetDefault("scene.point.y", 600.0)
	v.SetDefault("scene.drag_step", 0.5)
	v.SetDefault("scene.handle_radius", 10.0)
}

func (c *Config) GetWindowWidth() int {
	windowWidth := c.config.GetInt("WINDOW_WIDTH")
	if windowWidth == 0 {
		windowWidth = c.config.GetInt("window.width")
	}

	return windowWidth
}

func (c *Config) GetWindowHeight() int {
	windowHeight := c.config.GetInt("WINDOW_HEIGHT")
	if windowHeight == 0 {
		windowHeight = c.config.GetInt("window.height")
	}

	return windowHeight
}

func (c *Config) GetWindowTitle() string {
	windowTitle := c.config.GetString("WINDOW_TITLE")
	if len(windowTitle) == 0 {
		windowTitle = c.config.GetString("window.title")
	}

	return windowTitle
}

func (c *Config) GetLogLevel() string {
	logLevel := c.config.GetString("LOG_LEVEL")
	if len(logLevel) == 0 {
		logLevel = c.config.GetString("log.level")
	}

	return logLevel
}

func (c *Config) GetLogCapacity() int {
	logCapacity := c.config.GetInt("LOG_CAPACITY")
	if logCapacity == 0 {
		logCapacity = c.config.GetInt("log.capacity")
	}

	return logCapacity
}

func (c *Config) GetDataDir() string {
	dataDir := c.config.GetString("DATA_DIR")
	if len(dataDir) == 0 {
		dataDir = c.config.GetString("data.dir")
	}

	return dataDir
}

func (c *Config) GetSceneFilename() string {
	sceneFilename := c.config.GetString("SCENE_FILENAME")
	if len(sceneFilename) == 0 {
		sceneFilename = c.config.GetString("data.scenefilename")
	}

	return sceneFilename
}

func (c *Config) GetLineStart() geometry.Vector {
	return c.getVector("LINE_START", "scene.line_start")
}

func (c *Config) GetLineEnd() geometry.Vector {
	return c.getVector("LINE_END", "scene.line_end")
}

func (c *Config) GetQueryPoint() geometry.Vector {
	return c.getVector("POINT", "scene.point")
}

func (c *Config) GetDragStep() float64 {
	dragStep := c.config.GetFloat64("DRAG_STEP")
	if dragStep == 0 {
		dragStep = c.config.GetFloat64("scene.drag_step")
	}

	return dragStep
}

func (c *Config) GetHandleRadius() float64 {
	handleRadius := c.config.GetFloat64("HANDLE_RADIUS")
	if handleRadius == 0 {
		handleRadius = c.config.GetFloat64("scene.handle_radius")
	}

	return handleRadius
}

// getVector reads <envPrefix>_X/_Y, falling back to <fileKey>.x/.y.
// Zero is a valid coordinate, so presence is checked instead of the value.
func (c *Config) getVector(envPrefix, fileKey string) geometry.Vector {
	return geometry.Vector{
		X: c.getCoordinate(envPrefix+"_X", fileKey+".x"),
		Y: c.getCoordinate(envPrefix+"_Y", fileKey+".y"),
	}
}

func (c *Config) getCoordinate(envKey, fileKey string) float64 {
	if _, ok := os.LookupEnv(envKey); ok {
		return c.config.GetFloat64(envKey)
	}

	return c.config.GetFloat64(fileKey)
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
