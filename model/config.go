package model

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 参数不合法，在开始迭代之前返回
var ErrInvalidConfig = errors.New("invalid configuration")

func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			N:     DefaultN,
			L:     DefaultL,
			DZ:    DefaultDZ,
			Sigma: DefaultSigma,
			CFL:   DefaultCFL,
		},
		Output: OutputConfig{
			Dir:      DefaultDir,
			Throttle: DefaultThrottle,
		},
		Server: ServerConfig{
			History: DefaultHistory,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// LoadConfig 读取配置文件，.yaml/.yml 使用 yaml，其余按 ini 解析。
// 文件中未出现的键保留默认值。
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		file, err := ini.Load(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		loadCfg(file, &cfg)
	}
	return cfg, nil
}

func loadCfg(file *ini.File, cfg *Config) {
	grid := file.Section("grid")
	cfg.Grid = GridConfig{
		N:     grid.Key("N").MustInt(cfg.Grid.N),
		L:     grid.Key("L").MustFloat64(cfg.Grid.L),
		DZ:    grid.Key("DZ").MustFloat64(cfg.Grid.DZ),
		Sigma: grid.Key("SIGMA").MustFloat64(cfg.Grid.Sigma),
		CFL:   grid.Key("CFL").MustFloat64(cfg.Grid.CFL),
	}
	output := file.Section("output")
	cfg.Output = OutputConfig{
		Dir:      output.Key("Dir").MustString(cfg.Output.Dir),
		Throttle: output.Key("Throttle").MustInt(cfg.Output.Throttle),
	}
	server := file.Section("server")
	cfg.Server = ServerConfig{
		Addr:    server.Key("Addr").MustString(cfg.Server.Addr),
		History: server.Key("History").MustInt(cfg.Server.History),
	}
	cfg.Log.Level = file.Section("log").Key("Level").MustString(cfg.Log.Level)
}

// Validate 检查网格参数，CFL 必须在 (0, 1) 内，否则显式格式会发散。
// 条件都写成正向判断，NaN 不满足任何一个
func (g GridConfig) Validate() error {
	switch {
	case g.N < 2:
		return fmt.Errorf("%w: N must be >= 2, got %d", ErrInvalidConfig, g.N)
	case !(g.Sigma > 0) || math.IsInf(g.Sigma, 0):
		return fmt.Errorf("%w: SIGMA must be finite and > 0, got %g", ErrInvalidConfig, g.Sigma)
	case !(g.CFL > 0 && g.CFL < 1):
		return fmt.Errorf("%w: CFL must satisfy 0 < CFL < 1, got %g", ErrInvalidConfig, g.CFL)
	case !(g.DZ > 0) || math.IsInf(g.DZ, 0):
		return fmt.Errorf("%w: DZ must be finite and > 0, got %g", ErrInvalidConfig, g.DZ)
	case !(g.L >= 0) || math.IsInf(g.L, 0):
		return fmt.Errorf("%w: L must be finite and >= 0, got %g", ErrInvalidConfig, g.L)
	case !(float64(g.N)*g.L < float64(math.MaxInt)):
		return fmt.Errorf("%w: N*L overflows the step count, got %d*%g", ErrInvalidConfig, g.N, g.L)
	}
	return nil
}

func (c Config) Validate() error {
	if err := c.Grid.Validate(); err != nil {
		return err
	}
	if c.Output.Throttle < 1 {
		return fmt.Errorf("%w: THROTTLE must be >= 1, got %d", ErrInvalidConfig, c.Output.Throttle)
	}
	if c.Server.Addr != "" && c.Server.History < 0 {
		return fmt.Errorf("%w: History must be >= 0, got %d", ErrInvalidConfig, c.Server.History)
	}
	return nil
}
