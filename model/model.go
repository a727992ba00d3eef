package model

// 网格配置，启动时构建一次，之后只读
type GridConfig struct {
	N     int     `yaml:"n" json:"n"`
	L     float64 `yaml:"l" json:"l"`
	DZ    float64 `yaml:"dz" json:"dz"`
	Sigma float64 `yaml:"sigma" json:"sigma"`
	CFL   float64 `yaml:"cfl" json:"cfl"`
}

// 快照输出配置
type OutputConfig struct {
	Dir      string `yaml:"dir" json:"dir"`
	Throttle int    `yaml:"throttle" json:"throttle"`
}

// 实时推送配置，Addr 为空则不启动
type ServerConfig struct {
	Addr    string `yaml:"addr" json:"addr"`
	History int    `yaml:"history" json:"history"`
}

type LogConfig struct {
	Level string `yaml:"level" json:"level"`
}

type Config struct {
	Grid   GridConfig   `yaml:"grid" json:"grid"`
	Output OutputConfig `yaml:"output" json:"output"`
	Server ServerConfig `yaml:"server" json:"server"`
	Log    LogConfig    `yaml:"log" json:"log"`
}

// 某一步的场数据快照
type Frame struct {
	Step     int       `json:"step"`
	Electric []float64 `json:"electric"`
	Magnetic []float64 `json:"magnetic"`
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

const (
	MsgFrame   = "frame"
	MsgHistory = "history"
)
