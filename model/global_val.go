package model

// 物理常数，单位均为国际单位制
// 满足 C = 1 / sqrt(Epsilon0 * Mu0)

const (
	Mu0      = 1.2566370614359173e-6 // 真空磁导率
	C        = 299.792458e6          // 光速
	Epsilon0 = 8.854187817620389e-12 // 真空介电常数
)

// 默认网格参数
const (
	DefaultN        = 10000 // 电场采样点数
	DefaultL        = 1.0   // 模拟时长倍数，steps = N * L
	DefaultDZ       = 0.5   // 空间步长
	DefaultSigma    = 100.0 // 高斯脉冲宽度，单位为网格
	DefaultCFL      = 0.99  // 必须 < 1
	DefaultThrottle = 50    // 每隔多少步写一次快照

	DefaultDir      = "data"
	DefaultHistory  = 20
	DefaultLogLevel = "info"
)
