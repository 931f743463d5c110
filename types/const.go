package types

// 默认参数常量定义（长度单位 m，应力单位 MPa）
const (
	DefaultA       = 0.02     // 包含物椭圆半轴
	DefaultB       = 0.015    // 板椭圆半轴
	DefaultP1      = 150.0    // x 向外载荷
	DefaultP2      = 150.0    // y 向外载荷
	DefaultP0      = 50.0     // 包含物内压
	DefaultG       = 810.0    // 板剪切模量
	DefaultG1      = 1216.0   // 包含物剪切模量
	DefaultE       = 200000.0 // 板杨氏模量
	DefaultNu      = 0.3      // 板泊松比
	DefaultYield   = 250.0    // 屈服应力
	DefaultSamples = 400      // 径向与角向采样数
)

// 参数上限
const (
	MaxSamples = 2000 // 每个方向的最大采样数
	MaxLoad    = 1e12 // 载荷幅值上限 (MPa)
)

// 环境变量（dotenv 文件）键名
const (
	EnvA             = "INCLUSION_A"
	EnvB             = "INCLUSION_B"
	EnvP1            = "INCLUSION_P1"
	EnvP2            = "INCLUSION_P2"
	EnvP0            = "INCLUSION_P0"
	EnvG             = "INCLUSION_G"
	EnvG1            = "INCLUSION_G1"
	EnvE             = "INCLUSION_E"
	EnvNu            = "INCLUSION_NU"
	EnvYield         = "INCLUSION_YIELD"
	EnvNR            = "INCLUSION_NR"
	EnvNTheta        = "INCLUSION_NTHETA"
	EnvAllowInverted = "INCLUSION_ALLOW_INVERTED"
)
