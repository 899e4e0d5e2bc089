package config

// Intersection 单路口两相位仿真参数
// 功能：定义到达率、放行率与相位时长约束
// 说明：YellowDuration仅为接口保留字段，不参与相位切换逻辑
type Intersection struct {
	ArrivalRateNS    float64 `yaml:"arrival_rate_ns"`    // 南北向每步到达概率
	ArrivalRateEW    float64 `yaml:"arrival_rate_ew"`    // 东西向每步到达概率
	ServiceRate      float64 `yaml:"service_rate"`       // 绿灯方向每辆排队车辆的放行概率
	MinPhaseDuration int32   `yaml:"min_phase_duration"` // 最短绿灯保持步数
	MaxPhaseDuration int32   `yaml:"max_phase_duration"` // 相位保持达到该步数时强制结束episode
	YellowDuration   int32   `yaml:"yellow_duration"`    // 黄灯时长（未使用）
	MaxSteps         int32   `yaml:"max_steps"`          // episode最大步数
}

// Control 仿真运行控制配置
// 功能：定义episode数量、随机种子、信控策略等运行参数
type Control struct {
	Episodes          int    `yaml:"episodes"`                     // episode数量
	Seed              uint64 `yaml:"seed"`                         // 基础随机种子，第i个episode使用Seed+i
	Policy            string `yaml:"policy"`                       // 信控策略（fixed|max_pressure|random）
	FixedGreenTicks   int32  `yaml:"fixed_green_ticks,omitempty"`  // 固定配时策略的绿灯步数
	MaxPressureGreen  int32  `yaml:"max_pressure_green,omitempty"` // 最大压力策略单相位最长保持步数（0表示不限制）
	HeartbeatInterval int32  `yaml:"heartbeat_interval,omitempty"` // 心跳日志间隔步数
}

// Config YAML配置文件的根结构
type Config struct {
	Intersection Intersection `yaml:"intersection"` // 路口参数
	Control      Control      `yaml:"control"`      // 运行控制
}
