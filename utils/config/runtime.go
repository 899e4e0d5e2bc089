package config

// RuntimeConfig 运行时配置
// 功能：存储仿真运行时的配置信息
type RuntimeConfig struct {
	All Config       // 全部配置
	I   Intersection // 路口参数
	C   Control      // 运行控制配置
}

// NewRuntimeConfig 根据配置初始化运行时配置
// 功能：创建运行时配置对象，补全运行控制中缺省的数值
// 参数：config-原始配置对象
// 返回：初始化的运行时配置指针
// 说明：episode数量、心跳间隔、固定配时绿灯步数与策略名缺省时取默认值，路口参数原样保留；
// max_pressure_green不补全，0表示不限制最大绿灯。Load以Default()为底解析，因此未写该字段时为30，
// 而代码中直接构造的Control若不设置该字段则为0（不限制）
func NewRuntimeConfig(config Config) *RuntimeConfig {
	def := Default()
	if config.Control.Episodes <= 0 {
		config.Control.Episodes = def.Control.Episodes
	}
	if config.Control.HeartbeatInterval <= 0 {
		config.Control.HeartbeatInterval = def.Control.HeartbeatInterval
	}
	if config.Control.FixedGreenTicks <= 0 {
		config.Control.FixedGreenTicks = def.Control.FixedGreenTicks
	}
	if config.Control.Policy == "" {
		config.Control.Policy = def.Control.Policy
	}

	rc := &RuntimeConfig{}
	rc.All = config
	rc.I = config.Intersection
	rc.C = config.Control
	return rc
}
