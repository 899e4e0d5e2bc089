package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v2"
)

var (
	ErrInvalidConfig = errors.New("config: invalid value")
)

// DefaultIntersection 默认路口参数
func DefaultIntersection() Intersection {
	return Intersection{
		ArrivalRateNS:    0.3,
		ArrivalRateEW:    0.2,
		ServiceRate:      0.5,
		MinPhaseDuration: 10,
		MaxPhaseDuration: 60,
		YellowDuration:   3,
		MaxSteps:         100,
	}
}

// Default 默认配置
// 功能：返回所有字段均为默认值的配置对象
func Default() Config {
	return Config{
		Intersection: DefaultIntersection(),
		Control: Control{
			Episodes:          1,
			Seed:              0,
			Policy:            "max_pressure",
			FixedGreenTicks:   20,
			MaxPressureGreen:  30,
			HeartbeatInterval: 100,
		},
	}
}

// Load 解析YAML配置
// 功能：以默认配置为底严格解析YAML数据（不允许未知字段），未出现的字段保持默认值
// 参数：data-YAML数据
// 返回：运行时配置，解析或校验失败时返回错误
func Load(data []byte) (*RuntimeConfig, error) {
	c := Default()
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	rc := NewRuntimeConfig(c)
	if err := rc.All.Intersection.Validate(); err != nil {
		return nil, err
	}
	return rc, nil
}

// Validate 检查路口参数的取值范围
// 功能：概率必须位于[0,1]，时长不能为负，最大步数必须为正
func (c Intersection) Validate() error {
	rates := map[string]float64{
		"arrival_rate_ns": c.ArrivalRateNS,
		"arrival_rate_ew": c.ArrivalRateEW,
		"service_rate":    c.ServiceRate,
	}
	for name, r := range rates {
		if r < 0 || r > 1 {
			return fmt.Errorf("%w: %s=%v not in [0,1]", ErrInvalidConfig, name, r)
		}
	}
	if c.MinPhaseDuration < 0 {
		return fmt.Errorf("%w: min_phase_duration=%d < 0", ErrInvalidConfig, c.MinPhaseDuration)
	}
	if c.MaxPhaseDuration < 0 {
		return fmt.Errorf("%w: max_phase_duration=%d < 0", ErrInvalidConfig, c.MaxPhaseDuration)
	}
	if c.YellowDuration < 0 {
		return fmt.Errorf("%w: yellow_duration=%d < 0", ErrInvalidConfig, c.YellowDuration)
	}
	if c.MaxSteps <= 0 {
		return fmt.Errorf("%w: max_steps=%d <= 0", ErrInvalidConfig, c.MaxSteps)
	}
	return nil
}
