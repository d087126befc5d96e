package config

import (
	"fmt"
	"strings"
)

// Variant 玩法变体
type Variant int

const (
	// VariantClassic 经典模式：固定伤害 1，按关卡列表出怪
	VariantClassic Variant = iota
	// VariantArena 竞技场模式：武器伤害，按轮/阶段出怪，轮间进商店
	VariantArena
)

// String 返回变体名
func (v Variant) String() string {
	switch v {
	case VariantClassic:
		return "classic"
	case VariantArena:
		return "arena"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant 解析变体名（大小写不敏感）
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classic", "":
		return VariantClassic, nil
	case "arena":
		return VariantArena, nil
	}
	return VariantClassic, fmt.Errorf("unknown variant %q (want classic or arena)", s)
}

// 出场动画类型
const (
	SpawnAnimationNone = "none" // 直接出现，立即可交互
	SpawnAnimationSwim = "swim" // 从左侧游入屏幕中央，结束后才可交互
)

// 死亡动画类型
const (
	DefeatAnimationFade = "fade" // 淡出
	DefeatAnimationSpin = "spin" // 旋转 + 放大弹跳 + 淡出
)

// VariantRules 玩法规则
// 所有时长单位为秒
type VariantRules struct {
	BaseDamage      int     `yaml:"baseDamage"`      // 未选择武器时的单次伤害
	UseWeaponDamage bool    `yaml:"useWeaponDamage"` // 是否使用已选武器的伤害
	TapReward       int     `yaml:"tapReward"`       // 每次有效点击奖励的金币（经典模式的得分）
	KillReward      int     `yaml:"killReward"`      // 每次击杀奖励的金币
	SpawnAnimation  string  `yaml:"spawnAnimation"`  // none | swim
	SpawnDuration   float64 `yaml:"spawnDuration"`   // 出场动画时长
	DefeatAnimation string  `yaml:"defeatAnimation"` // fade | spin
	DefeatDuration  float64 `yaml:"defeatDuration"`  // 死亡动画时长
	RespawnDelay    float64 `yaml:"respawnDelay"`    // 击杀后到下一个敌人出现的延迟
	CompletionDelay float64 `yaml:"completionDelay"` // 最后一个敌人死亡后到完成处理的延迟
	ResetOnEnter    bool    `yaml:"resetOnEnter"`    // 进入游戏界面时是否重置进度
	UseShop         bool    `yaml:"useShop"`         // 轮与轮之间进入商店，且必须选择武器才能进入游戏
	FinishedText    string  `yaml:"finishedText"`    // 游戏结束时显示的文字
}

func (r VariantRules) validate() error {
	if r.BaseDamage <= 0 {
		return fmt.Errorf("baseDamage must be positive, got %d", r.BaseDamage)
	}
	if r.TapReward < 0 || r.KillReward < 0 {
		return fmt.Errorf("rewards cannot be negative (tap=%d, kill=%d)", r.TapReward, r.KillReward)
	}
	switch r.SpawnAnimation {
	case SpawnAnimationNone, SpawnAnimationSwim:
	default:
		return fmt.Errorf("unknown spawnAnimation %q", r.SpawnAnimation)
	}
	switch r.DefeatAnimation {
	case DefeatAnimationFade, DefeatAnimationSpin:
	default:
		return fmt.Errorf("unknown defeatAnimation %q", r.DefeatAnimation)
	}
	if r.SpawnDuration < 0 || r.DefeatDuration < 0 || r.RespawnDelay < 0 || r.CompletionDelay < 0 {
		return fmt.Errorf("durations and delays cannot be negative")
	}
	return nil
}
