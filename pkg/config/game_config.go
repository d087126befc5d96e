package config

import (
	"fmt"
	"os"

	"github.com/gonewx/fishtap/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultGameConfigPath 嵌入的默认配置路径
const DefaultGameConfigPath = "data/game.yaml"

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`  // 逻辑宽度（像素）
	Height int    `yaml:"height"` // 逻辑高度（像素）
	Title  string `yaml:"title"`  // 窗口标题
}

// AudioConfig 启动时的音频设置
type AudioConfig struct {
	MasterVolume float64 `yaml:"masterVolume"` // 主音量 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"` // 是否播放背景音乐
}

// SoundEntry 单个音效定义
type SoundEntry struct {
	Name string  `yaml:"name"`           // 音效名（如 "hit", "kill"）
	Path string  `yaml:"path"`           // 文件路径，支持 .mp3/.ogg/.wav
	Gain float64 `yaml:"gain,omitempty"` // 音量倍率，0 表示 1.0
}

// MusicEntry 背景音乐定义（循环播放）
type MusicEntry struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// SpriteEntry 精灵图定义
// 图片缺失时使用 Color 绘制占位鱼形
type SpriteEntry struct {
	Path   string  `yaml:"path"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"`
}

// EnemyTemplate 敌人模板，不可变
type EnemyTemplate struct {
	ID     string `yaml:"-"`      // 模板ID，加载时由 map 键填充
	Sprite string `yaml:"sprite"` // 精灵图ID（对应 sprites）
	HP     int    `yaml:"hp"`     // 生命值
}

// Weapon 武器，不可变
type Weapon struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Price  int    `yaml:"price"`
	Damage int    `yaml:"damage"`
}

// Level 经典模式的一关：按顺序出现的敌人列表
type Level struct {
	Enemies []string `yaml:"enemies"`
}

// ArenaRound 竞技场模式的一轮
// Stages 为阶段数（终止值为 Stages-1），第 i 阶段的敌人取 Pool[i % len(Pool)]
type ArenaRound struct {
	Stages int      `yaml:"stages"`
	Pool   []string `yaml:"pool"`
}

// ClassicConfig 经典模式配置
type ClassicConfig struct {
	Rules  VariantRules `yaml:"rules"`
	Levels []Level      `yaml:"levels"`
}

// ArenaConfig 竞技场模式配置
type ArenaConfig struct {
	Rules  VariantRules `yaml:"rules"`
	Rounds []ArenaRound `yaml:"rounds"`
}

// GameConfig 游戏主配置（data/game.yaml）
type GameConfig struct {
	Version string                   `yaml:"version"`
	Window  WindowConfig             `yaml:"window"`
	Audio   AudioConfig              `yaml:"audio"`
	Music   MusicEntry               `yaml:"music"`
	Sounds  []SoundEntry             `yaml:"sounds"`
	Sprites map[string]SpriteEntry   `yaml:"sprites"`
	Enemies map[string]EnemyTemplate `yaml:"enemies"`
	Weapons []Weapon                 `yaml:"weapons"`
	Classic ClassicConfig            `yaml:"classic"`
	Arena   ArenaConfig              `yaml:"arena"`
}

// LoadGameConfig 从嵌入资源加载配置
// 参数：
//
//	path - 嵌入路径（必须以 "data/" 开头）
//
// 返回：
//
//	*GameConfig - 解析并校验后的配置
//	error - 读取、解析或校验失败
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config %s: %w", path, err)
	}
	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadGameConfigFile 从磁盘加载配置（-config 参数）
func LoadGameConfigFile(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config %s: %w", path, err)
	}
	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameConfig 解析 YAML 并校验
func ParseGameConfig(data []byte) (*GameConfig, error) {
	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	for id, tpl := range cfg.Enemies {
		tpl.ID = id
		cfg.Enemies[id] = tpl
	}

	if err := validateGameConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return &cfg, nil
}

// validateGameConfig 校验配置的完整性和合法性
func validateGameConfig(cfg *GameConfig) error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Audio.MasterVolume < 0 || cfg.Audio.MasterVolume > 1 {
		return fmt.Errorf("audio.masterVolume must be within [0, 1], got %v", cfg.Audio.MasterVolume)
	}

	for i, s := range cfg.Sounds {
		if s.Name == "" {
			return fmt.Errorf("sounds[%d]: name is required", i)
		}
		if s.Gain < 0 {
			return fmt.Errorf("sound %s: gain cannot be negative, got %v", s.Name, s.Gain)
		}
	}

	if len(cfg.Enemies) == 0 {
		return fmt.Errorf("at least one enemy is required")
	}
	for id, tpl := range cfg.Enemies {
		if tpl.HP <= 0 {
			return fmt.Errorf("enemy %s: hp must be positive, got %d", id, tpl.HP)
		}
		if _, ok := cfg.Sprites[tpl.Sprite]; !ok {
			return fmt.Errorf("enemy %s: unknown sprite %q", id, tpl.Sprite)
		}
	}
	for id, sp := range cfg.Sprites {
		if sp.Width <= 0 || sp.Height <= 0 {
			return fmt.Errorf("sprite %s: size must be positive, got %vx%v", id, sp.Width, sp.Height)
		}
		if sp.Color != "" {
			if _, err := ParseHexColor(sp.Color); err != nil {
				return fmt.Errorf("sprite %s: %w", id, err)
			}
		}
	}

	if len(cfg.Weapons) == 0 {
		return fmt.Errorf("at least one weapon is required")
	}
	seen := make(map[string]bool, len(cfg.Weapons))
	for _, w := range cfg.Weapons {
		if w.ID == "" {
			return fmt.Errorf("weapon id is required")
		}
		if seen[w.ID] {
			return fmt.Errorf("weapon %s: duplicate id", w.ID)
		}
		seen[w.ID] = true
		if w.Price < 0 {
			return fmt.Errorf("weapon %s: price cannot be negative, got %d", w.ID, w.Price)
		}
		if w.Damage <= 0 {
			return fmt.Errorf("weapon %s: damage must be positive, got %d", w.ID, w.Damage)
		}
	}

	if len(cfg.Classic.Levels) == 0 {
		return fmt.Errorf("classic: at least one level is required")
	}
	for i, lvl := range cfg.Classic.Levels {
		if len(lvl.Enemies) == 0 {
			return fmt.Errorf("classic level %d: enemies cannot be empty", i+1)
		}
		if err := cfg.checkEnemyRefs(lvl.Enemies); err != nil {
			return fmt.Errorf("classic level %d: %w", i+1, err)
		}
	}
	if err := cfg.Classic.Rules.validate(); err != nil {
		return fmt.Errorf("classic rules: %w", err)
	}

	if len(cfg.Arena.Rounds) == 0 {
		return fmt.Errorf("arena: at least one round is required")
	}
	for i, r := range cfg.Arena.Rounds {
		if r.Stages < 1 {
			return fmt.Errorf("arena round %d: stages must be at least 1, got %d", i+1, r.Stages)
		}
		if len(r.Pool) == 0 {
			return fmt.Errorf("arena round %d: pool cannot be empty", i+1)
		}
		if err := cfg.checkEnemyRefs(r.Pool); err != nil {
			return fmt.Errorf("arena round %d: %w", i+1, err)
		}
	}
	if err := cfg.Arena.Rules.validate(); err != nil {
		return fmt.Errorf("arena rules: %w", err)
	}

	return nil
}

func (cfg *GameConfig) checkEnemyRefs(ids []string) error {
	for _, id := range ids {
		if _, ok := cfg.Enemies[id]; !ok {
			return fmt.Errorf("unknown enemy %q", id)
		}
	}
	return nil
}

// GetEnemy 按ID获取敌人模板
func (cfg *GameConfig) GetEnemy(id string) (EnemyTemplate, bool) {
	tpl, ok := cfg.Enemies[id]
	return tpl, ok
}

// GetWeapon 按ID获取武器
func (cfg *GameConfig) GetWeapon(id string) (Weapon, bool) {
	for _, w := range cfg.Weapons {
		if w.ID == id {
			return w, true
		}
	}
	return Weapon{}, false
}

// RulesFor 返回指定玩法的规则
func (cfg *GameConfig) RulesFor(v Variant) VariantRules {
	if v == VariantArena {
		return cfg.Arena.Rules
	}
	return cfg.Classic.Rules
}
