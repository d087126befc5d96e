package game

import (
	"github.com/gonewx/fishtap/pkg/config"
)

// Course 决定每个阶段出现哪个敌人，以及一轮/整局何时结束
// 两种玩法各有一个实现
type Course interface {
	// Current 返回当前轮次、阶段对应的敌人模板
	Current(gs *GameState) (config.EnemyTemplate, bool)
	// HasNextStage 当前轮是否还有下一个敌人
	HasNextStage(gs *GameState) bool
	// HasNextRound 是否还有下一轮
	HasNextRound(gs *GameState) bool
}

// NewCourse 根据玩法创建出怪规则
func NewCourse(cfg *config.GameConfig, v config.Variant) Course {
	if v == config.VariantArena {
		return &arenaCourse{cfg: cfg}
	}
	return &classicCourse{cfg: cfg}
}

// classicCourse 经典模式：每关是固定的敌人列表，列表打完即过关
type classicCourse struct {
	cfg *config.GameConfig
}

func (c *classicCourse) level(gs *GameState) (config.Level, bool) {
	if gs.Round < 0 || gs.Round >= len(c.cfg.Classic.Levels) {
		return config.Level{}, false
	}
	return c.cfg.Classic.Levels[gs.Round], true
}

func (c *classicCourse) Current(gs *GameState) (config.EnemyTemplate, bool) {
	lvl, ok := c.level(gs)
	if !ok || gs.Stage < 0 || gs.Stage >= len(lvl.Enemies) {
		return config.EnemyTemplate{}, false
	}
	return c.cfg.GetEnemy(lvl.Enemies[gs.Stage])
}

func (c *classicCourse) HasNextStage(gs *GameState) bool {
	lvl, ok := c.level(gs)
	return ok && len(lvl.Enemies) > gs.Stage+1
}

func (c *classicCourse) HasNextRound(gs *GameState) bool {
	return gs.Round+1 < len(c.cfg.Classic.Levels)
}

// arenaCourse 竞技场模式：阶段计数达到终止值（Stages-1）即本轮结束，
// 敌人从池中按阶段轮流取
type arenaCourse struct {
	cfg *config.GameConfig
}

func (c *arenaCourse) round(gs *GameState) (config.ArenaRound, bool) {
	if gs.Round < 0 || gs.Round >= len(c.cfg.Arena.Rounds) {
		return config.ArenaRound{}, false
	}
	return c.cfg.Arena.Rounds[gs.Round], true
}

func (c *arenaCourse) Current(gs *GameState) (config.EnemyTemplate, bool) {
	r, ok := c.round(gs)
	if !ok || gs.Stage < 0 || gs.Stage >= r.Stages {
		return config.EnemyTemplate{}, false
	}
	return c.cfg.GetEnemy(r.Pool[gs.Stage%len(r.Pool)])
}

func (c *arenaCourse) HasNextStage(gs *GameState) bool {
	r, ok := c.round(gs)
	return ok && gs.Stage < r.Stages-1
}

func (c *arenaCourse) HasNextRound(gs *GameState) bool {
	return gs.Round+1 < len(c.cfg.Arena.Rounds)
}
