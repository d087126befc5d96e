package game

import (
	"log"

	"github.com/gonewx/fishtap/pkg/config"
	"github.com/google/uuid"
)

// GameState 存储一局游戏的进度和经济状态
//
// 由 App 创建并注入到场景和系统中，整个进程生命周期内只有一个实例，
// 不做持久化（重启即重置）。所有修改都发生在 ebiten 的 Update 线程上。
type GameState struct {
	Coins    int            // 金币（经典模式下即得分），非负
	Stage    int            // 当前阶段（一轮内第几个敌人，从0开始）
	Round    int            // 当前轮次/关卡（从0开始）
	Finished bool           // 游戏是否已结束
	Weapon   *config.Weapon // 已选择的武器，nil 表示未选择

	// RunID 本局标识，仅用于日志
	RunID string
}

// NewGameState 创建一局新游戏的状态
func NewGameState() *GameState {
	return &GameState{RunID: uuid.NewString()}
}

// Reset 开始新的一局：清空金币、进度和武器，生成新的 RunID
func (gs *GameState) Reset() {
	*gs = GameState{RunID: uuid.NewString()}
	log.Printf("[GameState] New run %s", gs.RunID)
}

// ResetProgress 只重置关卡进度（经典模式每次进入游戏界面时调用）
// 与原版一致：分数、关卡、敌人序号全部归零，武器保留
func (gs *GameState) ResetProgress() {
	gs.Coins = 0
	gs.Stage = 0
	gs.Round = 0
	gs.Finished = false
}

// Award 增加金币，非正数忽略
func (gs *GameState) Award(amount int) {
	if amount <= 0 {
		return
	}
	gs.Coins += amount
}

// SpendAndSelect 花费金币选择武器
// 金币不足时返回 false 且不修改任何状态；
// 选择当前已装备的同一把武器不重复扣费
func (gs *GameState) SpendAndSelect(weapon config.Weapon) bool {
	if gs.Weapon != nil && gs.Weapon.ID == weapon.ID {
		return true
	}
	if gs.Coins < weapon.Price {
		return false
	}
	gs.Coins -= weapon.Price
	w := weapon
	gs.Weapon = &w
	log.Printf("[GameState] Run %s selected weapon %s (price %d, coins left %d)", gs.RunID, weapon.ID, weapon.Price, gs.Coins)
	return true
}

// AdvanceStage 进入下一阶段
func (gs *GameState) AdvanceStage() {
	gs.Stage++
}

// AdvanceRound 进入下一轮，阶段归零
func (gs *GameState) AdvanceRound() {
	gs.Round++
	gs.Stage = 0
}

// FinishGame 标记游戏结束，之后不再生成敌人
func (gs *GameState) FinishGame() {
	if gs.Finished {
		return
	}
	gs.Finished = true
	log.Printf("[GameState] Run %s finished: round=%d stage=%d coins=%d", gs.RunID, gs.Round, gs.Stage, gs.Coins)
}

// Damage 返回一次有效点击造成的伤害
// 规则要求使用武器伤害且已选择武器时返回武器伤害，否则返回基础伤害
func (gs *GameState) Damage(rules config.VariantRules) int {
	if rules.UseWeaponDamage && gs.Weapon != nil {
		return gs.Weapon.Damage
	}
	return rules.BaseDamage
}
