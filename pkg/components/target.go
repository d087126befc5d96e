package components

// TargetState 目标实体的生命周期状态
type TargetState int

const (
	// TargetSpawning 正在入场（经典模式从左侧游入）
	TargetSpawning TargetState = iota
	// TargetInteractable 可以被点击
	TargetInteractable
	// TargetHitReacting 正在播放受击缩放
	TargetHitReacting
	// TargetDefeating 正在播放击败动画
	TargetDefeating
	// TargetDespawned 已退场，等待下一个目标或游戏结束
	TargetDespawned
)

func (s TargetState) String() string {
	switch s {
	case TargetSpawning:
		return "Spawning"
	case TargetInteractable:
		return "Interactable"
	case TargetHitReacting:
		return "HitReacting"
	case TargetDefeating:
		return "Defeating"
	case TargetDespawned:
		return "Despawned"
	default:
		return "Unknown"
	}
}

// TargetComponent 可点击的敌人
//
// HP 只会在可交互状态下被一次有效点击减少；
// HP 首次降到 0 及以下时进入 TargetDefeating，之后 InteractionBlocked 永久为 true。
type TargetComponent struct {
	TemplateID string // 敌人模板ID
	HP         int    // 当前生命值
	MaxHP      int    // 初始生命值

	// InteractionBlocked 入场和击败期间为 true
	InteractionBlocked bool
	// AnimPlaying 受击缩放期间为 true，由动画完成回调清除
	AnimPlaying bool

	State TargetState
}
