package game

import (
	"log"

	"github.com/gonewx/fishtap/pkg/config"
)

// Shop 武器商店
// 武器列表固定（来自配置），购买即花费金币并装备，
// 竞技场模式下必须装备武器才能进入游戏界面
type Shop struct {
	weapons []config.Weapon
	state   *GameState
}

// NewShop 创建商店
func NewShop(weapons []config.Weapon, state *GameState) *Shop {
	return &Shop{weapons: weapons, state: state}
}

// Weapons 返回可购买的武器列表
func (s *Shop) Weapons() []config.Weapon {
	return s.weapons
}

// Buy 按ID购买武器
// 未知武器或金币不足时返回 false，状态不变
func (s *Shop) Buy(weaponID string) bool {
	for _, w := range s.weapons {
		if w.ID != weaponID {
			continue
		}
		if !s.state.SpendAndSelect(w) {
			log.Printf("[Shop] Not enough coins for %s: have %d, need %d", w.ID, s.state.Coins, w.Price)
			return false
		}
		return true
	}
	log.Printf("[Shop] Unknown weapon: %s", weaponID)
	return false
}

// CanAfford 金币是否足够购买
func (s *Shop) CanAfford(w config.Weapon) bool {
	return s.state.Coins >= w.Price
}

// IsSelected 武器是否为当前装备
func (s *Shop) IsSelected(w config.Weapon) bool {
	return s.state.Weapon != nil && s.state.Weapon.ID == w.ID
}

// CanEnterGame 是否允许进入游戏界面
func (s *Shop) CanEnterGame() bool {
	return s.state.Weapon != nil && !s.state.Finished
}
