package components

// TweenProperty 补间可作用的属性
type TweenProperty int

const (
	TweenX       TweenProperty = iota // PositionComponent.X
	TweenY                            // PositionComponent.Y
	TweenScale                        // SpriteComponent.Scale
	TweenAngle                        // SpriteComponent.Angle
	TweenOpacity                      // SpriteComponent.Opacity
)

// TweenSegment 补间中的一段：在 Duration 秒内把属性从当前值变化到 To
// 起始值在该段开始时读取；Duration <= 0 时直接设置
type TweenSegment struct {
	Property TweenProperty
	To       float64
	Duration float64
	Easing   string // 见 utils.Easing，空串为线性

	started bool
	from    float64
	elapsed float64
}

// TweenTrack 顺序执行的若干段
type TweenTrack struct {
	Segments []TweenSegment
	current  int
}

// Done 轨道是否已播放完
func (t *TweenTrack) Done() bool {
	return t.current >= len(t.Segments)
}

// Current 当前正在播放的段，播放完时返回 nil
func (t *TweenTrack) Current() *TweenSegment {
	if t.Done() {
		return nil
	}
	return &t.Segments[t.current]
}

// Next 进入下一段
func (t *TweenTrack) Next() {
	t.current++
}

// Start 记录起始值
func (s *TweenSegment) Start(from float64) {
	s.started = true
	s.from = from
	s.elapsed = 0
}

// Started 是否已开始
func (s *TweenSegment) Started() bool {
	return s.started
}

// Advance 推进时间，返回本段的当前进度 (0~1) 和起始值
func (s *TweenSegment) Advance(dt float64) (progress, from float64) {
	s.elapsed += dt
	if s.Duration <= 0 || s.elapsed >= s.Duration {
		return 1, s.from
	}
	return s.elapsed / s.Duration, s.from
}

// TweenComponent 属性补间动画
//
// Tracks 并行播放，每条轨道内的段顺序播放。
// 全部轨道完成后 TweenSystem 移除该组件并调用一次 OnComplete。
type TweenComponent struct {
	Tracks     []TweenTrack
	OnComplete func()
}

// NewTween 创建并行补间，每个参数是一条轨道
func NewTween(onComplete func(), tracks ...[]TweenSegment) *TweenComponent {
	tc := &TweenComponent{OnComplete: onComplete}
	for _, segs := range tracks {
		tc.Tracks = append(tc.Tracks, TweenTrack{Segments: segs})
	}
	return tc
}
