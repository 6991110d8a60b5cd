package deck

// BulletMarker 要点行前缀
const BulletMarker = "➤"

// 字号与段后间距 (pt)
const (
	TitleFontSize  = 40
	BodyFontSize   = 24
	BodySpaceAfter = 10
)

// Box 矩形区域，单位英寸
type Box struct {
	X, Y, Width, Height float64
}

// Layout 幻灯片版式，单位英寸
type Layout struct {
	Width  float64
	Height float64
	Title  Box
	Body   Box
}

// WidescreenLayout 16:9 宽屏版式
var WidescreenLayout = Layout{
	Width:  13.33,
	Height: 7.5,
	Title:  Box{X: 0.5, Y: 0.8, Width: 12.3, Height: 1.2},
	Body:   Box{X: 1.5, Y: 2.3, Width: 10.3, Height: 4},
}
