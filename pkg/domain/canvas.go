package domain

// CanvasRules は生成画像に共通で適用するレイアウト制約です。
// 現在の設計では各フィールドが単一のリテラルに固定されていますが、
// 制約は validate タグにのみ記述しているため、将来の緩和はタグの変更だけで済みます。
type CanvasRules struct {
	Aspect    string `json:"aspect" toml:"aspect" yaml:"aspect" validate:"eq=1:1"`
	Size      string `json:"size" toml:"size" yaml:"size" validate:"eq=1024x1024"`
	PaddingPx int    `json:"padding_px" toml:"padding_px" yaml:"padding_px" validate:"eq=2"`
	Alignment string `json:"alignment" toml:"alignment" yaml:"alignment" validate:"eq=center"`
	Border    bool   `json:"border" toml:"border" yaml:"border" validate:"eq=false"`
}

// DefaultCanvas は唯一許可されたキャンバス設定です。
var DefaultCanvas = CanvasRules{
	Aspect:    "1:1",
	Size:      "1024x1024",
	PaddingPx: 2,
	Alignment: "center",
	Border:    false,
}

// NewCanvasRules は値を検証して CanvasRules を返します。
func NewCanvasRules(c CanvasRules) (CanvasRules, error) {
	if err := validateStruct("CanvasRules", c); err != nil {
		return CanvasRules{}, err
	}
	return c, nil
}
