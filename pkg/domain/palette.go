package domain

// ColorPalette はキャラクターの配色 (メイン・サブ・アクセント) を保持する値オブジェクトです。
// すべてのフィールドが文字列のため == で比較できます。
type ColorPalette struct {
	Primary   string `json:"primary" toml:"primary" yaml:"primary" validate:"required"`
	Secondary string `json:"secondary" toml:"secondary" yaml:"secondary" validate:"required"`
	Accent    string `json:"accent" toml:"accent" yaml:"accent" validate:"required"`
}

// NewColorPalette は値を検証して ColorPalette を返します。
func NewColorPalette(p ColorPalette) (ColorPalette, error) {
	if err := validateStruct("ColorPalette", p); err != nil {
		return ColorPalette{}, err
	}
	return p, nil
}

// Equal は3色がすべて一致する場合に true を返します。
func (p ColorPalette) Equal(other ColorPalette) bool {
	return p == other
}
