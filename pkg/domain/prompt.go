package domain

// Style は画像プロンプトの画風タグです。
type Style string

const (
	StyleKawaii         Style = "kawaii"
	StylePhotorealistic Style = "photorealistic"
)

// ImagePrompt はベンダーへ渡す最終的なプロンプトです。
// テキスト・画風・サイズだけで解釈できるよう、暗黙の文脈は持ちません。
type ImagePrompt struct {
	Text  string `json:"text" validate:"required"`
	Style Style  `json:"style" validate:"oneof=kawaii photorealistic"`
	Size  string `json:"size"`
}

// DefaultBaseStyle は CharacterDesigner が既定で使用する画風です。
var DefaultBaseStyle = ImagePrompt{
	Text:  "kawaii style character design",
	Style: StyleKawaii,
	Size:  "1024x1024",
}

// NewImagePrompt は値を検証して ImagePrompt を返します。
func NewImagePrompt(p ImagePrompt) (ImagePrompt, error) {
	if err := validateStruct("ImagePrompt", p); err != nil {
		return ImagePrompt{}, err
	}
	return p, nil
}
