package prompts

import (
	"errors"
	"fmt"
	"strings"
)

// Variation はキャラクター画像の構図モードを表す識別子です。
type Variation string

const (
	VariationBase         Variation = "base"
	VariationIcon         Variation = "icon"
	VariationStorytelling Variation = "storytelling"
	VariationMascot       Variation = "mascot"
	VariationSecretAgent  Variation = "secret_agent"
)

// ErrUnknownVariation は定義済みの5種類以外の Variation が渡されたことを示します。
var ErrUnknownVariation = errors.New("unknown character variation")

var variationOrder = [...]Variation{
	VariationBase,
	VariationIcon,
	VariationStorytelling,
	VariationMascot,
	VariationSecretAgent,
}

var variationDescriptions = map[Variation]string{
	VariationBase:         "Base reference character design",
	VariationIcon:         "Head-only icon design with business name",
	VariationStorytelling: "4-panel comic strip storytelling",
	VariationMascot:       "Photorealistic mascot with locals and tourists",
	VariationSecretAgent:  "Secret agent in black suit and sunglasses",
}

// AllVariations はすべての Variation を固定の順序で返します。
// 呼び出しごとに新しいスライスを返すため、呼び出し側で変更しても影響はありません。
func AllVariations() []Variation {
	out := make([]Variation, len(variationOrder))
	copy(out, variationOrder[:])
	return out
}

// VariationDescription は Variation の1行説明を返します。
func VariationDescription(v Variation) (string, error) {
	desc, ok := variationDescriptions[v]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownVariation, string(v))
	}
	return desc, nil
}

// ParseVariation は CLI などの文字列から Variation を取得します。大文字小文字と前後の空白は無視します。
func ParseVariation(s string) (Variation, error) {
	v := Variation(strings.ToLower(strings.TrimSpace(s)))
	if !v.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownVariation, s)
	}
	return v, nil
}

// IsValid は v が定義済みの Variation かどうかを返します。
func (v Variation) IsValid() bool {
	_, ok := variationDescriptions[v]
	return ok
}

func (v Variation) String() string {
	return string(v)
}
