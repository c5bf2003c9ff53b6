package prompts

import (
	"fmt"
	"strings"

	"github.com/shouni/go-mascot-kit/pkg/domain"
)

// blockSeparator は各ブロックの区切りです。
const blockSeparator = "\n\n"

type directiveWriter func(w *strings.Builder, c domain.BusinessConcept)

// variationSpec は Variation ごとの差分を定義します。
type variationSpec struct {
	directive     directiveWriter
	withAgentName bool
}

// ICON と MASCOT はエージェント名を参照しない構図です。
var variationSpecs = map[Variation]variationSpec{
	VariationBase:         {directive: writeBaseDirective, withAgentName: true},
	VariationIcon:         {directive: writeIconDirective, withAgentName: false},
	VariationStorytelling: {directive: writeStorytellingDirective, withAgentName: true},
	VariationMascot:       {directive: writeMascotDirective, withAgentName: false},
	VariationSecretAgent:  {directive: writeSecretAgentDirective, withAgentName: true},
}

// CharacterDesigner は BusinessConcept とキャンバス設定から画像プロンプトを組み立てます。
// 状態を持たず、同じ入力に対して常に同じプロンプトを返します。
type CharacterDesigner struct {
	canvas    domain.CanvasRules
	baseStyle domain.ImagePrompt
}

// Option は CharacterDesigner の設定を変更します。
type Option func(*CharacterDesigner)

// WithCanvas はキャンバス設定を指定します。
func WithCanvas(c domain.CanvasRules) Option {
	return func(d *CharacterDesigner) {
		d.canvas = c
	}
}

// WithBaseStyle は画風 (Style) の取得元となるプロンプトを指定します。
func WithBaseStyle(p domain.ImagePrompt) Option {
	return func(d *CharacterDesigner) {
		d.baseStyle = p
	}
}

// NewCharacterDesigner は CharacterDesigner を生成します。
// 指定されたキャンバス設定と画風はここで検証されます。
func NewCharacterDesigner(opts ...Option) (*CharacterDesigner, error) {
	d := &CharacterDesigner{
		canvas:    domain.DefaultCanvas,
		baseStyle: domain.DefaultBaseStyle,
	}
	for _, opt := range opts {
		opt(d)
	}

	canvas, err := domain.NewCanvasRules(d.canvas)
	if err != nil {
		return nil, fmt.Errorf("キャンバス設定が不正です: %w", err)
	}
	baseStyle, err := domain.NewImagePrompt(d.baseStyle)
	if err != nil {
		return nil, fmt.Errorf("画風の設定が不正です: %w", err)
	}
	d.canvas, d.baseStyle = canvas, baseStyle
	return d, nil
}

// Canvas は使用中のキャンバス設定を返します。
func (d *CharacterDesigner) Canvas() domain.CanvasRules {
	return d.canvas
}

// BuildPrompt は指定された Variation のプロンプトを生成します。
// 空の Variation は VariationBase として扱います。定義外の値には ErrUnknownVariation を返します。
func (d *CharacterDesigner) BuildPrompt(concept domain.BusinessConcept, variation Variation) (domain.ImagePrompt, error) {
	if variation == "" {
		variation = VariationBase
	}
	vs, ok := variationSpecs[variation]
	if !ok {
		return domain.ImagePrompt{}, fmt.Errorf("%w: %q", ErrUnknownVariation, string(variation))
	}

	var sb strings.Builder
	sb.WriteString(StylePreamble)
	sb.WriteString(blockSeparator)
	writeCanvasLayout(&sb, d.canvas)
	sb.WriteString(blockSeparator)
	writeCharacterReference(&sb, concept, vs.withAgentName)
	sb.WriteString(blockSeparator)
	vs.directive(&sb, concept)

	return domain.ImagePrompt{
		Text:  sb.String(),
		Style: d.baseStyle.Style,
		Size:  d.canvas.Size,
	}, nil
}

// BuildAll はすべての Variation のプロンプトを AllVariations の順序で生成します。
func (d *CharacterDesigner) BuildAll(concept domain.BusinessConcept) (map[Variation]domain.ImagePrompt, error) {
	out := make(map[Variation]domain.ImagePrompt, len(variationOrder))
	for _, v := range variationOrder {
		p, err := d.BuildPrompt(concept, v)
		if err != nil {
			return nil, err
		}
		out[v] = p
	}
	return out, nil
}

// BaseStyle は使用中の画風設定を返します。
func (d *CharacterDesigner) BaseStyle() domain.ImagePrompt {
	return d.baseStyle
}
