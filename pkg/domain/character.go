package domain

import (
	"fmt"
)

// BusinessConcept は描画対象となるキャラクター (ブランド) の定義を保持します。
// 生成後は不変として扱い、CharacterDesigner もこの値を変更しません。
type BusinessConcept struct {
	BusinessName         string       `json:"business_name" toml:"business_name" yaml:"business_name" validate:"required"`
	BusinessType         string       `json:"business_type" toml:"business_type" yaml:"business_type" validate:"required"`
	CharacterDescription string       `json:"character_description" toml:"character_description" yaml:"character_description" validate:"required"`
	Keywords             []string     `json:"keywords" toml:"keywords" yaml:"keywords" validate:"required"` // 入力順のままプロンプトに埋め込まれる
	SecretAgentName      string       `json:"secret_agent_name" toml:"secret_agent_name" yaml:"secret_agent_name" validate:"required"`
	ColorPalette         ColorPalette `json:"color_palette" toml:"color_palette" yaml:"color_palette"`
}

// NewBusinessConcept は信頼できない入力を検証し、BusinessConcept を返します。
// 検証は全か無かで、違反がある場合はすべての違反を含む *ValidationError を返します。
// 返却値の Keywords は入力とは別のスライスです。
func NewBusinessConcept(c BusinessConcept) (BusinessConcept, error) {
	if err := validateStruct("BusinessConcept", c); err != nil {
		return BusinessConcept{}, err
	}
	return c.clone(), nil
}

// CreateCharacterDesign はデモやテストで使う標準のキャラクター定義を返します。
// 任意の入力と同じ検証経路を通ります。
func CreateCharacterDesign() BusinessConcept {
	c, err := NewBusinessConcept(BusinessConcept{
		BusinessName:         "Stealth Slurp",
		BusinessType:         "Midnight Ramen Stand",
		CharacterDescription: "red-panda ninja in charcoal hakama, stealthily ladling ramen with a shuriken-shaped ladle, tail balancing a tray of steaming bowls",
		Keywords: []string{
			"red-panda ninja",
			"shuriken ladle",
			"charcoal hakama",
			"stealth tail",
			"ramen bowls",
			"steam swirls",
			"disgusted",
			"annoyed",
			"chibi heroic mascot in dynamic pose",
			"thick outline",
			"bright cel-shaded colors",
			"vibrant saturated palette",
			"high contrast highlights",
			"sparkling metallic or holographic gradient background",
			"soft top-left lighting",
			"consistent brightness",
			"flat kawaii vector finish",
			"no realism",
		},
		SecretAgentName: "Agent Shadow-Tail",
		ColorPalette: ColorPalette{
			Primary:   "charcoal",
			Secondary: "crimson",
			Accent:    "bamboo-green",
		},
	})
	if err != nil {
		// 固定値が不正なのはプログラムの誤りなのでここで止める
		panic(fmt.Sprintf("canonical character design is invalid: %v", err))
	}
	return c
}

// String はキャラクターの情報を文字列で返します。
func (c BusinessConcept) String() string {
	return fmt.Sprintf("%s (%s)", c.BusinessName, c.BusinessType)
}
