package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation は入力値がスキーマ制約を満たさないことを示します。
	ErrValidation = errors.New("validation failed")
	// ErrNoImageGenerated はベンダーが画像を1枚も返さなかったことを示します。
	ErrNoImageGenerated = errors.New("no image generated")
)

// FieldError はフィールド単位の制約違反を表します。
type FieldError struct {
	Field   string // 例: "ColorPalette.Accent"
	Rule    string // 例: "required", "eq"
	Param   string // 制約のパラメータ (eq=1:1 の "1:1" など)
	Message string
}

func (f FieldError) String() string {
	return fmt.Sprintf("%s: %s", f.Field, f.Message)
}

// ValidationError はエンティティや値オブジェクトの生成時に検出された違反をすべて保持します。
// 部分的な生成は行われないため、このエラーが返った場合は値も返りません。
type ValidationError struct {
	Entity string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.String())
	}
	return fmt.Sprintf("invalid %s: %s", e.Entity, strings.Join(msgs, "; "))
}

// Is は errors.Is(err, ErrValidation) を成立させます。
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// HasField は指定フィールドの違反が含まれているかを返します。
func (e *ValidationError) HasField(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// NoImageGeneratedError はベンダーの応答に画像データが含まれていなかったことを表します。
type NoImageGeneratedError struct {
	Variation    string // "base", "storytelling", "mascot" など
	FinishReason string // ベンダーが返した終了理由 (空の場合あり)
}

func (e *NoImageGeneratedError) Error() string {
	if e.FinishReason != "" {
		return fmt.Sprintf("no %s image generated (finish reason: %s)", e.Variation, e.FinishReason)
	}
	return fmt.Sprintf("no %s image generated", e.Variation)
}

// Is は errors.Is(err, ErrNoImageGenerated) を成立させます。
func (e *NoImageGeneratedError) Is(target error) bool {
	return target == ErrNoImageGenerated
}
