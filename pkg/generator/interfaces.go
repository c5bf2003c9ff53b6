package generator

import "context"

// ImageGenerator は画像生成ベンダーとの境界です。
// 返却値の画像ハンドルは不透明な文字列 (Base64 ペイロードやベンダー ID) で、
// 派生画像の生成時にベース画像の参照として渡されます。
type ImageGenerator interface {
	// GenerateBaseImage はベースとなるキャラクター画像を生成します。
	GenerateBaseImage(ctx context.Context, prompt string) (string, error)
	// GenerateStorytellingImage はベース画像を参照して4コマ漫画を生成します。
	GenerateStorytellingImage(ctx context.Context, prompt, baseImage string) (string, error)
	// GenerateMascotImage はベース画像を参照して実写風マスコットを生成します。
	GenerateMascotImage(ctx context.Context, prompt, baseImage string) (string, error)
}
