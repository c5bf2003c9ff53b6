package adapters

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/shouni/gemini-image-kit/pkg/imgutil"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/shouni/go-mascot-kit/pkg/config"
	"github.com/shouni/go-mascot-kit/pkg/domain"
	"github.com/shouni/go-mascot-kit/pkg/generator"
)

const (
	cacheKeyFileAPIURI = "fileapi_uri:"
	baseDisplayName    = "base-reference"
)

// 静的な型チェック
var _ generator.ImageGenerator = (*GeminiImageGenerator)(nil)

// GeminiImageGenerator は Gemini の画像生成モデルを使って generator.ImageGenerator を実装します。
// 画像ハンドルは生成画像の Base64 文字列です。
// 派生画像の生成時には、ベース画像を File API へ一度だけアップロードして参照します。
type GeminiImageGenerator struct {
	aiClient    AIClient
	cache       ImageCacher
	limiter     *rate.Limiter
	cfg         config.Config
	aspectRatio string

	uploadGroup singleflight.Group
	mu          sync.Mutex
	uploaded    []uploadedFile // Cleanup 対象
}

// Option は GeminiImageGenerator の設定を変更します。
type Option func(*GeminiImageGenerator)

// WithAspectRatio は生成画像のアスペクト比を指定します。
// 通常は CanvasRules.Aspect を渡します。
func WithAspectRatio(aspect string) Option {
	return func(g *GeminiImageGenerator) {
		if aspect != "" {
			g.aspectRatio = aspect
		}
	}
}

// NewGeminiImageGenerator は依存関係を注入して GeminiImageGenerator を初期化します。
// cache は nil を許容します (毎回アップロード)。
// アスペクト比の既定値は domain.DefaultCanvas.Aspect です。
func NewGeminiImageGenerator(aiClient AIClient, cache ImageCacher, cfg config.Config, opts ...Option) (*GeminiImageGenerator, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient is required")
	}
	cfg = cfg.WithDefaults()

	g := &GeminiImageGenerator{
		aiClient:    aiClient,
		cache:       cache,
		limiter:     rate.NewLimiter(rate.Every(cfg.RateInterval), 1),
		cfg:         cfg,
		aspectRatio: domain.DefaultCanvas.Aspect,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// GenerateBaseImage はベースとなるキャラクター画像を生成します。
func (g *GeminiImageGenerator) GenerateBaseImage(ctx context.Context, prompt string) (string, error) {
	return g.generate(ctx, "base", prompt, "")
}

// GenerateStorytellingImage はベース画像を参照して4コマ漫画を生成します。
func (g *GeminiImageGenerator) GenerateStorytellingImage(ctx context.Context, prompt, baseImage string) (string, error) {
	return g.generate(ctx, "storytelling", prompt, baseImage)
}

// GenerateMascotImage はベース画像を参照して実写風マスコットを生成します。
func (g *GeminiImageGenerator) GenerateMascotImage(ctx context.Context, prompt, baseImage string) (string, error) {
	return g.generate(ctx, "mascot", prompt, baseImage)
}

func (g *GeminiImageGenerator) generate(ctx context.Context, variation, prompt, baseImage string) (string, error) {
	parts := []*genai.Part{{Text: prompt}}
	if baseImage != "" {
		ref, err := g.referencePart(ctx, baseImage)
		if err != nil {
			return "", err
		}
		parts = append(parts, ref)
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return "", err
	}

	logger := slog.With("variation", variation, "model", g.cfg.ImageModel, "use_file_api", baseImage != "")
	logger.InfoContext(ctx, "Starting image generation")
	start := time.Now()

	resp, err := g.aiClient.GenerateWithParts(ctx, g.cfg.ImageModel, parts, gemini.GenerateOptions{
		AspectRatio: g.aspectRatio,
	})
	if err != nil {
		return "", err
	}

	out, err := parseToResponse(resp, variation)
	if err != nil {
		return "", err
	}

	logger.InfoContext(ctx, "Image generation completed",
		"mime_type", out.MimeType,
		"bytes", len(out.Data),
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return base64.StdEncoding.EncodeToString(out.Data), nil
}

// referencePart はベース画像のハンドルを File API 参照の genai.Part に変換します。
// 同じハンドルの並行アップロードは singleflight で1回にまとめます。
func (g *GeminiImageGenerator) referencePart(ctx context.Context, baseImage string) (*genai.Part, error) {
	key := handleKey(baseImage)

	val, err, _ := g.uploadGroup.Do(key, func() (any, error) {
		if g.cache != nil {
			if v, ok := g.cache.Get(cacheKeyFileAPIURI + key); ok {
				if ref, ok := v.(fileRef); ok {
					return ref, nil
				}
			}
		}
		return g.uploadBaseImage(ctx, key, baseImage)
	})
	if err != nil {
		return nil, err
	}

	ref, ok := val.(fileRef)
	if !ok {
		return nil, fmt.Errorf("unexpected return type from singleflight: %T", val)
	}
	return &genai.Part{FileData: &genai.FileData{FileURI: ref.URI, MIMEType: ref.MIMEType}}, nil
}

func (g *GeminiImageGenerator) uploadBaseImage(ctx context.Context, key, baseImage string) (fileRef, error) {
	data, err := base64.StdEncoding.DecodeString(baseImage)
	if err != nil {
		return fileRef{}, fmt.Errorf("ベース画像のデコードに失敗しました: %w", err)
	}

	finalData := data
	if g.cfg.UseCompression {
		if compressed, err := imgutil.CompressToJPEG(data, g.cfg.CompressionQuality); err == nil {
			finalData = compressed
		} else {
			slog.WarnContext(ctx, "ベース画像の圧縮に失敗しました。元データでアップロードします", "error", err)
		}
	}
	mimeType := http.DetectContentType(finalData)

	uri, name, err := g.aiClient.UploadFile(ctx, finalData, mimeType, baseDisplayName)
	if err != nil {
		return fileRef{}, fmt.Errorf("ベース画像のアップロードに失敗しました: %w", err)
	}
	ref := fileRef{URI: uri, MIMEType: mimeType}

	if g.cache != nil {
		g.cache.Set(cacheKeyFileAPIURI+key, ref, g.cfg.CacheTTL)
	}

	g.mu.Lock()
	g.uploaded = append(g.uploaded, uploadedFile{name: name, cacheKey: key})
	g.mu.Unlock()

	slog.InfoContext(ctx, "Base reference uploaded", "file_name", name, "mime_type", mimeType)
	return ref, nil
}

// Cleanup はこの実行でアップロードした File API 上のファイルを削除します。
// 削除済みのファイルを参照しないよう、キャッシュからも参照情報を取り除きます。
// 削除に失敗したファイルがあっても残りの削除を続け、最初のエラーを返します。
func (g *GeminiImageGenerator) Cleanup(ctx context.Context) error {
	g.mu.Lock()
	files := g.uploaded
	g.uploaded = nil
	g.mu.Unlock()

	var firstErr error
	for _, f := range files {
		if g.cache != nil {
			g.cache.Delete(cacheKeyFileAPIURI + f.cacheKey)
		}
		if err := g.aiClient.DeleteFile(ctx, f.name); err != nil {
			slog.WarnContext(ctx, "File API のファイル削除に失敗しました", "file_name", f.name, "error", err)
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to delete %s: %w", f.name, err)
			}
		}
	}
	return firstErr
}

// fileRef は File API にアップロードしたファイルの参照情報です。
type fileRef struct {
	URI      string
	MIMEType string
}

type uploadedFile struct {
	name     string
	cacheKey string
}

func handleKey(handle string) string {
	sum := sha256.Sum256([]byte(handle))
	return hex.EncodeToString(sum[:])
}
