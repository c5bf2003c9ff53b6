package publisher

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/shouni/go-mascot-kit/pkg/asset"
	"github.com/shouni/go-mascot-kit/pkg/domain"
	"github.com/shouni/go-mascot-kit/pkg/generator"
)

// OutputWriter は生成物の書き込み先を抽象化します。
// remoteio.OutputWriter はこのインターフェースを満たします。
type OutputWriter interface {
	Write(ctx context.Context, path string, r io.Reader, contentType string) error
}

// Manifest は1回の生成で使用した入力とプロンプトの記録です。
type Manifest struct {
	RunID           string                 `json:"run_id"`
	GeneratedAt     time.Time              `json:"generated_at"`
	BusinessConcept domain.BusinessConcept `json:"business_concept"`
	Prompts         generator.Prompts      `json:"prompts"`
	Images          map[string]string      `json:"images"` // Variation -> 保存先パス
}

// PublishResult はパブリッシュ処理の結果として生成されたファイルの情報を保持します。
type PublishResult struct {
	OutputDir    string
	ManifestPath string
	ImagePaths   map[string]string // Variation -> 保存先パス
}

// MascotPublisher は生成画像とプロンプトの記録を永続化します。
type MascotPublisher struct {
	writer OutputWriter
	now    func() time.Time
}

// NewMascotPublisher は MascotPublisher を生成します。
func NewMascotPublisher(writer OutputWriter) (*MascotPublisher, error) {
	if writer == nil {
		return nil, fmt.Errorf("writer は必須です")
	}
	return &MascotPublisher{writer: writer, now: time.Now}, nil
}

// Publish は outputDir に画像3枚と prompts.json を保存します。
func (p *MascotPublisher) Publish(ctx context.Context, outputDir, runID string, res *generator.Result) (*PublishResult, error) {
	if res == nil {
		return nil, fmt.Errorf("生成結果が空です")
	}

	images := []struct {
		variation string
		fileName  string
		handle    string
	}{
		{"base", asset.BaseImageFileName, res.BaseImage},
		{"storytelling", asset.StorytellingImageFileName, res.StorytellingImage},
		{"mascot", asset.MascotImageFileName, res.MascotImage},
	}

	result := &PublishResult{OutputDir: outputDir, ImagePaths: make(map[string]string, len(images))}
	for _, img := range images {
		path, err := p.saveImage(ctx, outputDir, img.fileName, img.handle)
		if err != nil {
			return nil, fmt.Errorf("%s 画像の保存に失敗しました: %w", img.variation, err)
		}
		result.ImagePaths[img.variation] = path
	}

	manifestPath, err := p.saveManifest(ctx, outputDir, Manifest{
		RunID:           runID,
		GeneratedAt:     p.now().UTC(),
		BusinessConcept: res.BusinessConcept,
		Prompts:         res.Prompts,
		Images:          result.ImagePaths,
	})
	if err != nil {
		return nil, err
	}
	result.ManifestPath = manifestPath

	slog.InfoContext(ctx, "生成物を保存しました", "output_dir", outputDir, "images", len(result.ImagePaths))
	return result, nil
}

// saveImage は Base64 の画像ハンドルをデコードして保存します。拡張子は実データの形式に合わせます。
func (p *MascotPublisher) saveImage(ctx context.Context, outputDir, fileName, handle string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(handle)
	if err != nil {
		return "", fmt.Errorf("画像データのデコードに失敗しました: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("画像データが空です")
	}

	mimeType := http.DetectContentType(data)
	path, err := asset.ResolveOutputPath(outputDir, asset.ReplaceExtension(fileName, mimeType))
	if err != nil {
		return "", err
	}
	if err := p.writer.Write(ctx, path, bytes.NewReader(data), mimeType); err != nil {
		return "", err
	}
	slog.InfoContext(ctx, "画像を保存しました", "path", path, "mime_type", mimeType)
	return path, nil
}

func (p *MascotPublisher) saveManifest(ctx context.Context, outputDir string, m Manifest) (string, error) {
	body, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("マニフェストのエンコードに失敗しました: %w", err)
	}

	path, err := asset.ResolveOutputPath(outputDir, asset.PromptManifestFileName)
	if err != nil {
		return "", err
	}
	if err := p.writer.Write(ctx, path, bytes.NewReader(body), "application/json; charset=utf-8"); err != nil {
		return "", fmt.Errorf("マニフェストの保存に失敗しました: %w", err)
	}
	return path, nil
}
