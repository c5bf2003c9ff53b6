package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-mascot-kit/pkg/asset"
	"github.com/shouni/go-mascot-kit/pkg/domain"
	"github.com/shouni/go-mascot-kit/pkg/generator"
	"github.com/shouni/go-mascot-kit/pkg/publisher"
)

// CharacterImagesExecutor はキャラクター画像一式を生成する契約です。
type CharacterImagesExecutor interface {
	Execute(ctx context.Context, concept domain.BusinessConcept, canvas domain.CanvasRules) (*generator.Result, error)
}

// ResultPublisher は生成結果を永続化する契約です。
type ResultPublisher interface {
	Publish(ctx context.Context, outputDir, runID string, res *generator.Result) (*publisher.PublishResult, error)
}

// Cleaner は実行後に一時リソースを解放する契約です。
type Cleaner interface {
	Cleanup(ctx context.Context) error
}

// DesignResult は DesignRunner.Run の結果です。
type DesignResult struct {
	RunID     string
	Generated *generator.Result
	Published *publisher.PublishResult
}

// MascotDesignRunner はキャラクター画像の生成から保存までを実行します。
type MascotDesignRunner struct {
	images    CharacterImagesExecutor
	publisher ResultPublisher
	cleaner   Cleaner
	canvas    domain.CanvasRules
}

// NewMascotDesignRunner は依存関係を注入して初期化します。cleaner は nil を許容します。
func NewMascotDesignRunner(images CharacterImagesExecutor, pub ResultPublisher, cleaner Cleaner, canvas domain.CanvasRules) (*MascotDesignRunner, error) {
	if images == nil {
		return nil, fmt.Errorf("images は必須です")
	}
	if pub == nil {
		return nil, fmt.Errorf("publisher は必須です")
	}
	return &MascotDesignRunner{
		images:    images,
		publisher: pub,
		cleaner:   cleaner,
		canvas:    canvas,
	}, nil
}

// Run は concept の画像一式を生成し、outputDir 配下の実行ごとのディレクトリに保存します。
func (dr *MascotDesignRunner) Run(ctx context.Context, concept domain.BusinessConcept, outputDir string) (*DesignResult, error) {
	runDir, runID, err := asset.NewRunDir(outputDir, "")
	if err != nil {
		return nil, err
	}

	slog.Info("Executing mascot design generation",
		slog.String("run_id", runID),
		slog.String("business_name", concept.BusinessName),
		slog.String("output_dir", runDir),
	)

	if dr.cleaner != nil {
		defer func() {
			if err := dr.cleaner.Cleanup(context.WithoutCancel(ctx)); err != nil {
				slog.WarnContext(ctx, "一時ファイルの削除に失敗しました", "error", err)
			}
		}()
	}

	generated, err := dr.images.Execute(ctx, concept, dr.canvas)
	if err != nil {
		slog.Error("Design generation failed", "error", err)
		return nil, fmt.Errorf("画像の生成に失敗しました: %w", err)
	}

	published, err := dr.publisher.Publish(ctx, runDir, runID, generated)
	if err != nil {
		slog.Error("Failed to save images", "error", err)
		return nil, fmt.Errorf("画像の保存に失敗しました: %w", err)
	}

	return &DesignResult{RunID: runID, Generated: generated, Published: published}, nil
}
