package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shouni/go-mascot-kit/pkg/domain"
	"github.com/shouni/go-mascot-kit/pkg/prompts"
)

// Prompts は1回の生成で使用したプロンプトテキストです。
type Prompts struct {
	Base         string `json:"base"`
	Storytelling string `json:"storytelling"`
	Mascot       string `json:"mascot"`
}

// Result は CharacterImages.Execute の結果です。
type Result struct {
	BaseImage         string                 `json:"base_image"`
	StorytellingImage string                 `json:"storytelling_image"`
	MascotImage       string                 `json:"mascot_image"`
	BusinessConcept   domain.BusinessConcept `json:"business_concept"`
	Prompts           Prompts                `json:"prompts"`
}

// CharacterImages はベース画像を起点に派生画像を生成するオーケストレーターです。
type CharacterImages struct {
	imageGen   ImageGenerator
	designer   *prompts.CharacterDesigner
	concurrent bool
}

// Option は CharacterImages の設定を変更します。
type Option func(*CharacterImages)

// WithDesigner はプロンプト生成に使う CharacterDesigner を指定します。
func WithDesigner(d *prompts.CharacterDesigner) Option {
	return func(ci *CharacterImages) {
		if d != nil {
			ci.designer = d
		}
	}
}

// WithConcurrentVariations は、ベース画像の生成後にストーリーとマスコットを並行生成するかを指定します。
func WithConcurrentVariations(enabled bool) Option {
	return func(ci *CharacterImages) {
		ci.concurrent = enabled
	}
}

// NewCharacterImages は CharacterImages を生成します。
func NewCharacterImages(imageGen ImageGenerator, opts ...Option) (*CharacterImages, error) {
	if imageGen == nil {
		return nil, fmt.Errorf("imageGen は必須です")
	}
	ci := &CharacterImages{imageGen: imageGen}
	for _, opt := range opts {
		opt(ci)
	}
	if ci.designer == nil {
		d, err := prompts.NewCharacterDesigner()
		if err != nil {
			return nil, err
		}
		ci.designer = d
	}
	return ci, nil
}

// Execute はベース、ストーリー、マスコットの順に画像を生成します。
// concept と canvas は ImageGenerator を呼ぶ前に検証され、違反があれば *domain.ValidationError を返します。
// canvas はデザイナーの設定より優先されます。
// ImageGenerator が返したエラーはラップせずにそのまま返します。
func (ci *CharacterImages) Execute(ctx context.Context, concept domain.BusinessConcept, canvas domain.CanvasRules) (*Result, error) {
	concept, err := domain.NewBusinessConcept(concept)
	if err != nil {
		return nil, err
	}

	designer, err := ci.designerFor(canvas)
	if err != nil {
		return nil, err
	}

	basePrompt, err := designer.BuildPrompt(concept, prompts.VariationBase)
	if err != nil {
		return nil, err
	}
	storyPrompt, err := designer.BuildPrompt(concept, prompts.VariationStorytelling)
	if err != nil {
		return nil, err
	}
	mascotPrompt, err := designer.BuildPrompt(concept, prompts.VariationMascot)
	if err != nil {
		return nil, err
	}

	logger := slog.With("business_name", concept.BusinessName)
	logger.InfoContext(ctx, "Starting base image generation")
	start := time.Now()

	baseImage, err := ci.imageGen.GenerateBaseImage(ctx, basePrompt.Text)
	if err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "Base image generated", "duration", time.Since(start).Round(time.Millisecond))

	res := &Result{
		BaseImage:       baseImage,
		BusinessConcept: concept,
		Prompts: Prompts{
			Base:         basePrompt.Text,
			Storytelling: storyPrompt.Text,
			Mascot:       mascotPrompt.Text,
		},
	}

	if ci.concurrent {
		err = ci.generateConcurrently(ctx, res)
	} else {
		err = ci.generateSequentially(ctx, res)
	}
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Character images generated", "duration", time.Since(start).Round(time.Millisecond))
	return res, nil
}

func (ci *CharacterImages) generateSequentially(ctx context.Context, res *Result) error {
	story, err := ci.imageGen.GenerateStorytellingImage(ctx, res.Prompts.Storytelling, res.BaseImage)
	if err != nil {
		return err
	}
	res.StorytellingImage = story
	slog.InfoContext(ctx, "Variation generated", slog.String("variation", prompts.VariationStorytelling.String()))

	mascot, err := ci.imageGen.GenerateMascotImage(ctx, res.Prompts.Mascot, res.BaseImage)
	if err != nil {
		return err
	}
	res.MascotImage = mascot
	slog.InfoContext(ctx, "Variation generated", slog.String("variation", prompts.VariationMascot.String()))
	return nil
}

// generateConcurrently はストーリーとマスコットを並行で生成し、両方の完了を待ちます。
func (ci *CharacterImages) generateConcurrently(ctx context.Context, res *Result) error {
	var story, mascot string
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		var err error
		story, err = ci.imageGen.GenerateStorytellingImage(egCtx, res.Prompts.Storytelling, res.BaseImage)
		return err
	})
	eg.Go(func() error {
		var err error
		mascot, err = ci.imageGen.GenerateMascotImage(egCtx, res.Prompts.Mascot, res.BaseImage)
		return err
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	res.StorytellingImage, res.MascotImage = story, mascot
	return nil
}

// designerFor は canvas が既存のデザイナーと異なる場合に、新しいデザイナーを作成します。
func (ci *CharacterImages) designerFor(canvas domain.CanvasRules) (*prompts.CharacterDesigner, error) {
	if canvas == ci.designer.Canvas() {
		return ci.designer, nil
	}
	return prompts.NewCharacterDesigner(prompts.WithCanvas(canvas), prompts.WithBaseStyle(ci.designer.BaseStyle()))
}
