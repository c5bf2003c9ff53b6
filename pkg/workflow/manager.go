package workflow

import (
	"context"
	"fmt"
	"io"

	"github.com/patrickmn/go-cache"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"

	"github.com/shouni/go-mascot-kit/pkg/adapters"
	"github.com/shouni/go-mascot-kit/pkg/config"
	"github.com/shouni/go-mascot-kit/pkg/domain"
	"github.com/shouni/go-mascot-kit/pkg/generator"
	"github.com/shouni/go-mascot-kit/pkg/parser"
	"github.com/shouni/go-mascot-kit/pkg/prompts"
	"github.com/shouni/go-mascot-kit/pkg/publisher"
	"github.com/shouni/go-mascot-kit/pkg/runner"
)

// 静的な型チェック
var _ Workflow = (*Manager)(nil)

// Manager は、ワークフローの各工程を担う Runner 群を構築・管理します。
type Manager struct {
	cfg      config.Config
	canvas   domain.CanvasRules
	designer *prompts.CharacterDesigner
	parser   *parser.ConceptParser
	writer   publisher.OutputWriter
	aiClient adapters.AIClient // nil の場合は BuildDesignRunner で作成する
}

// New は、設定と依存関係を基に新しい Manager を初期化します。
// AI クライアントは画像生成が必要になるまで作成しません。
func New(args ManagerArgs) (*Manager, error) {
	if args.HTTPClient == nil {
		return nil, fmt.Errorf("httpClient は必須です")
	}
	if args.Reader == nil {
		return nil, fmt.Errorf("InputReader は必須です")
	}
	if args.Writer == nil {
		return nil, fmt.Errorf("OutputWriter は必須です")
	}

	cfg := args.Config.WithDefaults()
	canvas := args.Canvas
	if canvas == (domain.CanvasRules{}) {
		canvas = domain.DefaultCanvas
	}

	designer, err := prompts.NewCharacterDesigner(prompts.WithCanvas(canvas))
	if err != nil {
		return nil, err
	}

	return &Manager{
		cfg:      cfg,
		canvas:   canvas,
		designer: designer,
		parser:   parser.NewConceptParser(args.Reader, args.HTTPClient),
		writer:   args.Writer,
		aiClient: args.AIClient,
	}, nil
}

// initializeAIClient は gemini クライアントを初期化します。
func initializeAIClient(ctx context.Context, apiKey string) (gemini.GenerativeModel, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY が設定されていません")
	}
	clientConfig := gemini.Config{
		APIKey:      apiKey,
		Temperature: genai.Ptr(defaultGeminiTemperature),
	}
	aiClient, err := gemini.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return aiClient, nil
}

// BuildDesignRunner は画像生成から保存までを行う DesignRunner を構築します。
func (m *Manager) BuildDesignRunner(ctx context.Context) (DesignRunner, error) {
	if m.aiClient == nil {
		aiClient, err := initializeAIClient(ctx, m.cfg.GeminiAPIKey)
		if err != nil {
			return nil, err
		}
		m.aiClient = aiClient
	}

	imageGen, err := adapters.NewGeminiImageGenerator(
		m.aiClient,
		cache.New(m.cfg.CacheTTL, cacheCleanupInterval),
		m.cfg,
		adapters.WithAspectRatio(m.canvas.Aspect),
	)
	if err != nil {
		return nil, fmt.Errorf("画像生成エンジンの初期化に失敗しました: %w", err)
	}

	images, err := generator.NewCharacterImages(
		imageGen,
		generator.WithDesigner(m.designer),
		generator.WithConcurrentVariations(m.cfg.ConcurrentVariations),
	)
	if err != nil {
		return nil, fmt.Errorf("オーケストレーターの初期化に失敗しました: %w", err)
	}

	pub, err := publisher.NewMascotPublisher(m.writer)
	if err != nil {
		return nil, fmt.Errorf("パブリッシャーの初期化に失敗しました: %w", err)
	}

	return runner.NewMascotDesignRunner(images, pub, imageGen, m.canvas)
}

// BuildPromptRunner はプロンプトを out に出力する PromptRunner を構築します。
func (m *Manager) BuildPromptRunner(out io.Writer) (PromptRunner, error) {
	return runner.NewMascotPromptRunner(m.designer, out)
}

// LoadConcept は path からキャラクター定義を読み込みます。
func (m *Manager) LoadConcept(ctx context.Context, path string) (domain.BusinessConcept, error) {
	return m.parser.ParseFromPath(ctx, path)
}
