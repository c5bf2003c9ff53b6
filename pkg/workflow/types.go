package workflow

import (
	"context"
	"io"
	"time"

	"github.com/shouni/go-mascot-kit/pkg/adapters"
	"github.com/shouni/go-mascot-kit/pkg/config"
	"github.com/shouni/go-mascot-kit/pkg/domain"
	"github.com/shouni/go-mascot-kit/pkg/parser"
	"github.com/shouni/go-mascot-kit/pkg/prompts"
	"github.com/shouni/go-mascot-kit/pkg/publisher"
	"github.com/shouni/go-mascot-kit/pkg/runner"
)

const (
	defaultGeminiTemperature = float32(0.7)
	cacheCleanupInterval     = 15 * time.Minute
)

// Workflow は、マスコット生成の各工程を担当する Runner を構築するためのインターフェースを定義します。
type Workflow interface {
	BuildDesignRunner(ctx context.Context) (DesignRunner, error)
	BuildPromptRunner(out io.Writer) (PromptRunner, error)
	LoadConcept(ctx context.Context, path string) (domain.BusinessConcept, error)
}

// DesignRunner は、キャラクター定義から画像一式を生成して保存する責務を持ちます。
type DesignRunner interface {
	Run(ctx context.Context, concept domain.BusinessConcept, outputDir string) (*runner.DesignResult, error)
}

// PromptRunner は、ネットワークを使わずにプロンプトを出力する責務を持ちます。
type PromptRunner interface {
	Run(concept domain.BusinessConcept, variation prompts.Variation) error
	List() error
}

// ManagerArgs は Manager の初期化に必要な依存関係です。
type ManagerArgs struct {
	Config     config.Config
	HTTPClient parser.HTTPClient
	Reader     parser.InputReader
	Writer     publisher.OutputWriter
	// AIClient が nil の場合は Config.GeminiAPIKey から新規作成します。
	AIClient adapters.AIClient
	// Canvas がゼロ値の場合は domain.DefaultCanvas を使用します。
	Canvas domain.CanvasRules
}
