package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-mascot-kit/examples"
	"github.com/shouni/go-mascot-kit/internal/builder"
	"github.com/shouni/go-mascot-kit/internal/config"
	"github.com/shouni/go-mascot-kit/pkg/domain"
)

// checkConceptSource は --concept か --example のどちらかが指定されているかを確認するのだ。
func checkConceptSource() error {
	if opts.ConceptFile == "" && !opts.UseExample {
		return fmt.Errorf("--concept でキャラクター定義を指定するか、--example でサンプルを使うのだ")
	}
	return nil
}

// loadConcept はフラグに応じてキャラクター定義を読み込むのだ。
func loadConcept(ctx context.Context, appCtx *builder.AppContext) (domain.BusinessConcept, error) {
	if opts.UseExample {
		slog.Info("組み込みのサンプル定義を使うのだ")
		return examples.LoadConcept()
	}
	return appCtx.Workflow.LoadConcept(ctx, opts.ConceptFile)
}

// loadAppConfig は .env と環境変数を読み込み、フラグの値を載せた設定を返すのだ。
func loadAppConfig() *config.Config {
	cfg := config.LoadConfig()
	cfg.Options = opts
	return cfg
}

// newAppContext は環境変数とフラグから AppContext を作るのだ。
func newAppContext(ctx context.Context) (*builder.AppContext, error) {
	return builder.NewAppContext(ctx, loadAppConfig())
}
