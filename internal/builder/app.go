package builder

import (
	"context"
	"fmt"
	"time"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"
	"github.com/shouni/go-remote-io/pkg/remoteio"

	"github.com/shouni/go-mascot-kit/internal/config"
	"github.com/shouni/go-mascot-kit/pkg/workflow"
)

// AppContext は、アプリケーション実行に必要な共通コンテキストを保持するのだ。
// これを各コマンドに渡すことで、依存関係の注入を簡素化するのだ。
type AppContext struct {
	Config   *config.Config         // Config は、環境変数から読み込まれたグローバルな設定なのだ。
	Options  config.GenerateOptions // Options は、コマンドラインから渡された実行時の設定なのだ。
	Reader   remoteio.InputReader   // Reader は、キャラクター定義の読み込みに使用する入力元なのだ。
	Writer   remoteio.OutputWriter  // Writer は、生成された画像を保存するための出力先なのだ。
	Workflow workflow.Workflow      // Workflow は、各 Runner を構築するのだ。
}

// NewAppContext は、設定からクライアント群を初期化して AppContext を返すのだ。
// GCS のクライアントはローカルパスの読み書きにも使われるのだ。
func NewAppContext(ctx context.Context, cfg *config.Config) (*AppContext, error) {
	httpClient := httpkit.New(httpTimeout(cfg.Options))

	gcsFactory, err := gcsfactory.NewGCSClientFactory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client factory: %w", err)
	}
	reader, err := gcsFactory.NewInputReader()
	if err != nil {
		return nil, err
	}
	writer, err := gcsFactory.NewOutputWriter()
	if err != nil {
		return nil, err
	}

	mgr, err := workflow.New(workflow.ManagerArgs{
		Config:     cfg.KitConfig(),
		HTTPClient: httpClient,
		Reader:     reader,
		Writer:     writer,
	})
	if err != nil {
		return nil, fmt.Errorf("ワークフローの初期化に失敗したのだ: %w", err)
	}

	return &AppContext{
		Config:   cfg,
		Options:  cfg.Options,
		Reader:   reader,
		Writer:   writer,
		Workflow: mgr,
	}, nil
}

func httpTimeout(opts config.GenerateOptions) time.Duration {
	if opts.HTTPTimeout > 0 {
		return opts.HTTPTimeout
	}
	return config.DefaultHTTPTimeout
}
