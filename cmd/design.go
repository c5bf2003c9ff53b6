package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shouni/go-mascot-kit/internal/builder"
	"github.com/shouni/go-mascot-kit/internal/config"
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "キャラクターのベース画像・4コマ・実写風マスコットを生成するのだ。",
	Long:  "ベース画像を最初に生成し、それを参照してストーリー画像とマスコット画像を作るのだ。生成物とプロンプトは実行ごとのディレクトリに保存されるのだ。",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		// .env の読み込みが終わってから API キーを確認するのだ。
		cfg := loadAppConfig()
		if err := requireAPIKey(cfg); err != nil {
			return err
		}
		if err := checkConceptSource(); err != nil {
			return err
		}

		appCtx, err := builder.NewAppContext(ctx, cfg)
		if err != nil {
			return err
		}

		concept, err := loadConcept(ctx, appCtx)
		if err != nil {
			return fmt.Errorf("キャラクター定義の読み込みに失敗したのだ: %w", err)
		}

		designRunner, err := appCtx.Workflow.BuildDesignRunner(ctx)
		if err != nil {
			return err
		}

		outputDir := opts.OutputDir
		if outputDir == "" {
			outputDir = appCtx.Config.OutputDir
		}

		res, err := designRunner.Run(ctx, concept, outputDir)
		if err != nil {
			return err
		}

		slog.Info("Design generation completed successfully",
			slog.String("run_id", res.RunID),
			slog.String("manifest", res.Published.ManifestPath),
		)

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "\n"+strings.Repeat("✨", 25))
		fmt.Fprintf(out, "🎨 %s のキャラクター画像が完成したのだ (run: %s)\n", concept.BusinessName, res.RunID)
		variations := make([]string, 0, len(res.Published.ImagePaths))
		for v := range res.Published.ImagePaths {
			variations = append(variations, v)
		}
		sort.Strings(variations)
		for _, v := range variations {
			fmt.Fprintf(out, "  - %-12s %s\n", v, res.Published.ImagePaths[v])
		}
		fmt.Fprintf(out, "📝 プロンプト: %s\n", res.Published.ManifestPath)
		fmt.Fprintln(out, strings.Repeat("✨", 25))
		return nil
	},
}

// requireAPIKey は Gemini API の利用に必須な API キーを確認するのだ。
func requireAPIKey(cfg *config.Config) error {
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("エラー: GEMINI_API_KEY が環境変数にも %s にも設定されていません。Gemini APIの利用には必須なのだ", config.DefaultEnvFile)
	}
	return nil
}

func init() {
	designCmd.Flags().StringVarP(&opts.OutputDir, "output-dir", "o", "", "生成物を保存するディレクトリ（ローカル or gs://...）なのだ。未指定なら MASCOT_OUTPUT_DIR を使うのだ。")
	designCmd.Flags().StringVar(&opts.ImageModel, "image-model", "", "使用する Gemini 画像モデル名なのだ。未指定なら IMAGE_GEMINI_MODEL か "+config.DefaultImageModel+" を使うのだ。")
	designCmd.Flags().BoolVar(&opts.Concurrent, "concurrent", false, "ベース画像の後、ストーリーとマスコットを並行で生成するのだ。")
}
