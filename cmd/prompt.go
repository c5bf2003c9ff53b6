package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shouni/go-mascot-kit/examples"
	"github.com/shouni/go-mascot-kit/pkg/domain"
	"github.com/shouni/go-mascot-kit/pkg/prompts"
	"github.com/shouni/go-mascot-kit/pkg/runner"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "画像生成に使うプロンプトを表示するのだ（APIは呼ばないのだ）。",
	RunE: func(cmd *cobra.Command, args []string) error {
		designer, err := prompts.NewCharacterDesigner()
		if err != nil {
			return err
		}
		pr, err := runner.NewMascotPromptRunner(designer, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		if opts.List {
			return pr.List()
		}

		if err := checkConceptSource(); err != nil {
			return err
		}
		variation, err := prompts.ParseVariation(opts.Variation)
		if err != nil {
			return fmt.Errorf("--variation の値が不正なのだ: %w", err)
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		concept, err := promptConcept(ctx)
		if err != nil {
			return fmt.Errorf("キャラクター定義の読み込みに失敗したのだ: %w", err)
		}
		return pr.Run(concept, variation)
	},
}

// promptConcept はサンプル定義の場合、クラウドのクライアントを作らずに読み込むのだ。
func promptConcept(ctx context.Context) (domain.BusinessConcept, error) {
	if opts.UseExample {
		return examples.LoadConcept()
	}
	appCtx, err := newAppContext(ctx)
	if err != nil {
		return domain.BusinessConcept{}, err
	}
	return loadConcept(ctx, appCtx)
}

func init() {
	promptCmd.Flags().StringVarP(&opts.Variation, "variation", "v", string(prompts.VariationBase), "表示するバリエーション（base, icon, storytelling, mascot, secret_agent）なのだ。")
	promptCmd.Flags().BoolVarP(&opts.List, "list", "l", false, "バリエーションの一覧と説明を表示するのだ。")
}
