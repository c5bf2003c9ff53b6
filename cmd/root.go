package cmd

import (
	"fmt"

	"github.com/shouni/go-mascot-kit/internal/config"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"
)

// opts はフラグから受け取る実行時パラメータなのだ。
var opts config.GenerateOptions

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- ソース入力関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.ConceptFile, "concept", "c", "", "キャラクター定義ファイル（JSON/TOML/YAML、ローカル or gs:// or https://）なのだ。--example とどちらかが必須なのだ。")
	rootCmd.PersistentFlags().BoolVar(&opts.UseExample, "example", false, "組み込みのサンプル定義（Stealth Slurp）を使うのだ。")
	rootCmd.PersistentFlags().DurationVar(&opts.HTTPTimeout, "http-timeout", config.DefaultHTTPTimeout, "Webリクエストのタイムアウトなのだ。")
}

// preRunAppE は、コマンド実行前の共通チェックを行うのだ。
// API キーのチェックは画像生成を行う design コマンドだけで行うのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	if opts.ConceptFile != "" && opts.UseExample {
		return fmt.Errorf("--concept と --example は同時に指定できないのだ")
	}
	return nil
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	clibase.Execute(
		"mascot-go",
		addAppFlags,
		preRunAppE,
		designCmd,
		promptCmd,
	)
}
