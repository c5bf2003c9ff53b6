package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/go-mascot-kit/internal/config"
)

// setOpts はテスト中だけフラグの値を差し替えるのだ。
func setOpts(t *testing.T, o config.GenerateOptions) {
	t.Helper()
	saved := opts
	opts = o
	t.Cleanup(func() { opts = saved })
}

// unsetAPIKey は GEMINI_API_KEY を未設定の状態にするのだ。
// godotenv は既存の環境変数を上書きしないので、空文字ではなく未設定にする必要があるのだ。
func unsetAPIKey(t *testing.T) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")
	require.NoError(t, os.Unsetenv("GEMINI_API_KEY"))
}

func TestDesignCmd_APIKey(t *testing.T) {
	t.Run(".env にだけ書かれた API キーでもキー確認を通過すること", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultEnvFile), []byte("GEMINI_API_KEY=key-from-dotenv\n"), 0o600))
		unsetAPIKey(t)
		t.Chdir(dir)
		setOpts(t, config.GenerateOptions{})

		cfg := loadAppConfig()
		assert.Equal(t, "key-from-dotenv", cfg.GeminiAPIKey)
		require.NoError(t, requireAPIKey(cfg))

		// キー確認の次にある定義元の確認で止まるのだ
		err := designCmd.RunE(designCmd, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--concept")
		assert.NotContains(t, err.Error(), "GEMINI_API_KEY")
	})

	t.Run("API キーがどこにもない場合はエラーになること", func(t *testing.T) {
		unsetAPIKey(t)
		t.Chdir(t.TempDir())
		setOpts(t, config.GenerateOptions{UseExample: true})

		err := designCmd.RunE(designCmd, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GEMINI_API_KEY")
	})
}

func TestCheckConceptSource(t *testing.T) {
	tests := []struct {
		name    string
		opts    config.GenerateOptions
		wantErr bool
	}{
		{"どちらも未指定", config.GenerateOptions{}, true},
		{"--example", config.GenerateOptions{UseExample: true}, false},
		{"--concept", config.GenerateOptions{ConceptFile: "concept.json"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setOpts(t, tt.opts)
			err := checkConceptSource()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPreRunAppE(t *testing.T) {
	setOpts(t, config.GenerateOptions{ConceptFile: "concept.json", UseExample: true})
	assert.Error(t, preRunAppE(promptCmd, nil))
}

func TestPromptCmd(t *testing.T) {
	run := func(t *testing.T, o config.GenerateOptions) (string, error) {
		t.Helper()
		setOpts(t, o)
		var out bytes.Buffer
		promptCmd.SetOut(&out)
		t.Cleanup(func() { promptCmd.SetOut(nil) })
		err := promptCmd.RunE(promptCmd, nil)
		return out.String(), err
	}

	t.Run("--example でサンプルのプロンプトを表示すること", func(t *testing.T) {
		out, err := run(t, config.GenerateOptions{UseExample: true, Variation: "secret_agent"})
		require.NoError(t, err)
		assert.Contains(t, out, "red-panda ninja")
		assert.Contains(t, out, "SECRET AGENT")
	})

	t.Run("定義元が未指定ならエラーになること", func(t *testing.T) {
		_, err := run(t, config.GenerateOptions{Variation: "base"})
		assert.Error(t, err)
	})

	t.Run("--list は定義元なしで一覧を表示すること", func(t *testing.T) {
		out, err := run(t, config.GenerateOptions{List: true})
		require.NoError(t, err)
		assert.Contains(t, out, "storytelling")
	})

	t.Run("不正なバリエーションはエラーになること", func(t *testing.T) {
		_, err := run(t, config.GenerateOptions{UseExample: true, Variation: "poster"})
		assert.Error(t, err)
	})
}
