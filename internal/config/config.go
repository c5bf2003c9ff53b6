package config

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shouni/go-utils/envutil"

	kitconfig "github.com/shouni/go-mascot-kit/pkg/config"
)

// デフォルト値の定義なのだ
const (
	DefaultImageModel   = kitconfig.DefaultImageModel
	DefaultHTTPTimeout  = 30 * time.Second
	DefaultRateInterval = kitconfig.DefaultRateInterval
	DefaultOutputDir    = "output"
	DefaultEnvFile      = ".env"
)

// Config はアプリケーション全体の環境設定（APIキーやモデル名）を保持する構造体なのだ。
type Config struct {
	GeminiAPIKey     string
	GeminiImageModel string
	OutputDir        string
	RateInterval     time.Duration
	Concurrent       bool

	Options GenerateOptions
}

// LoadConfig は .env と環境変数から設定を読み込み、構造体を返すのだ！
// .env が存在しない場合は環境変数だけを使うのだ。
func LoadConfig() *Config {
	loadDotEnv(DefaultEnvFile)

	cfg := &Config{
		GeminiAPIKey:     envutil.GetEnv("GEMINI_API_KEY", ""),
		GeminiImageModel: envutil.GetEnv("IMAGE_GEMINI_MODEL", DefaultImageModel),
		OutputDir:        envutil.GetEnv("MASCOT_OUTPUT_DIR", DefaultOutputDir),
		RateInterval:     parseDuration("MASCOT_RATE_INTERVAL", DefaultRateInterval),
		Concurrent:       parseBool("MASCOT_CONCURRENT", false),
	}
	return cfg
}

// KitConfig は CLI の設定をライブラリ側の Config に変換するのだ。
// CLI フラグで指定された値は環境変数より優先されるのだ。
func (c *Config) KitConfig() kitconfig.Config {
	kc := kitconfig.DefaultConfig()
	kc.GeminiAPIKey = c.GeminiAPIKey
	kc.ImageModel = c.GeminiImageModel
	kc.RateInterval = c.RateInterval
	kc.ConcurrentVariations = c.Concurrent

	if c.Options.ImageModel != "" {
		kc.ImageModel = c.Options.ImageModel
	}
	if c.Options.Concurrent {
		kc.ConcurrentVariations = true
	}
	return kc.WithDefaults()
}

func loadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil {
		slog.Debug(".env の読み込みをスキップしたのだ", "path", path, "error", err)
	}
}

func parseDuration(key string, def time.Duration) time.Duration {
	raw := envutil.GetEnv(key, "")
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		slog.Warn("環境変数の値が不正なのでデフォルト値を使うのだ", "key", key, "value", raw)
		return def
	}
	return d
}

func parseBool(key string, def bool) bool {
	raw := envutil.GetEnv(key, "")
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		slog.Warn("環境変数の値が不正なのでデフォルト値を使うのだ", "key", key, "value", raw)
		return def
	}
	return b
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// ソース入力関連
	ConceptFile string // --concept: ローカル / gs:// / https:// のキャラクター定義
	UseExample  bool   // --example: 組み込みの定義を使う

	// 出力関連
	OutputDir string // --output-dir

	// AI挙動設定
	ImageModel string // --image-model
	Concurrent bool   // --concurrent

	// prompt コマンド
	Variation string // --variation
	List      bool   // --list

	// 実行制御
	HTTPTimeout time.Duration // --http-timeout
}
