package config

import (
	"time"
)

// デフォルト値の定義
const (
	DefaultImageModel         = "gemini-3-pro-image-preview"
	DefaultRateInterval       = 10 * time.Second
	DefaultCacheTTL           = 1 * time.Hour
	DefaultCompressionQuality = 75
)

// Config は Go Mascot Kit の各 Runner を動作させるための基本設定です。
type Config struct {
	// --- Google AI (Gemini API) Settings ---
	GeminiAPIKey string
	ImageModel   string

	// --- Generation Settings ---
	RateInterval         time.Duration
	ConcurrentVariations bool // ストーリーとマスコットを並行で生成する

	// --- Reference Image Settings ---
	UseCompression     bool
	CompressionQuality int
	CacheTTL           time.Duration
}

// DefaultConfig は推奨されるデフォルト設定を返すヘルパー関数です。
func DefaultConfig() Config {
	return Config{
		ImageModel:         DefaultImageModel,
		RateInterval:       DefaultRateInterval,
		UseCompression:     true,
		CompressionQuality: DefaultCompressionQuality,
		CacheTTL:           DefaultCacheTTL,
	}
}

// WithDefaults はゼロ値のフィールドをデフォルト値で補完した Config を返します。
func (c Config) WithDefaults() Config {
	def := DefaultConfig()
	if c.ImageModel == "" {
		c.ImageModel = def.ImageModel
	}
	if c.RateInterval <= 0 {
		c.RateInterval = def.RateInterval
	}
	if c.CompressionQuality <= 0 || c.CompressionQuality > 100 {
		c.CompressionQuality = def.CompressionQuality
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = def.CacheTTL
	}
	return c
}
