package adapters

import (
	"context"
	"time"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

// AIClient は Gemini クライアントのうち、画像生成と File API の操作を抽象化します。
// gemini.GenerativeModel はこのインターフェースを満たします。
type AIClient interface {
	GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error)
	UploadFile(ctx context.Context, data []byte, mimeType, displayName string) (uri string, name string, err error)
	DeleteFile(ctx context.Context, name string) error
}

// ImageCacher は File API の参照情報をキャッシュするためのインターフェースです。
// *cache.Cache (patrickmn/go-cache) はこのインターフェースを満たします。
type ImageCacher interface {
	Get(key string) (any, bool)
	Set(key string, value any, d time.Duration)
	Delete(key string)
}
