package asset

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shouni/go-utils/urlpath"
)

const (
	// DefaultOutputDir は生成物を格納するデフォルトのディレクトリ名です。
	DefaultOutputDir = "output"
	// BaseImageFileName はベースキャラクター画像のファイル名です。
	BaseImageFileName = "base-reference.png"
	// StorytellingImageFileName は4コマ漫画画像のファイル名です。
	StorytellingImageFileName = "storytelling.png"
	// MascotImageFileName は実写風マスコット画像のファイル名です。
	MascotImageFileName = "mascot.png"
	// PromptManifestFileName は使用したプロンプトを記録する JSON のファイル名です。
	PromptManifestFileName = "prompts.json"
)

// ResolveOutputPath は、ベースとなるディレクトリパスとファイル名から、
// GCS/ローカルを考慮した最終的な出力パスを生成します。
func ResolveOutputPath(baseDir, fileName string) (string, error) {
	return urlpath.ResolveOutputPath(baseDir, fileName)
}

// NewRunDir は baseDir 配下に実行ごとの一意なディレクトリパスを生成します。
// runID が空の場合は UUID を採番します。
func NewRunDir(baseDir, runID string) (dir string, id string, err error) {
	if runID == "" {
		runID = uuid.NewString()
	}
	dir, err = urlpath.ResolveOutputPath(baseDir, runID)
	if err != nil {
		return "", "", fmt.Errorf("出力ディレクトリの解決に失敗しました: %w", err)
	}
	return dir, runID, nil
}

// ReplaceExtension はファイル名の拡張子を MIME タイプに応じて置き換えます。
// 未知の MIME タイプの場合はそのまま返します。
func ReplaceExtension(fileName, mimeType string) string {
	ext, ok := preferredExtensions[mimeType]
	if !ok {
		return fileName
	}
	for i := len(fileName) - 1; i >= 0 && fileName[i] != '/'; i-- {
		if fileName[i] == '.' {
			return fileName[:i] + ext
		}
	}
	return fileName + ext
}

var preferredExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}
