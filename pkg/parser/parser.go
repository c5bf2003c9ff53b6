package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/shouni/go-mascot-kit/pkg/domain"
)

// Format はキャラクター定義ファイルの形式です。
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// HTTPClient は URL からデータを取得するためのインターフェースです。
// httpkit.ClientInterface はこのインターフェースを満たします。
type HTTPClient interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// InputReader はローカルファイルや GCS からの読み込みを抽象化します。
// remoteio.InputReader はこのインターフェースを満たします。
type InputReader interface {
	Open(ctx context.Context, uri string) (io.ReadCloser, error)
}

// Parser はキャラクター定義を読み込むためのインターフェースを定義します。
type Parser interface {
	ParseFromPath(ctx context.Context, fullPath string) (domain.BusinessConcept, error)
}

// ConceptParser はローカルファイル、GCS、HTTP(S) からキャラクター定義を読み込みます。
type ConceptParser struct {
	reader     InputReader
	httpClient HTTPClient
}

// NewConceptParser は新しい ConceptParser インスタンスを生成します。
// httpClient が nil の場合、http(s) の URL は読み込めません。
func NewConceptParser(r InputReader, httpClient HTTPClient) *ConceptParser {
	return &ConceptParser{reader: r, httpClient: httpClient}
}

// ParseFromPath は指定されたパスから定義ファイルを読み込み、検証済みの BusinessConcept を返します。
// 形式は拡張子から判定します。
func (p *ConceptParser) ParseFromPath(ctx context.Context, fullPath string) (domain.BusinessConcept, error) {
	format, err := DetectFormat(fullPath)
	if err != nil {
		return domain.BusinessConcept{}, err
	}

	slog.InfoContext(ctx, "キャラクター定義ファイルを読み込んでいます", "path", fullPath, "format", format)
	data, err := p.read(ctx, fullPath)
	if err != nil {
		return domain.BusinessConcept{}, fmt.Errorf("キャラクター定義ファイルの読み込みに失敗しました (%s): %w", fullPath, err)
	}
	return Parse(data, format)
}

func (p *ConceptParser) read(ctx context.Context, fullPath string) ([]byte, error) {
	if isHTTPURL(fullPath) {
		if p.httpClient == nil {
			return nil, fmt.Errorf("HTTP クライアントが設定されていません")
		}
		return p.httpClient.FetchBytes(ctx, fullPath)
	}

	if p.reader == nil {
		return nil, fmt.Errorf("入力リーダーが設定されていません")
	}
	rc, err := p.reader.Open(ctx, fullPath)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Parse は data を指定された形式でデコードし、BusinessConcept として検証します。
func Parse(data []byte, format Format) (domain.BusinessConcept, error) {
	var raw domain.BusinessConcept
	var err error

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&raw)
	case FormatTOML:
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&raw)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&raw)
	default:
		return domain.BusinessConcept{}, fmt.Errorf("未対応の形式です: %q", format)
	}
	if err != nil {
		return domain.BusinessConcept{}, fmt.Errorf("キャラクター定義 (%s) のパースに失敗しました: %w", format, err)
	}

	return domain.NewBusinessConcept(raw)
}

// DetectFormat はパスの拡張子から形式を判定します。URL の場合はクエリを無視します。
func DetectFormat(fullPath string) (Format, error) {
	p := fullPath
	if u, err := url.Parse(fullPath); err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
		p = u.Path
	}

	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("拡張子から形式を判定できません: %q", fullPath)
	}
}

func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
