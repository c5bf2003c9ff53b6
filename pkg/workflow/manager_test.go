package workflow

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/shouni/go-mascot-kit/pkg/config"
	"github.com/shouni/go-mascot-kit/pkg/domain"
	"github.com/shouni/go-mascot-kit/pkg/prompts"
)

// --- Mocks ---

type mockAIClient struct {
	mu        sync.Mutex
	generated int
	aspects   []string
	deleted   []string
}

func (m *mockAIClient) GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generated++
	m.aspects = append(m.aspects, opts.AspectRatio)
	return &gemini.Response{
		RawResponse: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{
					Parts: []*genai.Part{{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte("\x89PNG\r\n\x1a\nfake")}}},
				},
			}},
		},
	}, nil
}

func (m *mockAIClient) UploadFile(ctx context.Context, data []byte, mimeType, displayName string) (string, string, error) {
	return "https://gemini.api/files/base", "files/base", nil
}

func (m *mockAIClient) DeleteFile(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, name)
	return nil
}

type mockReader struct {
	files map[string]string
}

func (m *mockReader) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	content, ok := m.files[uri]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", uri)
	}
	return io.NopCloser(strings.NewReader(content)), nil
}

type mockHTTPClient struct{}

func (m *mockHTTPClient) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	return nil, fmt.Errorf("network disabled")
}

type mockWriter struct {
	mu    sync.Mutex
	paths []string
}

func (m *mockWriter) Write(ctx context.Context, path string, r io.Reader, contentType string) error {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paths = append(m.paths, path)
	return nil
}

func testArgs(ai *mockAIClient, w *mockWriter) ManagerArgs {
	cfg := config.DefaultConfig()
	cfg.RateInterval = time.Millisecond
	args := ManagerArgs{
		Config:     cfg,
		HTTPClient: &mockHTTPClient{},
		Reader: &mockReader{files: map[string]string{
			"concept.yaml": "business_name: Moon Bakery\nbusiness_type: Bakery\ncharacter_description: owl\nkeywords: [owl]\nsecret_agent_name: Agent Crumb\ncolor_palette: {primary: navy, secondary: cream, accent: gold}\n",
		}},
		Writer: w,
	}
	if ai != nil {
		args.AIClient = ai
	}
	return args
}

// --- Tests ---

func TestNew(t *testing.T) {
	t.Run("必須の依存関係が欠けている場合はエラー", func(t *testing.T) {
		args := testArgs(nil, &mockWriter{})
		args.Writer = nil
		_, err := New(args)
		assert.Error(t, err)
	})

	t.Run("不正なキャンバスはエラー", func(t *testing.T) {
		args := testArgs(nil, &mockWriter{})
		args.Canvas = domain.CanvasRules{Aspect: "16:9"}
		_, err := New(args)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestManager_LoadConceptAndPrompt(t *testing.T) {
	m, err := New(testArgs(nil, &mockWriter{}))
	require.NoError(t, err)

	concept, err := m.LoadConcept(context.Background(), "concept.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Moon Bakery", concept.BusinessName)

	var out bytes.Buffer
	pr, err := m.BuildPromptRunner(&out)
	require.NoError(t, err)
	require.NoError(t, pr.Run(concept, prompts.VariationSecretAgent))
	assert.Contains(t, out.String(), "Agent Crumb")
}

func TestManager_BuildDesignRunner(t *testing.T) {
	t.Run("API キーも AI クライアントもない場合はエラー", func(t *testing.T) {
		m, err := New(testArgs(nil, &mockWriter{}))
		require.NoError(t, err)
		_, err = m.BuildDesignRunner(context.Background())
		assert.Error(t, err)
	})

	t.Run("生成から保存まで一通り実行できること", func(t *testing.T) {
		ai := &mockAIClient{}
		w := &mockWriter{}
		m, err := New(testArgs(ai, w))
		require.NoError(t, err)

		dr, err := m.BuildDesignRunner(context.Background())
		require.NoError(t, err)

		res, err := dr.Run(context.Background(), domain.CreateCharacterDesign(), "gs://bucket/out")
		require.NoError(t, err)

		assert.Equal(t, 3, ai.generated)
		for _, a := range ai.aspects {
			assert.Equal(t, domain.DefaultCanvas.Aspect, a, "アスペクト比はキャンバスから渡される")
		}
		assert.Equal(t, []string{"files/base"}, ai.deleted, "アップロードしたベース画像は実行後に削除される")
		assert.Len(t, w.paths, 4, "画像3枚とマニフェスト")
		assert.Equal(t, res.Published.ManifestPath, w.paths[3])
	})
}
