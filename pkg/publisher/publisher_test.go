package publisher

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/go-mascot-kit/pkg/domain"
	"github.com/shouni/go-mascot-kit/pkg/generator"
)

type writtenFile struct {
	data        []byte
	contentType string
}

type mockWriter struct {
	mu    sync.Mutex
	files map[string]writtenFile
	err   error
}

func (m *mockWriter) Write(ctx context.Context, path string, r io.Reader, contentType string) error {
	if m.err != nil {
		return m.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.files == nil {
		m.files = make(map[string]writtenFile)
	}
	m.files[path] = writtenFile{data: data, contentType: contentType}
	return nil
}

var (
	pngHeader  = []byte("\x89PNG\r\n\x1a\n0000")
	jpegHeader = []byte("\xff\xd8\xff\xe0000")
)

func sampleResult() *generator.Result {
	return &generator.Result{
		BaseImage:         base64.StdEncoding.EncodeToString(pngHeader),
		StorytellingImage: base64.StdEncoding.EncodeToString(pngHeader),
		MascotImage:       base64.StdEncoding.EncodeToString(jpegHeader),
		BusinessConcept:   domain.CreateCharacterDesign(),
		Prompts:           generator.Prompts{Base: "b", Storytelling: "s", Mascot: "m"},
	}
}

func TestNewMascotPublisher(t *testing.T) {
	_, err := NewMascotPublisher(nil)
	assert.Error(t, err)
}

func TestMascotPublisher_Publish(t *testing.T) {
	w := &mockWriter{}
	p, err := NewMascotPublisher(w)
	require.NoError(t, err)
	p.now = func() time.Time { return time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC) }

	res, err := p.Publish(context.Background(), "gs://bucket/out/run-1", "run-1", sampleResult())
	require.NoError(t, err)

	assert.Equal(t, "gs://bucket/out/run-1/base-reference.png", res.ImagePaths["base"])
	assert.Equal(t, "gs://bucket/out/run-1/storytelling.png", res.ImagePaths["storytelling"])
	assert.Equal(t, "gs://bucket/out/run-1/mascot.jpg", res.ImagePaths["mascot"], "拡張子は実データに合わせる")
	assert.Equal(t, "gs://bucket/out/run-1/prompts.json", res.ManifestPath)

	base := w.files[res.ImagePaths["base"]]
	assert.Equal(t, pngHeader, base.data)
	assert.Equal(t, "image/png", base.contentType)

	var m Manifest
	require.NoError(t, json.Unmarshal(w.files[res.ManifestPath].data, &m))
	assert.Equal(t, "run-1", m.RunID)
	assert.Equal(t, "Stealth Slurp", m.BusinessConcept.BusinessName)
	assert.Equal(t, "m", m.Prompts.Mascot)
	assert.Len(t, m.Images, 3)
	assert.True(t, m.GeneratedAt.Equal(time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)))
}

func TestMascotPublisher_PublishErrors(t *testing.T) {
	t.Run("結果が nil", func(t *testing.T) {
		p, _ := NewMascotPublisher(&mockWriter{})
		_, err := p.Publish(context.Background(), "out", "id", nil)
		assert.Error(t, err)
	})

	t.Run("Base64 でないハンドル", func(t *testing.T) {
		p, _ := NewMascotPublisher(&mockWriter{})
		res := sampleResult()
		res.MascotImage = "not base64 !!"
		_, err := p.Publish(context.Background(), "out", "id", res)
		assert.ErrorContains(t, err, "mascot")
	})

	t.Run("書き込みエラーは伝播すること", func(t *testing.T) {
		writeErr := errors.New("permission denied")
		p, _ := NewMascotPublisher(&mockWriter{err: writeErr})
		_, err := p.Publish(context.Background(), "out", "id", sampleResult())
		assert.ErrorIs(t, err, writeErr)
	})
}
