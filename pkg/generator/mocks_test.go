package generator

import (
	"context"
	"sync"
)

type imageCall struct {
	Method    string
	Prompt    string
	BaseImage string
}

// stubImageGenerator は固定のハンドルを返し、呼び出しを記録します。
type stubImageGenerator struct {
	mu    sync.Mutex
	calls []imageCall

	baseErr   error
	storyErr  error
	mascotErr error
}

func (s *stubImageGenerator) record(c imageCall) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, c)
}

func (s *stubImageGenerator) Calls() []imageCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]imageCall(nil), s.calls...)
}

func (s *stubImageGenerator) GenerateBaseImage(_ context.Context, prompt string) (string, error) {
	s.record(imageCall{Method: "base", Prompt: prompt})
	if s.baseErr != nil {
		return "", s.baseErr
	}
	return "B", nil
}

func (s *stubImageGenerator) GenerateStorytellingImage(_ context.Context, prompt, baseImage string) (string, error) {
	s.record(imageCall{Method: "storytelling", Prompt: prompt, BaseImage: baseImage})
	if s.storyErr != nil {
		return "", s.storyErr
	}
	return "S", nil
}

func (s *stubImageGenerator) GenerateMascotImage(_ context.Context, prompt, baseImage string) (string, error) {
	s.record(imageCall{Method: "mascot", Prompt: prompt, BaseImage: baseImage})
	if s.mascotErr != nil {
		return "", s.mascotErr
	}
	return "M", nil
}
