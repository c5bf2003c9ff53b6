package runner

import (
	"context"

	"github.com/shouni/go-mascot-kit/pkg/domain"
	"github.com/shouni/go-mascot-kit/pkg/generator"
	"github.com/shouni/go-mascot-kit/pkg/publisher"
)

type mockImages struct {
	res        *generator.Result
	err        error
	lastCanvas domain.CanvasRules
}

func (m *mockImages) Execute(ctx context.Context, concept domain.BusinessConcept, canvas domain.CanvasRules) (*generator.Result, error) {
	m.lastCanvas = canvas
	if m.err != nil {
		return nil, m.err
	}
	return m.res, nil
}

type mockPublisher struct {
	called    bool
	outputDir string
	runID     string
	err       error
}

func (m *mockPublisher) Publish(ctx context.Context, outputDir, runID string, res *generator.Result) (*publisher.PublishResult, error) {
	m.called = true
	m.outputDir, m.runID = outputDir, runID
	if m.err != nil {
		return nil, m.err
	}
	return &publisher.PublishResult{OutputDir: outputDir}, nil
}

type mockCleaner struct {
	count int
	err   error
}

func (m *mockCleaner) Cleanup(ctx context.Context) error {
	m.count++
	return m.err
}
