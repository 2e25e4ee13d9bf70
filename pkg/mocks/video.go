package mocks

import (
	"context"
	"sync"

	"github.com/user/trailclean/pkg/ports"
)

// VideoProcessor is a mock implementation of ports.VideoProcessor.
type VideoProcessor struct {
	VerifyFunc        func() error
	ProbeFunc         func(ctx context.Context, path string) (ports.VideoInfo, error)
	ExtractFramesFunc func(ctx context.Context, path, dir, pattern string) error
	AssembleVideoFunc func(ctx context.Context, req ports.AssembleRequest) error

	mu sync.Mutex

	// Recorded calls for verification
	VerifyCalled     bool
	ProbeCalls       []string
	ExtractCalls     []ExtractCall
	AssembleRequests []ports.AssembleRequest
}

// ExtractCall records a call to ExtractFrames.
type ExtractCall struct {
	Path    string
	Dir     string
	Pattern string
}

func (m *VideoProcessor) Verify() error {
	m.mu.Lock()
	m.VerifyCalled = true
	m.mu.Unlock()
	if m.VerifyFunc != nil {
		return m.VerifyFunc()
	}
	return nil
}

func (m *VideoProcessor) Probe(ctx context.Context, path string) (ports.VideoInfo, error) {
	m.mu.Lock()
	m.ProbeCalls = append(m.ProbeCalls, path)
	m.mu.Unlock()
	if m.ProbeFunc != nil {
		return m.ProbeFunc(ctx, path)
	}
	return ports.VideoInfo{FrameRate: ports.FrameRate{Num: 30, Den: 1}}, nil
}

func (m *VideoProcessor) ExtractFrames(ctx context.Context, path, dir, pattern string) error {
	m.mu.Lock()
	m.ExtractCalls = append(m.ExtractCalls, ExtractCall{Path: path, Dir: dir, Pattern: pattern})
	m.mu.Unlock()
	if m.ExtractFramesFunc != nil {
		return m.ExtractFramesFunc(ctx, path, dir, pattern)
	}
	return nil
}

func (m *VideoProcessor) AssembleVideo(ctx context.Context, req ports.AssembleRequest) error {
	m.mu.Lock()
	m.AssembleRequests = append(m.AssembleRequests, req)
	m.mu.Unlock()
	if m.AssembleVideoFunc != nil {
		return m.AssembleVideoFunc(ctx, req)
	}
	return nil
}

var _ ports.VideoProcessor = (*VideoProcessor)(nil)
