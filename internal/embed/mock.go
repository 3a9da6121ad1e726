package embed

import (
	"context"
	"hash/fnv"
	"math"
	"sync"
)

const mockDims = 128

// MockEmbedder is a deterministic Embedder for testing. Identical texts
// always map to identical vectors, and fixtures can pin exact vectors per
// text to stage duplicate scenarios.
type MockEmbedder struct {
	mu      sync.Mutex
	vectors map[string][]float32
	Calls   int
}

// NewMockEmbedder creates a MockEmbedder.
func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{vectors: make(map[string][]float32)}
}

// SetVector pins the vector returned for an exact text.
func (m *MockEmbedder) SetVector(text string, v []float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vectors[text] = v
}

func (m *MockEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	return m.vector(text), nil
}

func (m *MockEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = m.vector(t)
	}
	return out, nil
}

func (m *MockEmbedder) ModelName() string { return "mock-embedder" }

func (m *MockEmbedder) Dims() int { return mockDims }

// vector derives a unit-ish vector from the text hash. Distinct texts land
// far apart with overwhelming probability at this dimensionality.
func (m *MockEmbedder) vector(text string) []float32 {
	if v, ok := m.vectors[text]; ok {
		return v
	}

	h := fnv.New64a()
	h.Write([]byte(text))
	seed := h.Sum64()

	v := make([]float32, mockDims)
	var norm float64
	for i := range v {
		seed = seed*6364136223846793005 + 1442695040888963407 // LCG step
		// Signed components keep the expected similarity of unrelated
		// texts near zero instead of biasing it positive.
		v[i] = float32(int64(seed>>20)%2001-1000) / 1000
		norm += float64(v[i]) * float64(v[i])
	}
	// Normalize so self-similarity is exactly 1 under cosine.
	if norm > 0 {
		scale := float32(1 / math.Sqrt(norm))
		for i := range v {
			v[i] *= scale
		}
	}
	return v
}
