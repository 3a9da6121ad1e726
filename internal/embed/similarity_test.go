package embed

import (
	"context"
	"math"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name      string
		a, b      []float32
		expected  float64
		tolerance float64
	}{
		{"identical vectors", []float32{1, 0, 0}, []float32{1, 0, 0}, 1.0, 1e-9},
		{"orthogonal vectors", []float32{1, 0, 0}, []float32{0, 1, 0}, 0.0, 1e-9},
		{"opposite vectors", []float32{1, 0, 0}, []float32{-1, 0, 0}, -1.0, 1e-9},
		{"similar vectors", []float32{1, 1, 0}, []float32{1, 0, 0}, 1 / math.Sqrt2, 1e-6},
		{"length mismatch", []float32{1, 0}, []float32{1, 0, 0}, 0, 0},
		{"zero vector", []float32{0, 0, 0}, []float32{1, 0, 0}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.expected) > tt.tolerance {
				t.Errorf("CosineSimilarity = %f, want %f", got, tt.expected)
			}
		})
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	original := []float32{0.1, 0.2, -0.5, 1.0, 0}
	unpacked := Unpack(Pack(original))
	if len(unpacked) != len(original) {
		t.Fatalf("length mismatch: %d vs %d", len(unpacked), len(original))
	}
	for i := range original {
		if unpacked[i] != original[i] {
			t.Errorf("index %d: %f != %f", i, unpacked[i], original[i])
		}
	}
}

func TestMockEmbedder_Deterministic(t *testing.T) {
	m := NewMockEmbedder()
	ctx := context.Background()

	a, err := m.Embed(ctx, "what is the speed of light?")
	if err != nil {
		t.Fatal(err)
	}
	b, err := m.Embed(ctx, "what is the speed of light?")
	if err != nil {
		t.Fatal(err)
	}

	if sim := CosineSimilarity(a, b); math.Abs(sim-1.0) > 1e-6 {
		t.Errorf("self-similarity = %f, want 1.0", sim)
	}

	c, _ := m.Embed(ctx, "who painted the Mona Lisa?")
	if sim := CosineSimilarity(a, c); sim > 0.999 {
		t.Errorf("distinct texts should not be near-identical, got %f", sim)
	}
}

func TestMockEmbedder_PinnedVectors(t *testing.T) {
	m := NewMockEmbedder()
	m.SetVector("a", []float32{1, 0})
	m.SetVector("b", []float32{1, 0})

	vecs, err := m.EmbedBatch(context.Background(), []string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}
	if sim := CosineSimilarity(vecs[0], vecs[1]); sim != 1.0 {
		t.Errorf("pinned duplicates should score 1.0, got %f", sim)
	}
}

func TestMockEmbedder_BatchOrder(t *testing.T) {
	m := NewMockEmbedder()
	ctx := context.Background()

	single, _ := m.Embed(ctx, "second")
	batch, err := m.EmbedBatch(ctx, []string{"first", "second", "third"})
	if err != nil {
		t.Fatal(err)
	}
	if sim := CosineSimilarity(batch[1], single); math.Abs(sim-1.0) > 1e-6 {
		t.Errorf("batch order broken: %f", sim)
	}
}
