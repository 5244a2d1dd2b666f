package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/AnmolBudhewar8995/watchtime-booster/shared/config"

	"google.golang.org/genai"
)

// Requests are chunked to stay under the API's per-call content limit.
const embedBatchSize = 100

// GeminiEmbedder produces dense text embeddings via the Gemini API. It
// satisfies the clustering engine's Embedder interface and is constructed
// explicitly so tests can swap in a stub.
type GeminiEmbedder struct {
	client *genai.Client
	model  string
}

func NewGeminiEmbedder(cfg *config.Config) (*GeminiEmbedder, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.AI.GeminiAPIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEmbedder{
		client: client,
		model:  cfg.AI.EmbeddingModel,
	}, nil
}

// Embed returns one vector per input text, in input order.
func (e *GeminiEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, 0, len(texts))

	for start := 0; start < len(texts); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(texts) {
			end = len(texts)
		}

		contents := make([]*genai.Content, 0, end-start)
		for _, text := range texts[start:end] {
			parts := []*genai.Part{genai.NewPartFromText(text)}
			contents = append(contents, genai.NewContentFromParts(parts, genai.RoleUser))
		}

		result, err := e.client.Models.EmbedContent(ctx, e.model, contents, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to embed batch starting at %d: %w", start, err)
		}
		if len(result.Embeddings) != len(contents) {
			return nil, fmt.Errorf("embedding count mismatch: got %d, sent %d", len(result.Embeddings), len(contents))
		}

		for _, emb := range result.Embeddings {
			vectors = append(vectors, emb.Values)
		}
	}

	log.Printf("Embedded %d texts with model %s", len(texts), e.model)
	return vectors, nil
}
