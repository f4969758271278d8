package gemini

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client wraps the Gemini embedding model used to enrich free-text answers.
type Client struct {
	client *genai.Client
	model  *genai.EmbeddingModel
}

func NewClient(apiKey, embeddingModel string) (*Client, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{
		client: client,
		model:  client.EmbeddingModel(embeddingModel),
	}, nil
}

func (c *Client) Close() {
	c.client.Close()
}

// EmbedText returns the embedding vector for one text field.
func (c *Client) EmbedText(ctx context.Context, text string) ([]float64, error) {
	resp, err := c.model.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("failed to embed content: %w", err)
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, fmt.Errorf("empty embedding response")
	}

	vector := make([]float64, len(resp.Embedding.Values))
	for i, v := range resp.Embedding.Values {
		vector[i] = float64(v)
	}
	return vector, nil
}
