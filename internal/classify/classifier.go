package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"stubdoc/internal/helptext"
)

// maxDocLength bounds the documentation excerpt sent per class, keeping
// prompts inside the model's token budget.
const maxDocLength = 2000

// Classification is the model's verdict for one class.
type Classification struct {
	Synopsis     string `json:"synopsis"`
	ActionPhrase string `json:"action_phrase"`
	Role         string `json:"role"`
	Visibility   string `json:"visibility"`
}

// Classifier assigns role and visibility labels to VTK classes using Gemini
// text generation. Requests are throttled by a shared rate limiter.
type Classifier struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
}

// NewClassifier creates a classifier. requestsPerMinute bounds the request
// rate across all concurrent workers.
func NewClassifier(ctx context.Context, apiKey, modelName string, requestsPerMinute int) (*Classifier, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("classification requires an API key")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}
	return &Classifier{
		client:  client,
		model:   modelName,
		limiter: rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 1),
	}, nil
}

// ClassifyClass classifies one class from its documentation. Classes without
// documentation are skipped and return nil without error.
func (c *Classifier) ClassifyClass(ctx context.Context, className, classDoc string) (*Classification, error) {
	if strings.TrimSpace(classDoc) == "" {
		return nil, nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	prompt := buildPrompt(className, classDoc)
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("classification of %s failed: %w", className, err)
	}

	return parseClassification(resp.Text())
}

// ClassifyModule classifies every documented class in docs, running up to
// maxConcurrent requests in flight. Per-class failures are dropped from the
// result rather than failing the module.
func (c *Classifier) ClassifyModule(ctx context.Context, docs map[string]*helptext.ClassDoc, maxConcurrent int) (map[string]*Classification, error) {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	var mu sync.Mutex
	results := make(map[string]*Classification)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)

	for name, doc := range docs {
		g.Go(func() error {
			cls, err := c.ClassifyClass(gctx, name, doc.Description)
			if err != nil {
				if gctx.Err() != nil {
					return err
				}
				return nil
			}
			if cls != nil {
				mu.Lock()
				results[name] = cls
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func buildPrompt(className, classDoc string) string {
	if len(classDoc) > maxDocLength {
		classDoc = classDoc[:maxDocLength] + "..."
	}

	var roles strings.Builder
	for _, label := range RoleLabels {
		fmt.Fprintf(&roles, "   - %s: %s\n", label, RoleDescriptions[label])
	}
	var visibilities strings.Builder
	for _, label := range VisibilityLabels {
		fmt.Fprintf(&visibilities, "   - %s: %s\n", label, VisibilityDescriptions[label])
	}

	return fmt.Sprintf(`You are classifying VTK (Visualization Toolkit) classes for documentation.

Given a VTK class name and its documentation, return a JSON object with these four fields:

1. "synopsis": A single sentence (max 20 words) summarizing what the class does.
   - Do not start with the class name or "This class" or "A class that"
   - Start directly with what it does

2. "action_phrase": A noun-phrase (max 5 words) describing the primary action.
   - Examples: "mesh smoothing", "file reading", "color mapping", "volume rendering"

3. "role": One of the following role labels that best describes the class:
%s
4. "visibility": How likely users are to mention this class in prompts:
%s
Class: %s

Documentation:
%s

Respond with only the JSON object, no other text:`, roles.String(), visibilities.String(), className, classDoc)
}

// parseClassification decodes the model output, tolerating markdown code
// fences, and rejects labels outside the closed sets.
func parseClassification(text string) (*Classification, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	var cls Classification
	if err := json.Unmarshal([]byte(text), &cls); err != nil {
		return nil, fmt.Errorf("failed to parse classification response: %w", err)
	}
	if !ValidRole(cls.Role) {
		return nil, fmt.Errorf("unknown role label: %s", cls.Role)
	}
	if !ValidVisibility(cls.Visibility) {
		return nil, fmt.Errorf("unknown visibility label: %s", cls.Visibility)
	}
	return &cls, nil
}
