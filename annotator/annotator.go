// Package annotator asks a hosted generative model for a short commentary on a
// day of self-tracking inputs.
package annotator

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"text/template"
	"time"

	"github.com/etnz/lifestock"
	"google.golang.org/genai"
)

// DefaultFallbackModel is used when no model is configured and discovery fails.
const DefaultFallbackModel = "gemini-1.5-flash"

// Config holds the annotator settings. It is passed explicitly, the annotator
// never reads the process environment.
type Config struct {
	APIKey        string
	Model         string        // explicit model name, empty to discover one
	FallbackModel string        // used when discovery fails
	Timeout       time.Duration // outbound timeout, 0 means no timeout
}

// models is the subset of genai.Models used by the Annotator.
type models interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	List(ctx context.Context, config *genai.ListModelsConfig) (genai.Page[genai.Model], error)
}

// Annotator produces commentaries with a Gemini model.
type Annotator struct {
	models   models
	model    string
	fallback string

	once     sync.Once
	selected string
}

// New creates an Annotator backed by the Gemini API.
func New(ctx context.Context, cfg Config) (*Annotator, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	})
	if err != nil {
		return nil, fmt.Errorf("error initializing Gemini's client: %w", err)
	}
	return newAnnotator(client.Models, cfg), nil
}

func newAnnotator(m models, cfg Config) *Annotator {
	fallback := cfg.FallbackModel
	if fallback == "" {
		fallback = DefaultFallbackModel
	}
	return &Annotator{models: m, model: cfg.Model, fallback: fallback}
}

// Model returns the model used for generation, discovering it on first call.
func (a *Annotator) Model(ctx context.Context) string {
	a.once.Do(func() {
		if a.model != "" {
			a.selected = a.model
			return
		}
		a.selected = discover(ctx, a.models, a.fallback)
	})
	return a.selected
}

// Annotate returns the commentary for a day of inputs.
//
// Errors are either a *ServiceError or a *TransportError.
func (a *Annotator) Annotate(ctx context.Context, in lifestock.Inputs) (string, error) {
	prompt, err := Prompt(in)
	if err != nil {
		return "", err
	}
	model := a.Model(ctx)
	resp, err := a.models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", classify(err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &ServiceError{Status: http.StatusOK, Body: fmt.Sprintf("no response from model %s", model)}
	}
	text := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
	log.Printf("model %q annotated %d bytes", model, len(text))
	return text, nil
}

var promptTemplate = template.Must(template.New("prompt").Parse(`You are a witty equity analyst covering a single stock: the life of the user.
Here are today's fundamentals:
- spending: {{.Spending}}
- sleep: {{.Sleep}} hours
- study: {{.Study}} hours
- weight: {{.Weight}} kg
- diary: {{printf "%q" .Diary}}

Write a short research note (at most three sentences) with a rating (BUY, HOLD or SELL)
and one concrete piece of advice for tomorrow.`))

// Prompt returns the prompt sent to the model for a day of inputs.
func Prompt(in lifestock.Inputs) (string, error) {
	var b strings.Builder
	if err := promptTemplate.Execute(&b, in); err != nil {
		return "", fmt.Errorf("error executing prompt template: %w", err)
	}
	return b.String(), nil
}
