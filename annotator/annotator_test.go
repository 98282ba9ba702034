package annotator

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/etnz/lifestock"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

// fakeModels is a scripted models implementation.
type fakeModels struct {
	available []*genai.Model
	listErr   error
	listed    int

	reply  *genai.GenerateContentResponse
	genErr error
	model  string // last model asked
	prompt string // last prompt sent
}

func (f *fakeModels) List(ctx context.Context, config *genai.ListModelsConfig) (genai.Page[genai.Model], error) {
	f.listed++
	if f.listErr != nil {
		return genai.Page[genai.Model]{}, f.listErr
	}
	return genai.Page[genai.Model]{Items: f.available}, nil
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	return f.reply, f.genErr
}

func textReply(texts ...string) *genai.GenerateContentResponse {
	resp := &genai.GenerateContentResponse{}
	for _, text := range texts {
		resp.Candidates = append(resp.Candidates, &genai.Candidate{
			Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: text}}},
		})
	}
	return resp
}

func generator(name string) *genai.Model {
	return &genai.Model{Name: "models/" + name, SupportedActions: []string{"countTokens", "generateContent"}}
}

func embedder(name string) *genai.Model {
	return &genai.Model{Name: "models/" + name, SupportedActions: []string{"embedContent"}}
}

var testInputs = lifestock.Inputs{
	Spending: decimal.RequireFromString("42.5"),
	Income:   decimal.Zero,
	Sleep:    decimal.NewFromInt(8),
	Study:    decimal.NewFromInt(3),
	Weight:   decimal.RequireFromString("70.2"),
	Diary:    "finished chapter 4",
}

func TestAnnotate(t *testing.T) {
	f := &fakeModels{reply: textReply("  BUY. Keep studying.\n", "SELL")}
	a := newAnnotator(f, Config{Model: "gemini-test"})

	got, err := a.Annotate(context.Background(), testInputs)
	if err != nil {
		t.Fatalf("Annotate() error = %v", err)
	}
	if want := "BUY. Keep studying."; got != want {
		t.Errorf("Annotate() = %q, want %q", got, want)
	}
	if f.model != "gemini-test" {
		t.Errorf("model = %q, want gemini-test", f.model)
	}
	if f.listed != 0 {
		t.Errorf("explicit model listed models %d times, want 0", f.listed)
	}
	want, _ := Prompt(testInputs)
	if f.prompt != want {
		t.Errorf("prompt = %q, want %q", f.prompt, want)
	}
}

func TestAnnotateErrors(t *testing.T) {
	testCases := []struct {
		name       string
		reply      *genai.GenerateContentResponse
		err        error
		wantStatus int // 0 for a transport error
	}{
		{"api error", nil, genai.APIError{Code: http.StatusTooManyRequests, Message: "quota exceeded"}, http.StatusTooManyRequests},
		{"api error pointer", nil, &genai.APIError{Code: http.StatusForbidden, Message: "bad key"}, http.StatusForbidden},
		{"network", nil, errors.New("dial tcp: no route to host"), 0},
		{"deadline", nil, context.DeadlineExceeded, 0},
		{"no candidate", &genai.GenerateContentResponse{}, nil, http.StatusOK},
		{"nil response", nil, nil, http.StatusOK},
		{"no part", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: &genai.Content{}}}}, nil, http.StatusOK},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := newAnnotator(&fakeModels{reply: tc.reply, genErr: tc.err}, Config{Model: "gemini-test"})
			_, err := a.Annotate(context.Background(), testInputs)
			if err == nil {
				t.Fatal("Annotate() succeeded, want an error")
			}
			var serr *ServiceError
			var terr *TransportError
			switch {
			case tc.wantStatus == 0:
				if !errors.As(err, &terr) {
					t.Fatalf("Annotate() error = %#v, want a *TransportError", err)
				}
				if !errors.Is(err, tc.err) {
					t.Errorf("TransportError does not wrap %v", tc.err)
				}
			case errors.As(err, &serr):
				if serr.Status != tc.wantStatus {
					t.Errorf("ServiceError.Status = %d, want %d", serr.Status, tc.wantStatus)
				}
			default:
				t.Errorf("Annotate() error = %#v, want a *ServiceError", err)
			}
		})
	}
}

func TestModelDiscovery(t *testing.T) {
	testCases := []struct {
		name      string
		available []*genai.Model
		listErr   error
		cfg       Config
		want      string
	}{
		{
			name:      "preferred wins",
			available: []*genai.Model{generator("gemini-1.0-pro"), generator("gemini-1.5-pro"), generator("gemini-2.0-flash")},
			want:      "gemini-2.0-flash",
		},
		{
			name:      "first generator",
			available: []*genai.Model{embedder("text-embedding-004"), generator("gemini-exp"), generator("gemini-other")},
			want:      "gemini-exp",
		},
		{
			name:      "preferred without generation is skipped",
			available: []*genai.Model{embedder("gemini-2.5-flash"), generator("gemini-1.5-pro")},
			want:      "gemini-1.5-pro",
		},
		{
			name:      "nothing generates",
			available: []*genai.Model{embedder("text-embedding-004"), nil},
			want:      DefaultFallbackModel,
		},
		{
			name:    "list failure",
			listErr: errors.New("unauthorized"),
			cfg:     Config{FallbackModel: "gemini-custom"},
			want:    "gemini-custom",
		},
		{
			name:      "explicit model",
			available: []*genai.Model{generator("gemini-2.5-flash")},
			cfg:       Config{Model: "gemini-pinned"},
			want:      "gemini-pinned",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := &fakeModels{available: tc.available, listErr: tc.listErr}
			a := newAnnotator(f, tc.cfg)
			if got := a.Model(context.Background()); got != tc.want {
				t.Errorf("Model() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestModelDiscoveredOnce(t *testing.T) {
	f := &fakeModels{available: []*genai.Model{generator("gemini-2.5-flash")}, reply: textReply("HOLD")}
	a := newAnnotator(f, Config{})
	for range 3 {
		if _, err := a.Annotate(context.Background(), testInputs); err != nil {
			t.Fatalf("Annotate() error = %v", err)
		}
	}
	if f.listed != 1 {
		t.Errorf("models listed %d times, want 1", f.listed)
	}
	if f.model != "gemini-2.5-flash" {
		t.Errorf("model = %q, want gemini-2.5-flash", f.model)
	}
}

func TestNewWithoutAPIKey(t *testing.T) {
	if _, err := New(context.Background(), Config{}); !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("New() error = %v, want %v", err, ErrNoAPIKey)
	}
}

func TestPrompt(t *testing.T) {
	got, err := Prompt(testInputs)
	if err != nil {
		t.Fatalf("Prompt() error = %v", err)
	}
	for _, want := range []string{"spending: 42.5", "sleep: 8 hours", "study: 3 hours", "weight: 70.2 kg", `"finished chapter 4"`, "BUY, HOLD or SELL"} {
		if !strings.Contains(got, want) {
			t.Errorf("Prompt() = %q, does not contain %q", got, want)
		}
	}
}

func TestDescribe(t *testing.T) {
	testCases := []struct {
		err  error
		want string
	}{
		{&ServiceError{Status: 503, Body: "overloaded"}, "Analyst unavailable (HTTP 503): overloaded"},
		{&TransportError{Err: errors.New("timeout")}, "Analyst unreachable: timeout"},
		{errors.New("template"), "Analyst failed: template"},
	}
	for _, tc := range testCases {
		if got := Describe(tc.err); got != tc.want {
			t.Errorf("Describe(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
