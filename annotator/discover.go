package annotator

import (
	"context"
	"log"
	"slices"
	"strings"
)

// preferred models, best first.
var preferred = []string{
	"gemini-2.5-flash",
	"gemini-2.0-flash",
	"gemini-1.5-flash",
	"gemini-1.5-pro",
}

const generateContent = "generateContent"

// discover lists the available models and picks one that can generate content.
//
// A preferred model wins, otherwise the first one supporting generation. If the
// listing fails or nothing matches, fallback is returned.
func discover(ctx context.Context, m models, fallback string) string {
	page, err := m.List(ctx, nil)
	if err != nil {
		log.Printf("cannot list models, using %q: %v", fallback, err)
		return fallback
	}

	var available []string
	for _, model := range page.Items {
		if model == nil || !slices.Contains(model.SupportedActions, generateContent) {
			continue
		}
		available = append(available, strings.TrimPrefix(model.Name, "models/"))
	}

	for _, name := range preferred {
		if slices.Contains(available, name) {
			return name
		}
	}
	if len(available) > 0 {
		return available[0]
	}
	log.Printf("no model supports %s, using %q", generateContent, fallback)
	return fallback
}
