// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/MKhiriev/tootline/internal/adapter"
	"github.com/MKhiriev/tootline/internal/logger"
	"github.com/MKhiriev/tootline/models"
)

// MaxSuggestions caps the completions returned for one token.
const MaxSuggestions = 5

const (
	TriggerAccount = '@'
	TriggerHashtag = '#'
	TriggerEmoji   = ':'
)

// SuggestionProvider completes the query typed after a trigger rune.
type SuggestionProvider interface {
	Suggest(ctx context.Context, query string) ([]string, error)
}

// SuggestionProviderFunc adapts a plain function to [SuggestionProvider].
type SuggestionProviderFunc func(ctx context.Context, query string) ([]string, error)

func (f SuggestionProviderFunc) Suggest(ctx context.Context, query string) ([]string, error) {
	return f(ctx, query)
}

type suggestionService struct {
	providers map[rune]SuggestionProvider
	logger    *logger.Logger
}

// NewSuggestionService builds a SuggestionService dispatching on the first
// rune of the token.
func NewSuggestionService(providers map[rune]SuggestionProvider, log *logger.Logger) SuggestionService {
	if log == nil {
		log = logger.Nop()
	}
	registry := make(map[rune]SuggestionProvider, len(providers))
	for trigger, p := range providers {
		registry[trigger] = p
	}
	return &suggestionService{providers: registry, logger: log.WithComponent("suggestions")}
}

// DefaultSuggestionProviders returns the account, hashtag and custom emoji
// providers backed by instance.
func DefaultSuggestionProviders(instance adapter.InstanceAdapter) map[rune]SuggestionProvider {
	return map[rune]SuggestionProvider{
		TriggerAccount: &searchProvider{adapter: instance, kind: "accounts"},
		TriggerHashtag: &searchProvider{adapter: instance, kind: "hashtags"},
		TriggerEmoji:   &emojiProvider{adapter: instance},
	}
}

func (s *suggestionService) Triggers() []rune {
	triggers := make([]rune, 0, len(s.providers))
	for trigger := range s.providers {
		triggers = append(triggers, trigger)
	}
	slices.Sort(triggers)
	return triggers
}

func (s *suggestionService) Suggest(ctx context.Context, token string) ([]string, error) {
	trigger, size := utf8.DecodeRuneInString(token)
	if size == 0 {
		return nil, nil
	}
	provider, ok := s.providers[trigger]
	if !ok {
		return nil, nil
	}
	query := token[size:]
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	suggestions, err := provider.Suggest(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("suggest %q: %w", token, err)
	}
	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}
	return suggestions, nil
}

type searchProvider struct {
	adapter adapter.InstanceAdapter
	kind    string
}

func (p *searchProvider) Suggest(ctx context.Context, query string) ([]string, error) {
	results, err := p.adapter.Search(ctx, query, p.kind, MaxSuggestions)
	if err != nil {
		return nil, err
	}

	var out []string
	switch p.kind {
	case "accounts":
		for _, a := range results.Accounts {
			out = append(out, "@"+a.Acct)
		}
	case "hashtags":
		for _, t := range results.Hashtags {
			out = append(out, "#"+t.Name)
		}
	}
	return out, nil
}

// emojiProvider loads the instance emoji list once and filters it locally.
type emojiProvider struct {
	adapter adapter.InstanceAdapter

	mu     sync.Mutex
	emojis []models.Emoji
	loaded bool
}

func (p *emojiProvider) load(ctx context.Context) ([]models.Emoji, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.loaded {
		return p.emojis, nil
	}

	emojis, err := p.adapter.CustomEmojis(ctx)
	if err != nil {
		return nil, err
	}
	p.emojis = emojis
	p.loaded = true
	return emojis, nil
}

func (p *emojiProvider) Suggest(ctx context.Context, query string) ([]string, error) {
	emojis, err := p.load(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(query)
	var out []string
	for _, e := range emojis {
		if !e.VisibleInPicker || !strings.HasPrefix(strings.ToLower(e.Shortcode), query) {
			continue
		}
		out = append(out, ":"+e.Shortcode+":")
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out, nil
}
