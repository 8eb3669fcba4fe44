// Package openai scores political leaning with an OpenAI-compatible chat model.
package openai

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/balancednews/news-feed/internal/datasources"
	"github.com/balancednews/news-feed/internal/domain"
	openai "github.com/sashabaranov/go-openai"
)

var _ datasources.LeaningAnalyzer = (*Analyzer)(nil)

const systemPrompt = `You rate the political leaning of Korean news text on a scale from 1 to 100.
1 means strongly conservative (보수), 50 means neutral (중도), 100 means strongly progressive (진보).
Judge the framing of the text, not the topic. Reply with a single integer and nothing else.`

const (
	DefaultModel  = "gpt-4o-mini"
	maxInputRunes = 2000
)

var firstInteger = regexp.MustCompile(`-?\d+`)

// ErrUnparseableScore is returned when the model reply holds no integer.
var ErrUnparseableScore = errors.New("no score in model reply")

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Analyzer struct {
	client  chatCompleter
	model   string
	timeout time.Duration
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

func NewAnalyzer(cfg Config) *Analyzer {
	cc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		cc.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Analyzer{
		client:  openai.NewClientWithConfig(cc),
		model:   model,
		timeout: 60 * time.Second,
	}
}

func (a *Analyzer) ScorePoliticalLeaning(ctx context.Context, text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.NeutralScore, nil
	}
	if runes := []rune(text); len(runes) > maxInputRunes {
		text = string(runes[:maxInputRunes])
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		MaxTokens:   8,
		Temperature: 0,
	})
	if err != nil {
		return 0, fmt.Errorf("requesting chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return 0, fmt.Errorf("empty chat completion response")
	}

	return parseScore(resp.Choices[0].Message.Content)
}

func parseScore(reply string) (int, error) {
	match := firstInteger.FindString(reply)
	if match == "" {
		return 0, fmt.Errorf("%w: %q", ErrUnparseableScore, reply)
	}

	score, err := strconv.Atoi(match)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnparseableScore, reply)
	}

	return domain.ClampArticleScore(score), nil
}
