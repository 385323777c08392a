package petbio

import (
	"context"
	"fmt"
	"strings"

	"pet-care-platform/internal/platform/logger"
	"pet-care-platform/internal/ports/bio"
)

// FallbackBio se devuelve cuando el upstream no está configurado o falla.
const FallbackBio = "Uma bio incrível para um pet incrível! 🐾"

// Generator implementa bio.Generator contra el upstream de chat.
// Nunca propaga errores del upstream: siempre responde con texto usable.
type Generator struct {
	client *Client
	log    logger.Logger
}

func NewGenerator(client *Client, log logger.Logger) *Generator {
	return &Generator{client: client, log: log}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (g *Generator) Generate(ctx context.Context, in bio.Request) (string, error) {
	if g.client == nil || !g.client.cfg.IsConfigured() {
		return FallbackBio, nil
	}

	req := chatRequest{
		Model: g.client.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt(in.Language)},
			{Role: "user", Content: userPrompt(in)},
		},
	}
	headers := map[string]string{
		"Authorization": "Bearer " + g.client.cfg.APIKey,
	}

	var resp chatResponse
	err := g.client.http.DoJSON(ctx, "POST", "/v1/chat/completions", headers, req, &resp)
	if err != nil {
		if g.log != nil {
			g.log.Warn("bio upstream failed, using fallback", map[string]any{"error": err.Error()})
		}
		return FallbackBio, nil
	}

	if len(resp.Choices) == 0 {
		return FallbackBio, nil
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return FallbackBio, nil
	}
	return text, nil
}

func systemPrompt(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		lang = "pt-BR"
	}
	return fmt.Sprintf(
		"Você escreve biografias curtas e carismáticas para perfis de pets. Responda em %s, com no máximo 3 frases, sem hashtags.",
		lang,
	)
}

func userPrompt(in bio.Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Nome: %s", strings.TrimSpace(in.Name))
	if breed := strings.TrimSpace(in.Breed); breed != "" {
		fmt.Fprintf(&b, "\nRaça: %s", breed)
	}
	if traits := strings.TrimSpace(in.Traits); traits != "" {
		fmt.Fprintf(&b, "\nPersonalidade: %s", traits)
	}
	return b.String()
}
