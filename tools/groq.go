package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const groqURL = "https://api.groq.com/openai/v1/chat/completions"
const groqDefaultModel = "llama-3.3-70b-versatile"
const groqMaxTokens = 1000
const groqTemperature = 0.3

// Classes de erro do completador. O controller usa errors.Is para decidir
// entre 500 (configuração/transporte/upstream) e 400 (resposta inaproveitável).
var (
	ErrGroqKeyMissing  = errors.New("GROQ_API_KEY não configurada")
	ErrGroqTransport   = errors.New("erro de conexão com a API do Groq")
	ErrGroqStatus      = errors.New("erro na API do Groq")
	ErrGroqEmptyOutput = errors.New("resposta vazia do modelo")
)

// GroqClient chama a API de chat-completions do Groq.
type GroqClient struct {
	APIKey string
	Model  string

	// HTTPClient permite trocar o transporte em testes. Default: 30s de timeout.
	HTTPClient *http.Client
}

type groqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Complete envia instrução de sistema + mensagem do usuário e devolve o texto
// do assistente. Não há retry: falhas sobem para o chamador.
func (g GroqClient) Complete(ctx context.Context, system string, user string) (string, error) {
	apiKey := strings.TrimSpace(g.APIKey)
	if apiKey == "" {
		return "", ErrGroqKeyMissing
	}
	model := g.Model
	if model == "" {
		model = groqDefaultModel
	}

	reqBody := map[string]any{
		"model": model,
		"messages": []groqMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		"temperature": groqTemperature,
		"max_tokens":  groqMaxTokens,
	}

	b, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, groqURL, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGroqTransport, err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := g.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGroqTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: %d - %s", ErrGroqStatus, resp.StatusCode, string(body))
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrGroqStatus, err)
	}

	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", ErrGroqEmptyOutput
	}

	return parsed.Choices[0].Message.Content, nil
}
