// Package agent holds the Gemini-backed extraction model that turns a
// spoken bill description into the structured draft consumed by the intake
// flow.
package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// instruction pins the output contract. The model returns one JSON object
// and nothing else; the intake layer still treats the output as untrusted.
const instruction = `Extract the following details as a JSON object from the text:
who paid, how much, the currency, the conversion rate to INR, whether the
split is equal or by percentage, and if by percentage, who owes what percent.

Rules:
- If the split is equal or even, SplitType is always "equal".
- If the split is by percent or percentage, SplitType is "percentage" and
  SplitDetails maps each person to their percent.
- Output only the JSON object, no prose and no code fences.

Example output 1:
{"WhoPaid": "Thomas Jhon", "Amount": 52, "Currency": "USD", "ConversionRate": 83, "SplitType": "equal"}

Example output 2:
{"WhoPaid": "Thomas Jhon", "Amount": 52, "Currency": "USD", "ConversionRate": 83, "SplitType": "percentage", "SplitDetails": {"Thomas Jhon": "20%", "Mathew": "20%", "Jerry": "30%", "Adam": "30%"}}`

// Extractor is a chat session with the extraction model.
type Extractor struct {
	ModelName string
	Config    *genai.GenerateContentConfig
	chat      *genai.Chat
}

// NewExtractor creates an extractor with the default model. Temperature is
// pinned to zero: the same transcript should produce the same draft.
func NewExtractor() *Extractor {
	return &Extractor{
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Temperature:       genai.Ptr[float32](0),
			ResponseMIMEType:  "application/json",
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		},
	}
}

// Start opens the chat session.
func (e *Extractor) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Extract sends the transcript and returns the model's raw output.
func (e *Extractor) Extract(ctx context.Context, transcript string) (string, error) {
	if e.chat == nil {
		return "", fmt.Errorf("extractor session not started")
	}
	resp, err := e.chat.Send(ctx, &genai.Part{Text: "Text: " + transcript})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the extraction model")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
