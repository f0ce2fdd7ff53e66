package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-cropsense/prompt"
	"go-cropsense/types"

	"github.com/sashabaranov/go-openai"
)

type Client struct {
	api *openai.Client
}

func NewClient(apiKey string) *Client {
	return &Client{api: openai.NewClient(apiKey)}
}

// DiagnoseComprehensive runs the vision diagnosis call and parses its strict
// JSON output. Provider errors and unparseable responses are both fatal for
// the request; missing optional fields inside a valid object are tolerated.
func (c *Client) DiagnoseComprehensive(
	ctx context.Context,
	systemPrompt string,
	userText string,
	image string,
) (types.DiagnosisResult, error) {
	var result types.DiagnosisResult

	resp, err := c.api.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role: openai.ChatMessageRoleUser,
					MultiContent: []openai.ChatMessagePart{
						{
							Type: openai.ChatMessagePartTypeText,
							Text: userText,
						},
						{
							Type: openai.ChatMessagePartTypeImageURL,
							ImageURL: &openai.ChatMessageImageURL{
								URL:    image,
								Detail: openai.ImageURLDetailHigh,
							},
						},
					},
				},
			},
			Temperature: 0.3,
			MaxTokens:   3000,
		},
	)
	if err != nil {
		return result, fmt.Errorf("openai chat completion error: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return result, errors.New("openai returned empty response or choices")
	}

	if err := ExtractJSON(resp.Choices[0].Message.Content, &result); err != nil {
		return result, err
	}

	normalizeDiagnosis(&result)
	return result, nil
}

// IdentifyCrops asks the vision model for the top crop guesses and always
// returns exactly three, padding with synthetic low-confidence entries when
// the model returns fewer or its output cannot be parsed.
func (c *Client) IdentifyCrops(ctx context.Context, image string) (types.CropIdentification, error) {
	resp, err := c.api.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: prompt.CropIdentificationSystem,
				},
				{
					Role: openai.ChatMessageRoleUser,
					MultiContent: []openai.ChatMessagePart{
						{
							Type: openai.ChatMessagePartTypeText,
							Text: "Identify the crop type in this image and provide top 3 matches with confidence scores.",
						},
						{
							Type: openai.ChatMessagePartTypeImageURL,
							ImageURL: &openai.ChatMessageImageURL{
								URL:    image,
								Detail: openai.ImageURLDetailHigh,
							},
						},
					},
				},
			},
			Temperature: 0.2,
			MaxTokens:   800,
		},
	)
	if err != nil {
		return types.CropIdentification{}, fmt.Errorf("openai chat completion error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return types.CropIdentification{}, errors.New("openai returned empty response or choices")
	}

	var identification types.CropIdentification
	if err := ExtractJSON(resp.Choices[0].Message.Content, &identification); err != nil {
		identification = types.CropIdentification{
			Crops: []types.CropGuess{
				{Name: "Unknown Crop 1", Confidence: 60},
				{Name: "Unknown Crop 2", Confidence: 40},
				{Name: "Unknown Crop 3", Confidence: 30},
			},
			AnalysisNote: "Could not parse AI response properly",
		}
	}

	identification.Crops = PadCrops(identification.Crops)
	return identification, nil
}

// PadCrops extends a guess list to exactly three entries. Synthetic entries
// carry strictly decreasing confidence so they always rank last.
func PadCrops(crops []types.CropGuess) []types.CropGuess {
	for len(crops) < 3 {
		confidence := 70 - len(crops)*20
		if confidence < 20 {
			confidence = 20
		}
		crops = append(crops, types.CropGuess{
			Name:       fmt.Sprintf("Other Crop %d", len(crops)+1),
			Confidence: confidence,
		})
	}
	return crops[:3]
}

// ChatReply answers a conversational message against the composed context
// prompt, with optional image input.
func (c *Client) ChatReply(ctx context.Context, contextPrompt, message, image, languageName string) (string, error) {
	var userMessage openai.ChatCompletionMessage
	if image != "" {
		text := fmt.Sprintf("User uploaded an image and asks: %s\n\nAnalyze this crop image for diseases, pests, nutrient deficiencies, or other issues. Provide detailed diagnosis and treatment recommendations in %s.", message, languageName)
		userMessage = openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{
					Type: openai.ChatMessagePartTypeText,
					Text: text,
				},
				{
					Type: openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{
						URL:    image,
						Detail: openai.ImageURLDetailHigh,
					},
				},
			},
		}
	} else {
		userMessage = openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: message,
		}
	}

	resp, err := c.api.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: contextPrompt,
				},
				userMessage,
			},
			Temperature: 0.5,
			MaxTokens:   1500,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", errors.New("openai returned empty response or choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// normalizeDiagnosis fills defaults for individually missing fields and
// clamps the model's self-reported scores into range.
func normalizeDiagnosis(d *types.DiagnosisResult) {
	if d.Treatments == nil {
		d.Treatments = []types.Treatment{}
	}
	if d.Causes == nil {
		d.Causes = []string{}
	}
	if d.Prevention == nil {
		d.Prevention = []string{}
	}
	if d.ImageFindings == nil {
		d.ImageFindings = []string{}
	}
	if d.ContributingFactors == nil {
		d.ContributingFactors = []string{}
	}
	d.Confidence = clampScore(d.Confidence)
	d.Accuracy = clampScore(d.Accuracy)
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
