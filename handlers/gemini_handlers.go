package handlers

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"app/config"
	"app/loader"
	"app/models"
)

// BuildProductPrompt assembles the marketing-copy prompt for one product from
// its name, description, recent reviews and the target persona.
func BuildProductPrompt(req models.ProductCopyRequest) string {
	var reviews string
	if len(req.Reviews) > 0 {
		reviews = "- " + strings.Join(req.Reviews, "\n- ")
	} else {
		reviews = "(no customer reviews available)"
	}

	return fmt.Sprintf(`I am a retail marketing copywriter.
I need to write product copy for %s aimed at %s.
The product is described as: %s.
Recent customer reviews:
%s
Please write a short, persuasive product description.
Start with a catchy one-line headline.
Then write two or three sentences highlighting what customers love about it.
End with a single call-to-action sentence tailored to the target persona.
`, req.ProductName, req.Persona, req.ProductDescription, reviews)
}

// HandleGenerateProductCopy assembles a prompt for a product and generates
// marketing copy with the Gemini API.
// POST /api/v1/products/:productName/copy
func HandleGenerateProductCopy(c *fiber.Ctx) error {
	var req models.ProductCopyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	req.ProductName = c.Params("productName")
	if req.Persona == "" {
		req.Persona = "value-conscious shoppers"
	}

	// Fold in stored reviews when the caller did not supply any.
	if len(req.Reviews) == 0 {
		stored, err := loader.LoadReviews(context.Background(), catalogFromConfig(), req.ProductName, 5)
		if err != nil {
			log.Printf("⚠️ [GEMINI] Could not load reviews for %s: %v", req.ProductName, err)
		}
		for _, r := range stored {
			req.Reviews = append(req.Reviews, r.ReviewText)
		}
	}

	prompt := BuildProductPrompt(req)

	// Initialize the Gemini client
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(config.AppConfig.GeminiAPIKey))
	if err != nil {
		log.Printf("Error creating Gemini client: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to initialize Gemini client"})
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-1.5-pro-latest")
	model.SetTemperature(0.8)
	model.SetMaxOutputTokens(2048)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("Error generating content: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to generate product copy"})
	}

	if Metrics != nil {
		Metrics.PromptsGenerated.Inc()
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": models.ProductCopyResponse{
			Prompt:        prompt,
			GeneratedText: collectText(resp),
		},
	})
}

// collectText concatenates the text parts of a Gemini response.
func collectText(resp *genai.GenerateContentResponse) string {
	var parts []string
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				parts = append(parts, string(text))
			}
		}
	}
	return strings.Join(parts, " ")
}
