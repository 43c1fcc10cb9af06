// Command diagnose lists the chat-capable models an API key can use, for
// picking a valid model id before starting the server.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/joho/godotenv"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

func main() {
	godotenv.Load()

	ctx := context.Background()
	checked := false

	if key := os.Getenv("GROQ_API_KEY"); key != "" {
		checked = true
		if err := listGroqModels(ctx, key); err != nil {
			log.Printf("❌ Groq diagnosis failed: %v", err)
		}
	}

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		checked = true
		if err := listGeminiModels(ctx, key); err != nil {
			log.Printf("❌ Gemini diagnosis failed: %v", err)
		}
	}

	if !checked {
		log.Fatal("Set GROQ_API_KEY and/or GEMINI_API_KEY to diagnose")
	}

	fmt.Println("\nACTION: Copy one of the names above into GROQ_MODEL.")
}

func listGroqModels(ctx context.Context, apiKey string) error {
	fmt.Println("🔍 Contacting Groq to list available models...")

	clientConfig := openai.DefaultConfig(apiKey)
	clientConfig.BaseURL = getEnvOrDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1")
	client := openai.NewClientWithConfig(clientConfig)

	list, err := client.ListModels(ctx)
	if err != nil {
		return err
	}

	fmt.Println("\n✅ AVAILABLE GROQ MODELS:")
	for _, m := range list.Models {
		fmt.Printf("👉 %s\n", m.ID)
	}
	return nil
}

func listGeminiModels(ctx context.Context, apiKey string) error {
	fmt.Println("🔍 Contacting Google to list available models...")

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return err
	}
	defer client.Close()

	fmt.Println("\n✅ AVAILABLE GEMINI CHAT MODELS:")
	it := client.ListModels(ctx)
	for {
		m, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return err
		}

		// Only models usable for chat completions
		supported := false
		for _, method := range m.SupportedGenerationMethods {
			if method == "generateContent" {
				supported = true
				break
			}
		}
		if !supported {
			continue
		}

		fmt.Printf("👉 %s\n", strings.TrimPrefix(m.Name, "models/"))
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}
