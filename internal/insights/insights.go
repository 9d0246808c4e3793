// File: internal/insights/insights.go
package insights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"excelytics/internal/chart"
	"excelytics/internal/model"

	"google.golang.org/genai"
)

// sampleSize 送往模型的取樣列數。
// 注意：欄位分類在這 25 列上套用與建議引擎相同的 0.7 門檻，
// 與建議引擎的 10 列取樣不一致，屬既有行為，刻意保留。
const sampleSize = 25

const geminiModel = "gemini-2.0-flash"

// ErrNoAPIKey 未設定 GEMINI_API_KEY
var ErrNoAPIKey = errors.New("gemini API key not configured")

// generateText 呼叫 Gemini 產生文字，測試可覆寫此變數。
var generateText = func(ctx context.Context, apiKey, model, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return "", fmt.Errorf("failed to create GenAI client: %w", err)
	}
	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// Generate 取樣資料與欄位型別送往文字生成服務，回傳解析後的洞察。
// 回傳文字若非合法 JSON，包成 {"raw": text}。
func Generate(ctx context.Context, rows []model.Row, columns []string, label string) (map[string]any, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	sample := rows
	if len(sample) > sampleSize {
		sample = sample[:sampleSize]
	}

	numeric, _ := chart.ClassifyColumns(rows, columns, sampleSize)
	columnTypes := make(map[string]string, len(columns))
	for _, col := range columns {
		columnTypes[col] = "categorical"
	}
	for _, col := range numeric {
		columnTypes[col] = "numeric"
	}

	prompt, err := buildPrompt(columnTypes, sample, label)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	text, err := generateText(ctx, apiKey, geminiModel, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate AI insights: %w", err)
	}

	return parseInsights(text), nil
}

func buildPrompt(columnTypes map[string]string, sample []model.Row, label string) (string, error) {
	typesJSON, err := json.Marshal(columnTypes)
	if err != nil {
		return "", err
	}
	sampleJSON, err := json.MarshalIndent(sample, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`You are a data analysis expert. Analyze this %s data and provide insights:
Column Information: %s
Data Sample: %s
Please provide:
  1. A brief summary of what the data represents
  2. Key observations and patterns in the data
  3. Potential correlations between variables
  4. Recommended visualizations for this data
  5. Business insights that might be valuable

Format your response as JSON with these sections.`, label, typesJSON, sampleJSON), nil
}

// parseInsights 先剝除 ```json 圍欄再解析；解析失敗時回傳原始文字
func parseInsights(text string) map[string]any {
	if strings.Contains(text, "```json") {
		after := strings.SplitN(text, "```json", 2)[1]
		text = strings.SplitN(after, "```", 2)[0]
	}
	text = strings.TrimSpace(text)

	var out map[string]any
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return map[string]any{"raw": text}
	}
	return out
}
