package service

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sanyokkme/fiyouai/types"
)

const (
	openAIBase  = "https://api.openai.com/v1"
	visionModel = "gpt-4o"
	imageModel  = "dall-e-3"
)

// AIService calls the hosted model for meal recognition, recipe
// generation and weekly insights. Every method makes a single attempt;
// callers substitute fallbacks on error.
type AIService struct {
	apiKey string
	client *http.Client
}

func NewAIService(apiKey string) *AIService {
	return &AIService{
		apiKey: apiKey,
		client: &http.Client{Timeout: 90 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	ResponseFormat map[string]any `json:"response_format,omitempty"`
	Messages       []chatMessage  `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// chatJSON sends a chat completion request in JSON mode and decodes the
// model's JSON answer into out
func (a *AIService) chatJSON(messages []chatMessage, out any) error {
	reqBody, err := json.Marshal(chatRequest{
		Model:          visionModel,
		ResponseFormat: map[string]any{"type": "json_object"},
		Messages:       messages,
	})
	if err != nil {
		return fmt.Errorf("failed to encode chat request: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, openAIBase+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("chat request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read chat response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("chat request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return fmt.Errorf("failed to parse chat response: %v", err)
	}
	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return fmt.Errorf("empty chat response")
	}

	if err := json.Unmarshal([]byte(chatResp.Choices[0].Message.Content), out); err != nil {
		return fmt.Errorf("failed to parse model JSON: %v", err)
	}
	return nil
}

// AnalyzeMealImage estimates name, calories and macros for a meal photo.
// When the model returns zero calories they are recomputed from the
// macros ((p*4)+(c*4)+(f*9)) as a failsafe.
func (a *AIService) AnalyzeMealImage(image []byte) (*types.MealAnalysis, error) {
	encoded := base64.StdEncoding.EncodeToString(image)

	system := `Ви — професійний дієтолог. Проаналізуйте фото їжі.
ОБОВ'ЯЗКОВО розрахуйте калорійність на основі БЖВ: (білки * 4) + (вуглеводи * 4) + (жири * 9).
Поверніть JSON:
{
    "meal_name": "конкретна назва страви",
    "calories": ціле число (НЕ 0),
    "protein": число грам білків,
    "fat": число грам жирів,
    "carbs": число грам вуглеводів
}`

	var raw map[string]any
	err := a.chatJSON([]chatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: []map[string]any{
			{"type": "text", "text": "Оціни цю страву. Дай детальну оцінку Ккал та БЖВ."},
			{"type": "image_url", "image_url": map[string]any{
				"url": "data:image/jpeg;base64," + encoded,
			}},
		}},
	}, &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze meal image: %v", err)
	}

	analysis := &types.MealAnalysis{
		MealName: stringField(raw, "meal_name"),
		Calories: CleanToInt(raw["calories"]),
		Protein:  CleanToFloat(raw["protein"]),
		Fat:      CleanToFloat(raw["fat"]),
		Carbs:    CleanToFloat(raw["carbs"]),
	}
	if analysis.Calories == 0 {
		analysis.Calories = int(analysis.Protein*4 + analysis.Carbs*4 + analysis.Fat*9)
	}
	return analysis, nil
}

// FallbackAnalysis is the safe result served when image analysis fails
func FallbackAnalysis() *types.MealAnalysis {
	return &types.MealAnalysis{MealName: "Не вдалося розпізнати"}
}

type imageRequest struct {
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	Size    string `json:"size"`
	Quality string `json:"quality"`
	N       int    `json:"n"`
}

type imageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

// generateDishImage renders a food photo for a generated recipe. Image
// failures are tolerated by the caller; the recipe ships without one.
func (a *AIService) generateDishImage(title string) (string, error) {
	reqBody, err := json.Marshal(imageRequest{
		Model:   imageModel,
		Prompt:  fmt.Sprintf("Professional food photography of %s, soft lighting, top down view", title),
		Size:    "1024x1024",
		Quality: "standard",
		N:       1,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode image request: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, openAIBase+"/images/generations", bytes.NewReader(reqBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("image request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read image response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var imageResp imageResponse
	if err := json.Unmarshal(body, &imageResp); err != nil {
		return "", fmt.Errorf("failed to parse image response: %v", err)
	}
	if len(imageResp.Data) == 0 {
		return "", fmt.Errorf("no image returned")
	}
	return imageResp.Data[0].URL, nil
}

// GenerateRecipe suggests a recipe fitting the user's remaining calories
// and goal, with a generated dish photo when the image call succeeds
func (a *AIService) GenerateRecipe(remainingCalories int, preferences []string, goal string) (*types.GeneratedRecipe, error) {
	prompt := fmt.Sprintf(`Користувач має %d ккал залишку. Його ціль: %s. Вподобання: %s.
Запропонуй рецепт. ПИШИ ВИКЛЮЧНО УКРАЇНСЬКОЮ МОВОЮ.

Поверни ТІЛЬКИ JSON:
{
    "title": "назва страви",
    "calories": ціле число,
    "protein": число (білки),
    "fat": число (жири),
    "carbs": число (вуглеводи),
    "time": "наприклад, 20 хв",
    "ingredients": "список інгредієнтів одним текстом",
    "instructions": "кроки приготування одним текстом"
}`, remainingCalories, goal, strings.Join(preferences, ", "))

	var raw map[string]any
	err := a.chatJSON([]chatMessage{
		{Role: "system", Content: "Ви — шеф-кухар та нутріціолог. Видавайте дані строго у форматі JSON українською мовою."},
		{Role: "user", Content: prompt},
	}, &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to generate recipe: %v", err)
	}

	recipe := &types.GeneratedRecipe{
		Title:        stringField(raw, "title"),
		Calories:     CleanToInt(raw["calories"]),
		Protein:      CleanToFloat(raw["protein"]),
		Fat:          CleanToFloat(raw["fat"]),
		Carbs:        CleanToFloat(raw["carbs"]),
		Time:         stringField(raw, "time"),
		Ingredients:  stringField(raw, "ingredients"),
		Instructions: stringField(raw, "instructions"),
	}
	if recipe.Title == "" {
		recipe.Title = "Смачна страва"
	}

	imageURL, err := a.generateDishImage(recipe.Title)
	if err != nil {
		fmt.Printf("Dish image generation failed: %v\n", err)
	} else {
		recipe.ImageURL = imageURL
	}
	return recipe, nil
}

// FallbackRecipe is the safe result served when recipe generation fails
func FallbackRecipe() *types.GeneratedRecipe {
	return &types.GeneratedRecipe{
		Title:        "Помилка генерації",
		Ingredients:  "Не вдалося отримати дані",
		Instructions: "Спробуйте ще раз пізніше.",
	}
}

// GenerateWeeklyInsights analyzes the trailing week's meal history and
// returns a short summary with motivational tips
func (a *AIService) GenerateWeeklyInsights(history []map[string]any, target int, goal string) (*types.WeeklyInsights, error) {
	historyJSON, err := json.Marshal(history)
	if err != nil {
		historyJSON = []byte("[]")
	}

	prompt := fmt.Sprintf(`Ти — експерт-нутріціолог. ПИШИ ТІЛЬКИ УКРАЇНСЬКОЮ МОВОЮ.
Проаналізуй дані користувача за тиждень: %s.
Денна норма: %d ккал. Ціль: %s.

Напиши 3 короткі, мотиваційні поради. Поверни ТІЛЬКИ JSON:
{
    "summary": "короткий висновок одним реченням",
    "tips": [
        {"title": "заголовок", "text": "порада"}
    ]
}`, string(historyJSON), target, goal)

	var insights types.WeeklyInsights
	err = a.chatJSON([]chatMessage{
		{Role: "system", Content: "Ти персональний дієтолог."},
		{Role: "user", Content: prompt},
	}, &insights)
	if err != nil {
		return nil, fmt.Errorf("failed to generate weekly insights: %v", err)
	}
	return &insights, nil
}

// FallbackInsights is the static answer served when insight generation
// fails for any reason
func FallbackInsights() *types.WeeklyInsights {
	return &types.WeeklyInsights{
		Summary: "Слідкуйте за раціоном!",
		Tips:    []types.InsightTip{},
	}
}
