package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

var (
	ErrMealPlanNotFound    = errors.New("meal plan not found")
	ErrGroceryListNotFound = errors.New("grocery list not found")
)

type MealPlanService struct {
	groq *GroqService
}

func NewMealPlanService(groq *GroqService) *MealPlanService {
	return &MealPlanService{groq: groq}
}

type MealPlanRequest struct {
	Name          string   `json:"name"`
	Days          int      `json:"days"`
	DailyCalories int      `json:"daily_calories"`
	Preferences   []string `json:"preferences"`
	Restrictions  []string `json:"restrictions"`
}

// GenerateMealPlan asks the AI for a structured day-by-day plan and stores
// the parsed JSON payload on the MealPlan row.
func (s *MealPlanService) GenerateMealPlan(userID uint, req MealPlanRequest) (*models.MealPlan, error) {
	days := req.Days
	if days <= 0 {
		days = 7
	}
	if days > 14 {
		days = 14
	}
	calories := req.DailyCalories
	if calories <= 0 {
		calories = 2000
	}

	reply, err := s.groq.ChatCompletion([]ChatMessage{
		{Role: "system", Content: "You are a meal planning assistant. Respond with JSON only, no prose and no markdown fences."},
		{Role: "user", Content: buildMealPlanPrompt(days, calories, req.Preferences, req.Restrictions)},
	})
	if err != nil {
		return nil, err
	}

	planData, err := parsePlanJSON(reply)
	if err != nil {
		return nil, err
	}

	name := req.Name
	if name == "" {
		name = fmt.Sprintf("%d-day meal plan", days)
	}
	start := time.Now()
	end := start.AddDate(0, 0, days-1)

	plan := models.MealPlan{
		UserID:        userID,
		Name:          name,
		StartDate:     start,
		EndDate:       &end,
		DailyCalories: calories,
		IsActive:      true,
		Preferences:   strings.Join(req.Preferences, ","),
		Restrictions:  strings.Join(req.Restrictions, ","),
		PlanData:      planData,
	}
	if err := config.DB.Create(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func buildMealPlanPrompt(days, calories int, preferences, restrictions []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Create a %d-day meal plan at roughly %d kcal per day.\n", days, calories)
	if len(preferences) > 0 {
		fmt.Fprintf(&sb, "Preferred foods/cuisines: %s.\n", strings.Join(preferences, ", "))
	}
	if len(restrictions) > 0 {
		fmt.Fprintf(&sb, "Dietary restrictions/allergies: %s.\n", strings.Join(restrictions, ", "))
	}
	sb.WriteString(`Return exactly this JSON structure:
{"days":[{"day":1,"meals":[{"type":"breakfast","name":"...","calories":400,"ingredients":["..."]}]}]}
Include breakfast, lunch, dinner and one snack per day.`)
	return sb.String()
}

// parsePlanJSON tolerates models that wrap the JSON in markdown fences or
// surrounding prose: it extracts the outermost object and validates the
// "days" key.
func parsePlanJSON(raw string) (models.JSONMap, error) {
	text := strings.TrimSpace(raw)
	if i := strings.Index(text, "{"); i >= 0 {
		if j := strings.LastIndex(text, "}"); j > i {
			text = text[i : j+1]
		}
	}

	var plan models.JSONMap
	if err := json.Unmarshal([]byte(text), &plan); err != nil {
		return nil, fmt.Errorf("could not parse generated meal plan: %w", err)
	}
	daysVal, ok := plan["days"].([]any)
	if !ok || len(daysVal) == 0 {
		return nil, errors.New("generated meal plan has no days")
	}
	return plan, nil
}

func (s *MealPlanService) ListMealPlans(userID uint) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}

func (s *MealPlanService) GetMealPlan(userID, planID uint) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := config.DB.
		Where("id = ? AND user_id = ?", planID, userID).
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// grocery aisle keyword table, checked in order; first match wins.
var groceryCategories = []struct {
	Name     string
	Keywords []string
}{
	{"produce", []string{"apple", "banana", "berry", "berries", "orange", "lemon", "avocado", "spinach", "kale", "lettuce", "tomato", "onion", "garlic", "pepper", "carrot", "broccoli", "cucumber", "zucchini", "potato", "mushroom", "fruit", "vegetable"}},
	{"protein", []string{"chicken", "beef", "pork", "turkey", "fish", "salmon", "tuna", "shrimp", "egg", "tofu", "tempeh", "bean", "lentil", "chickpea"}},
	{"dairy", []string{"milk", "cheese", "yogurt", "butter", "cream"}},
	{"grains", []string{"rice", "bread", "pasta", "oat", "quinoa", "flour", "tortilla", "cereal", "noodle"}},
	{"pantry", []string{"oil", "salt", "spice", "sauce", "vinegar", "honey", "sugar", "nut", "almond", "peanut", "seed", "stock", "broth"}},
}

func categorizeIngredient(name string) string {
	lower := strings.ToLower(name)
	for _, cat := range groceryCategories {
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, kw) {
				return cat.Name
			}
		}
	}
	return "other"
}

// BuildGroceryList aggregates every ingredient in a plan into a categorized
// shopping list and stores it.
func (s *MealPlanService) BuildGroceryList(userID, planID uint) (*models.GroceryList, error) {
	plan, err := s.GetMealPlan(userID, planID)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	categorized := map[string][]string{}

	daysVal, _ := plan.PlanData["days"].([]any)
	for _, d := range daysVal {
		day, ok := d.(map[string]any)
		if !ok {
			continue
		}
		mealsVal, _ := day["meals"].([]any)
		for _, m := range mealsVal {
			meal, ok := m.(map[string]any)
			if !ok {
				continue
			}
			ingredientsVal, _ := meal["ingredients"].([]any)
			for _, ing := range ingredientsVal {
				name, ok := ing.(string)
				if !ok {
					continue
				}
				name = strings.TrimSpace(name)
				key := strings.ToLower(name)
				if name == "" || seen[key] {
					continue
				}
				seen[key] = true
				cat := categorizeIngredient(name)
				categorized[cat] = append(categorized[cat], name)
			}
		}
	}

	listData := models.JSONMap{}
	for cat, items := range categorized {
		listData[cat] = items
	}

	planID = plan.ID
	list := models.GroceryList{
		UserID:     userID,
		MealPlanID: &planID,
		Name:       plan.Name + " groceries",
		ListData:   listData,
	}
	if err := config.DB.Create(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *MealPlanService) CompleteGroceryList(userID, listID uint) error {
	result := config.DB.Model(&models.GroceryList{}).
		Where("id = ? AND user_id = ?", listID, userID).
		Update("is_completed", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGroceryListNotFound
	}
	return nil
}
