package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePlanJSON = `{"days":[
  {"day":1,"meals":[
    {"type":"breakfast","name":"Oatmeal","calories":350,"ingredients":["oats","milk","banana"]},
    {"type":"lunch","name":"Chicken salad","calories":550,"ingredients":["chicken breast","lettuce","olive oil"]}
  ]},
  {"day":2,"meals":[
    {"type":"dinner","name":"Salmon bowl","calories":600,"ingredients":["salmon","rice","broccoli","milk"]}
  ]}
]}`

func TestParsePlanJSON(t *testing.T) {
	plan, err := parsePlanJSON(samplePlanJSON)
	require.NoError(t, err)
	assert.Len(t, plan["days"].([]any), 2)
}

func TestParsePlanJSON_StripsFencesAndProse(t *testing.T) {
	wrapped := "Here is your plan:\n```json\n" + samplePlanJSON + "\n```\nEnjoy!"
	plan, err := parsePlanJSON(wrapped)
	require.NoError(t, err)
	assert.Len(t, plan["days"].([]any), 2)
}

func TestParsePlanJSON_RejectsMissingDays(t *testing.T) {
	_, err := parsePlanJSON(`{"days":[]}`)
	assert.ErrorContains(t, err, "no days")

	_, err = parsePlanJSON("not json at all")
	assert.ErrorContains(t, err, "could not parse")
}

func TestCategorizeIngredient(t *testing.T) {
	assert.Equal(t, "produce", categorizeIngredient("Baby Spinach"))
	assert.Equal(t, "protein", categorizeIngredient("chicken breast"))
	assert.Equal(t, "dairy", categorizeIngredient("Greek yogurt"))
	assert.Equal(t, "grains", categorizeIngredient("brown rice"))
	assert.Equal(t, "pantry", categorizeIngredient("olive oil"))
	assert.Equal(t, "other", categorizeIngredient("mystery item"))
}

func TestGenerateMealPlan_StoresParsedPlan(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "chef")

	srv, _ := fakeGroq(t, samplePlanJSON)
	svc := NewMealPlanService(NewGroqServiceWithBaseURL(srv.URL, "test-key"))

	plan, err := svc.GenerateMealPlan(user.ID, MealPlanRequest{
		Days:         2,
		Preferences:  []string{"mediterranean"},
		Restrictions: []string{"no pork"},
	})
	require.NoError(t, err)
	assert.Equal(t, "2-day meal plan", plan.Name)
	assert.Equal(t, 2000, plan.DailyCalories)
	assert.True(t, plan.IsActive)

	// Round-trip through the database to exercise the JSON column.
	stored, err := svc.GetMealPlan(user.ID, plan.ID)
	require.NoError(t, err)
	assert.Len(t, stored.PlanData["days"].([]any), 2)
}

func TestGetMealPlan_OwnershipEnforced(t *testing.T) {
	setupTestDB(t)
	owner := createTestUser(t, "plan-owner")
	other := createTestUser(t, "plan-other")

	srv, _ := fakeGroq(t, samplePlanJSON)
	svc := NewMealPlanService(NewGroqServiceWithBaseURL(srv.URL, "test-key"))

	plan, err := svc.GenerateMealPlan(owner.ID, MealPlanRequest{})
	require.NoError(t, err)

	_, err = svc.GetMealPlan(other.ID, plan.ID)
	assert.ErrorIs(t, err, ErrMealPlanNotFound)
}

func TestBuildGroceryList_DedupesAndCategorizes(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "shopper")

	srv, _ := fakeGroq(t, samplePlanJSON)
	svc := NewMealPlanService(NewGroqServiceWithBaseURL(srv.URL, "test-key"))

	plan, err := svc.GenerateMealPlan(user.ID, MealPlanRequest{Name: "Week A"})
	require.NoError(t, err)

	list, err := svc.BuildGroceryList(user.ID, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "Week A groceries", list.Name)
	require.NotNil(t, list.MealPlanID)
	assert.Equal(t, plan.ID, *list.MealPlanID)

	// "milk" appears in two meals but is listed once.
	dairy, _ := list.ListData["dairy"].([]string)
	assert.Equal(t, []string{"milk"}, dairy)
	protein, _ := list.ListData["protein"].([]string)
	assert.Contains(t, protein, "chicken breast")
	assert.Contains(t, protein, "salmon")
}

func TestCompleteGroceryList(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "finisher")

	srv, _ := fakeGroq(t, samplePlanJSON)
	svc := NewMealPlanService(NewGroqServiceWithBaseURL(srv.URL, "test-key"))

	plan, err := svc.GenerateMealPlan(user.ID, MealPlanRequest{})
	require.NoError(t, err)
	list, err := svc.BuildGroceryList(user.ID, plan.ID)
	require.NoError(t, err)

	require.NoError(t, svc.CompleteGroceryList(user.ID, list.ID))
	assert.ErrorIs(t, svc.CompleteGroceryList(user.ID, 9999), ErrGroceryListNotFound)
}
