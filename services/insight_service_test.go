package services

import (
	"testing"
	"time"

	"backend/config"
	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateHealthInsight_RequiresData(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "noinsight")

	svc := NewInsightService(NewGroqServiceWithBaseURL("http://127.0.0.1:1", "test-key"))
	_, err := svc.GenerateHealthInsight(user.ID)
	assert.ErrorIs(t, err, ErrNoHealthData)
}

func TestGenerateHealthInsight_StoresResult(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "insightful")

	_, err := RecordHealthData(user.ID, HealthDataInput{
		Weight: 70, Height: 175, Steps: 9000, SleepHours: 7,
	})
	require.NoError(t, err)

	srv, lastRequest := fakeGroq(t, "Your step count is solid; keep it up.")
	svc := NewInsightService(NewGroqServiceWithBaseURL(srv.URL, "test-key"))

	insight, err := svc.GenerateHealthInsight(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "health", insight.Category)
	assert.Equal(t, "Your step count is solid; keep it up.", insight.InsightText)

	sent := (*lastRequest)["messages"].([]any)
	userMsg := sent[1].(map[string]any)
	assert.Contains(t, userMsg["content"], "steps: 9000")
	assert.Contains(t, userMsg["content"], "BMI: 22.9")

	stored, err := ListInsights(user.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
}

func TestRecentInsights_LimitsResults(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "prolific")

	for i := 0; i < 5; i++ {
		insight := models.Insight{UserID: user.ID, InsightText: "note", Category: "health"}
		insight.CreatedAt = time.Now().Add(time.Duration(i) * time.Minute)
		require.NoError(t, config.DB.Create(&insight).Error)
	}

	recent, err := RecentInsights(user.ID, 0)
	require.NoError(t, err)
	assert.Len(t, recent, 3)
}
