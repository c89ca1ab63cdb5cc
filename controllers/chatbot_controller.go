package controllers

import (
	"net/http"

	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type ChatbotController struct {
	Svc *services.ChatbotService
}

func NewChatbotController(svc *services.ChatbotService) *ChatbotController {
	return &ChatbotController{Svc: svc}
}

func (cc *ChatbotController) ChatPage(c *gin.Context) {
	render(c, http.StatusOK, "chat.html", nil)
}

type chatInput struct {
	Message string `json:"message" binding:"required"`
}

// Chat keeps the rolling conversation in the session so each browser tab
// carries its own history without a dedicated table.
func (cc *ChatbotController) Chat(c *gin.Context) {
	userID := currentUserID(c)

	var input chatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	s := middlewares.Session(c)
	raw, _ := s.Values["chat_history"].(string)
	history := services.DecodeChatHistory(raw)

	reply, history, err := cc.Svc.Chat(userID, history, input.Message)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": err.Error()})
		return
	}

	s.Values["chat_history"] = services.EncodeChatHistory(history)
	middlewares.SaveSession(c, s)

	c.JSON(http.StatusOK, gin.H{"success": true, "reply": reply})
}

// ResetChat clears the session conversation.
func (cc *ChatbotController) ResetChat(c *gin.Context) {
	s := middlewares.Session(c)
	delete(s.Values, "chat_history")
	middlewares.SaveSession(c, s)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
