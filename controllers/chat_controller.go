package controllers

import (
	"net/http"
	"strconv"

	"github.com/jj55j7/fridge-mate/services"

	"github.com/gin-gonic/gin"
)

type StartConversationInput struct {
	UserID uint `json:"user_id" binding:"required"`
}

// POST /chat/conversations
func StartConversation(c *gin.Context) {
	var input StartConversationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := c.GetUint("userID")
	conv, err := services.EnsureConversation(uid, input.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, conv)
}

// GET /chat/conversations
func ListConversations(c *gin.Context) {
	uid := c.GetUint("userID")
	convs, err := services.ConversationsFor(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, convs)
}

type SendMessageInput struct {
	Body string `json:"body" binding:"required"`
}

// POST /chat/conversations/:id/messages
func SendMessage(c *gin.Context) {
	var input SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := c.GetUint("userID")
	msg, err := services.SendMessage(c.Param("id"), uid, input.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// GET /chat/conversations/:id/messages?limit=50
func ListMessages(c *gin.Context) {
	uid := c.GetUint("userID")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	msgs, err := services.ListMessages(c.Param("id"), uid, limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, msgs)
}
