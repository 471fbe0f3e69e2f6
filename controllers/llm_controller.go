package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"chat-app/services"
	"chat-app/utils"
)

type LLMController struct {
	llm *services.LLMService
}

func NewLLMController(llm *services.LLMService) *LLMController {
	return &LLMController{llm: llm}
}

// Generate proxies one prompt to the generative model and returns the reply.
func (ctl *LLMController) Generate(c *gin.Context) {
	var input struct {
		Prompt string `json:"prompt"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "User message is required.")
		return
	}

	reply, err := ctl.llm.Generate(c.Request.Context(), input.Prompt)
	if err != nil {
		if errors.Is(err, services.ErrEmptyPrompt) {
			utils.RespondError(c, http.StatusBadRequest, "User message is required.")
			return
		}
		slog.Error("llm generation failed", "error", err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{
		"message": reply,
		"prompt":  input.Prompt,
	})
}
