package controllers

import (
	"net/http"

	"github.com/dcode-github/nestora/backend/assistant"
	"github.com/dcode-github/nestora/backend/dtos"
	"github.com/dcode-github/nestora/backend/models"
	"github.com/dcode-github/nestora/backend/utils"
)

func AskAssistant() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.AssistantRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, models.AssistantReply{Reply: assistant.Reply(req.Message)})
	}
}

func GetAssistantGreeting() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithJSON(w, http.StatusOK, models.AssistantReply{Reply: assistant.Greeting()})
	}
}
