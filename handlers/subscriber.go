package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/hawkeyemusic/hawkeyebackend/models"
	"github.com/hawkeyemusic/hawkeyebackend/repository"
)

type SubscriberHandler struct {
	Subscribers repository.SubscriberRepositoryInterface
	Validate    *validator.Validate
}

type subscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Subscribe validates the email shape before anything touches the store; a
// rejected request leaves no side effects
func (sh *SubscriberHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := sh.Validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid email address"})
		return
	}

	subscriber := &models.Subscriber{
		Email:        req.Email,
		SubscribedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := sh.Subscribers.Create(subscriber); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "Email is already subscribed"})
		} else {
			log.Printf("Error creating subscriber '%s': %v", req.Email, err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to subscribe"})
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":    "Successfully subscribed",
		"subscriber": subscriber,
	})
}
