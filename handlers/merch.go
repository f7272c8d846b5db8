package handlers

import (
	"errors"
	"log"
	"net/http"

	"gorm.io/gorm"

	"github.com/hawkeyemusic/hawkeyebackend/models"
	"github.com/hawkeyemusic/hawkeyebackend/repository"
)

type MerchHandler struct {
	Merch repository.MerchRepositoryInterface
}

func (mh *MerchHandler) ListMerchItems(w http.ResponseWriter, r *http.Request) {
	items, err := mh.Merch.ListAll()
	if err != nil {
		log.Printf("Error listing merch items: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve merchandise"})
		return
	}
	if items == nil {
		items = []models.MerchItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (mh *MerchHandler) GetMerchItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "item_id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid merchandise ID"})
		return
	}

	item, err := mh.Merch.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Merchandise item not found"})
		} else {
			log.Printf("Error getting merch item %d: %v", id, err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve merchandise item"})
		}
		return
	}
	writeJSON(w, http.StatusOK, item)
}
