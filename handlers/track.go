package handlers

import (
	"errors"
	"log"
	"net/http"

	"gorm.io/gorm"

	"github.com/hawkeyemusic/hawkeyebackend/repository"
)

type TrackHandler struct {
	Tracks repository.TrackRepositoryInterface
}

func (th *TrackHandler) GetTrack(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "track_id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid track ID"})
		return
	}

	track, err := th.Tracks.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Track not found"})
		} else {
			log.Printf("Error getting track %d: %v", id, err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve track"})
		}
		return
	}
	writeJSON(w, http.StatusOK, track)
}
