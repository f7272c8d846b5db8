package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/hawkeyemusic/hawkeyebackend/database"
)

type StatsHandler struct {
	DB *sql.DB
}

func (sh *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := database.GetCatalogStats(sh.DB)
	if err != nil {
		log.Printf("Error collecting catalog stats: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to collect stats"})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
