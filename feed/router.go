package feed

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter mounts the websocket stream at path and a JSON counter snapshot at path+"/stats"
func NewRouter(h *Hub, path string) http.Handler {
	r := mux.NewRouter()
	r.Handle(path, h).Methods(http.MethodGet)
	r.HandleFunc(path+"/stats", h.serveStats).Methods(http.MethodGet)
	return r
}

func (h *Hub) serveStats(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.Stats()); err != nil {
		h.log.Printf("[feed] failed to write stats: %v", err)
	}
}
