package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"
)

func main() {
	http.HandleFunc("/v2/everything", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]interface{}{
			"status":       "ok",
			"totalResults": 3,
			"articles": []map[string]interface{}{
				{
					"title":       "New language model released",
					"description": "A research lab published a model with improved reasoning.",
					"publishedAt": time.Now().Format(time.RFC3339),
				},
				{
					"title":       "AI regulation draft announced",
					"description": "Lawmakers outlined a framework for AI oversight.",
					"publishedAt": time.Now().Add(-2 * time.Hour).Format(time.RFC3339),
				},
				{
					"title":       "Chip maker reports record demand",
					"description": "Accelerator shipments doubled year over year.",
					"publishedAt": time.Now().Add(-5 * time.Hour).Format(time.RFC3339),
				},
			},
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			slog.Error("Failed to encode response", "error", err)
		}
	})

	slog.Info("Mock news server running on :8081")
	if err := http.ListenAndServe(":8081", nil); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
