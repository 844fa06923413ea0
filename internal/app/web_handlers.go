package app

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"arachnid/internal/codec"
	"arachnid/internal/dataset"
	"arachnid/internal/paginate"
)

func (s *Server) handleWebInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"system": "W.E.B. Protocol",
		"name":   "Worldwide Evidence Bureau",
		"description": "This system provides surveillance monitoring logs for agents of interest. " +
			"Use suspect UUIDs to retrieve paginated surveillance data.",
		"authentication": map[string]any{
			"type": "None required",
			"note": "All endpoints are publicly accessible for investigation purposes",
		},
		"endpoints": map[string]string{
			"/api/v1/web/info":                "This endpoint - public system information",
			"/api/v1/web/suspects":            "List all suspects under surveillance",
			"/api/v1/web/surveillance/{uuid}": "Get paginated surveillance logs for a specific suspect",
		},
		"pagination": map[string]any{
			"entries_per_page": dataset.EntriesPerPage,
			"page_parameter":   "page (1-indexed)",
			"example":          "GET /api/v1/web/surveillance/{uuid}?page=1",
		},
		"data_encoding": map[string]any{
			"format": "Base64",
			"note":   `Surveillance data is Base64-encoded. Decode the "data" field to get JSON array of entries.`,
			"decoding_example": map[string]string{
				"javascript": "JSON.parse(atob(response.data))",
				"python":     `json.loads(base64.b64decode(response["data"]))`,
			},
		},
		"workflow": "1. Get suspect UUIDs from /api/v1/web/suspects\n" +
			"2. For each UUID, paginate through surveillance logs\n" +
			"3. Decode Base64 data to JSON\n" +
			"4. Look for entries with suspicious=true",
		"note": "Each suspect has 12-18 pages of surveillance data. Paginate through all pages for all suspects.",
	})
}

func (s *Server) handleSuspects(w http.ResponseWriter, _ *http.Request) {
	type suspectSummary struct {
		UUID  string `json:"uuid"`
		Name  string `json:"name"`
		Pages int    `json:"pages"`
	}
	suspects := make([]suspectSummary, 0, len(s.store.Suspects))
	for _, suspect := range s.store.Suspects {
		rec, _ := s.store.Record(suspect.UUID)
		suspects = append(suspects, suspectSummary{UUID: suspect.UUID, Name: suspect.Name, Pages: rec.Pages})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Surveillance targets retrieved successfully",
		"count":    len(suspects),
		"suspects": suspects,
		"note":     "Use the uuid to query /api/v1/web/surveillance/{uuid}?page=N for surveillance logs",
	})
}

func (s *Server) handleSurveillance(w http.ResponseWriter, r *http.Request) {
	pageParam := r.URL.Query().Get("page")
	if pageParam == "" {
		apiError(w, "Missing required query parameter: page", http.StatusBadRequest)
		return
	}
	page, err := strconv.Atoi(pageParam)
	if err != nil || page < 1 {
		apiError(w, "Invalid page number. Must be a positive integer.", http.StatusBadRequest)
		return
	}

	// Normalize the path UUID so mixed-case variants hit the same record.
	parsed, err := uuid.Parse(chi.URLParam(r, "uuid"))
	if err != nil {
		apiError(w, "Suspect UUID not found in surveillance system", http.StatusNotFound)
		return
	}
	suspectUUID := parsed.String()

	rec, ok := s.store.Record(suspectUUID)
	if !ok {
		apiError(w, "Suspect UUID not found in surveillance system", http.StatusNotFound)
		return
	}

	start, end, err := paginate.Slice(len(rec.Entries), page, dataset.EntriesPerPage)
	if err != nil {
		apiError(w, fmt.Sprintf("Invalid page number. Suspect has %d pages (requested page %d)", rec.Pages, page), http.StatusBadRequest)
		return
	}

	encoded, err := codec.EncodeJSONBase64(rec.Entries[start:end])
	if err != nil {
		apiError(w, "Failed to encode surveillance data", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"suspect": map[string]string{"uuid": suspectUUID, "name": rec.Name},
		"pagination": map[string]any{
			"current_page":     page,
			"total_pages":      rec.Pages,
			"entries_per_page": dataset.EntriesPerPage,
			"has_next":         page < rec.Pages,
			"has_previous":     page > 1,
		},
		"data":     encoded,
		"encoding": "base64",
		"note":     "Look for entries with suspicious=true to identify weapons transactions",
	})
}

func (s *Server) handleCities(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"system":           "W.E.B. Inventory System",
		"name":             "Wow! Everything Box",
		"description":      "Backup inventory database recovered from secure storage.",
		"note":             "All weapon data is Base64 encoded to save space in the backup.",
		"available_cities": dataset.Cities,
		"usage":            "Query /api/web/inventory?city={city}&page={page} to view inventory for a specific city",
	})
}

func (s *Server) handleInventory(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		apiError(w, "Missing required parameter: city. Example: /api/web/inventory?city=Seattle", http.StatusBadRequest)
		return
	}
	if !dataset.KnownCity(city) {
		apiError(w, fmt.Sprintf("City %q not found in inventory database. Use /api/web/cities to see available cities.", city), http.StatusNotFound)
		return
	}

	page := 1
	if pageParam := r.URL.Query().Get("page"); pageParam != "" {
		parsed, err := strconv.Atoi(pageParam)
		if err != nil {
			apiError(w, "Invalid page number. Must be an integer.", http.StatusBadRequest)
			return
		}
		page = parsed
	}

	totalItems := s.store.CityItemCount(city)
	totalPages := paginate.TotalPages(totalItems, dataset.EntriesPerPage)
	start, end, err := paginate.Slice(totalItems, page, dataset.EntriesPerPage)
	if err != nil {
		apiError(w, fmt.Sprintf("Invalid page number. Must be between 1 and %d.", totalPages), http.StatusBadRequest)
		return
	}

	inventory, err := s.store.CityInventory(city)
	if err != nil {
		apiError(w, "Failed to derive city inventory", http.StatusInternalServerError)
		return
	}

	escaped := url.QueryEscape(city)
	var nextPage, prevPage any
	if page < totalPages {
		nextPage = fmt.Sprintf("/api/web/inventory?city=%s&page=%d", escaped, page+1)
	}
	if page > 1 {
		prevPage = fmt.Sprintf("/api/web/inventory?city=%s&page=%d", escaped, page-1)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"city":        city,
		"page":        page,
		"per_page":    dataset.EntriesPerPage,
		"total_pages": totalPages,
		"total_items": totalItems,
		"items":       inventory[start:end],
		"next_page":   nextPage,
		"prev_page":   prevPage,
		"note":        "All weapon data is Base64 encoded. Decode the data field to inspect each record.",
	})
}
