package web

import (
	"net/http"
	"strings"

	"lifeboard/internal/application/listutil"
	"lifeboard/internal/domain/content"
	"lifeboard/internal/domain/timestamp"
)

// contentFilterKeys are the exact-match filter params /api/content accepts.
var contentFilterKeys = []string{"status", "platform"}

// handleContent handles GET/POST/PUT/DELETE for /api/content. GET supports
// ?status= and ?platform= exact-match filters plus ?q= title search.
func handleContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, ok := requireOwner(w, r); !ok {
		return
	}

	switch r.Method {
	case "GET":
		items, err := stores.ContentStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		fp := listutil.ParseFilterParams(r.URL.Query(), contentFilterKeys)
		items = filterContentItems(items, fp)
		if items == nil {
			items = []content.Item{}
		}
		writeJSON(w, http.StatusOK, items)

	case "POST":
		var input struct {
			Title    string            `json:"title"`
			Platform string            `json:"platform"`
			Status   string            `json:"status"`
			SendDate *timestamp.Millis `json:"send_date"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		now := timestamp.FromTime(timeNow())
		item := content.Item{
			ID:        generateID(),
			Title:     input.Title,
			Platform:  input.Platform,
			Status:    input.Status,
			SendDate:  input.SendDate,
			CreatedAt: now,
			UpdatedAt: now,
		}
		item.SetDefaultStatus()
		if err := item.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.ContentStore.Save(ctx, item); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, item)

	case "PUT":
		var input struct {
			ID       string            `json:"id"`
			Title    string            `json:"title"`
			Platform string            `json:"platform"`
			Status   string            `json:"status"`
			SendDate *timestamp.Millis `json:"send_date"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		if input.ID == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}

		item, err := stores.ContentStore.GetByID(ctx, input.ID)
		if err != nil {
			storeError(w, err)
			return
		}
		item.Title = input.Title
		item.Platform = input.Platform
		item.Status = input.Status
		item.SendDate = input.SendDate
		item.UpdatedAt = timestamp.FromTime(timeNow())
		item.SetDefaultStatus()
		if err := item.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.ContentStore.Save(ctx, item); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, item)

	case "DELETE":
		id, ok := requiredID(w, r)
		if !ok {
			return
		}
		if err := stores.ContentStore.Delete(ctx, id); err != nil {
			storeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

// filterContentItems applies the parsed list filters in memory. The calendar
// is small enough that filtering after the single List query beats widening
// the store interface.
func filterContentItems(items []content.Item, fp listutil.FilterParams) []content.Item {
	filtered := items[:0]
	for _, item := range items {
		if v, ok := fp.Filters["status"]; ok && item.Status != v {
			continue
		}
		if v, ok := fp.Filters["platform"]; ok && item.Platform != v {
			continue
		}
		if fp.Search != "" && !strings.Contains(strings.ToLower(item.Title), strings.ToLower(fp.Search)) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}
