package web

import (
	"bytes"
	"net/http"

	"lifeboard/internal/domain/script"
	"lifeboard/internal/domain/timestamp"
)

// handleScripts handles GET/POST/PUT/DELETE for /api/scripts.
func handleScripts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, ok := requireOwner(w, r); !ok {
		return
	}

	switch r.Method {
	case "GET":
		if id := r.URL.Query().Get("id"); id != "" {
			sc, err := stores.ScriptStore.GetByID(ctx, id)
			if err != nil {
				storeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, sc)
			return
		}
		scripts, err := stores.ScriptStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		if scripts == nil {
			scripts = []script.Script{}
		}
		writeJSON(w, http.StatusOK, scripts)

	case "POST":
		var input struct {
			Title  string `json:"title"`
			Hook   string `json:"hook"`
			Body   string `json:"body"`
			Status string `json:"status"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		now := timestamp.FromTime(timeNow())
		sc := script.Script{
			ID:        generateID(),
			Title:     input.Title,
			Hook:      input.Hook,
			Body:      input.Body,
			Status:    input.Status,
			CreatedAt: now,
			UpdatedAt: now,
		}
		sc.SetDefaultStatus()
		if err := sc.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.ScriptStore.Save(ctx, sc); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, sc)

	case "PUT":
		var input struct {
			ID     string `json:"id"`
			Title  string `json:"title"`
			Hook   string `json:"hook"`
			Body   string `json:"body"`
			Status string `json:"status"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		if input.ID == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}

		sc, err := stores.ScriptStore.GetByID(ctx, input.ID)
		if err != nil {
			storeError(w, err)
			return
		}
		sc.Title = input.Title
		sc.Hook = input.Hook
		sc.Body = input.Body
		sc.Status = input.Status
		sc.UpdatedAt = timestamp.FromTime(timeNow())
		sc.SetDefaultStatus()
		if err := sc.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.ScriptStore.Save(ctx, sc); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sc)

	case "DELETE":
		id, ok := requiredID(w, r)
		if !ok {
			return
		}
		if err := stores.ScriptStore.Delete(ctx, id); err != nil {
			storeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

// handleScriptPreview handles GET /api/scripts/preview?id=X: renders the
// script body's markdown to HTML server-side. Raw HTML in the body is
// escaped by the renderer.
func handleScriptPreview(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireOwner(w, r); !ok {
		return
	}
	id, ok := requiredID(w, r)
	if !ok {
		return
	}

	sc, err := stores.ScriptStore.GetByID(r.Context(), id)
	if err != nil {
		storeError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(sc.Body), &buf); err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"id":   sc.ID,
		"html": buf.String(),
	})
}
