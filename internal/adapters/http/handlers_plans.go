package web

import (
	"net/http"

	"lifeboard/internal/application/listutil"
	"lifeboard/internal/application/orchestrators"
	"lifeboard/internal/domain/timestamp"
	"lifeboard/internal/domain/weeklyplan"
)

// planPage is the paged response shape for weekly plan lists.
type planPage struct {
	Plans    []weeklyplan.WeeklyPlan `json:"plans"`
	PageInfo listutil.PageInfo       `json:"page_info"`
}

// handleWeeklyPlans handles GET/POST/PUT/DELETE for /api/weekly-plans.
func handleWeeklyPlans(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, ok := requireOwner(w, r); !ok {
		return
	}

	switch r.Method {
	case "GET":
		if id := r.URL.Query().Get("id"); id != "" {
			p, err := stores.WeeklyPlanStore.GetByID(ctx, id)
			if err != nil {
				storeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, p)
			return
		}

		pp := listutil.ParsePageParams(r.URL.Query())
		total, err := stores.WeeklyPlanStore.Count(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		// Page size is fixed; a ?per_page= override is ignored.
		pageInfo := listutil.NewPageInfo(pp.Page, listutil.DefaultPerPage, total)
		plans, err := stores.WeeklyPlanStore.List(ctx, pageInfo.PerPage, pageInfo.Offset())
		if err != nil {
			internalError(w, err)
			return
		}
		if plans == nil {
			plans = []weeklyplan.WeeklyPlan{}
		}
		writeJSON(w, http.StatusOK, planPage{Plans: plans, PageInfo: pageInfo})

	case "POST":
		var input struct {
			WeekOf timestamp.Millis `json:"week_of"`
			Focus  string           `json:"focus"`
			Goals  string           `json:"goals"`
			Wins   string           `json:"wins"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		now := timestamp.FromTime(timeNow())
		p := weeklyplan.WeeklyPlan{
			ID:        generateID(),
			WeekOf:    input.WeekOf,
			Focus:     input.Focus,
			Goals:     input.Goals,
			Wins:      input.Wins,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := p.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.WeeklyPlanStore.Save(ctx, p); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, p)

	case "PUT":
		var input struct {
			ID     string           `json:"id"`
			WeekOf timestamp.Millis `json:"week_of"`
			Focus  string           `json:"focus"`
			Goals  string           `json:"goals"`
			Wins   string           `json:"wins"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		if input.ID == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}

		p, err := stores.WeeklyPlanStore.GetByID(ctx, input.ID)
		if err != nil {
			storeError(w, err)
			return
		}
		p.WeekOf = input.WeekOf
		p.Focus = input.Focus
		p.Goals = input.Goals
		p.Wins = input.Wins
		p.UpdatedAt = timestamp.FromTime(timeNow())
		if err := p.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.WeeklyPlanStore.Save(ctx, p); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)

	case "DELETE":
		id, ok := requiredID(w, r)
		if !ok {
			return
		}
		if err := stores.WeeklyPlanStore.Delete(ctx, id); err != nil {
			storeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

// handleWeeklyPlanEmail handles POST /api/weekly-plans/email: emails the
// logged-in owner a summary of one plan.
func handleWeeklyPlanEmail(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess, ok := requireOwner(w, r)
	if !ok {
		return
	}

	var input struct {
		PlanID string `json:"plan_id"`
	}
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	result, err := orchestrators.ExecuteSendPlanSummary(r.Context(), orchestrators.SendPlanSummaryInput{
		PlanID: input.PlanID,
		To:     sess.Email,
	}, orchestrators.SendPlanSummaryDeps{
		PlanStore: stores.WeeklyPlanStore,
		Sender:    emailSender,
		From:      emailFromAddress,
		ReplyTo:   emailReplyTo,
	})
	if err != nil {
		if err == orchestrators.ErrNoEmailSender {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		// A wrapped sql.ErrNoRows means the plan id was bad.
		storeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message_id": result.MessageID})
}
