package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"lifeboard/internal/adapters/email"
	"lifeboard/internal/domain/weeklyplan"
)

// WeeklyPlanStoreForSummary defines the store interface needed by SendPlanSummary.
type WeeklyPlanStoreForSummary interface {
	GetByID(ctx context.Context, id string) (weeklyplan.WeeklyPlan, error)
}

// SendPlanSummaryInput carries input for the plan summary orchestrator.
type SendPlanSummaryInput struct {
	PlanID string
	To     string
}

// SendPlanSummaryDeps holds dependencies for SendPlanSummary.
type SendPlanSummaryDeps struct {
	PlanStore WeeklyPlanStoreForSummary
	Sender    email.Sender
	From      string
	ReplyTo   string
}

// SendPlanSummaryResult carries the provider message ID.
type SendPlanSummaryResult struct {
	MessageID string
}

var (
	ErrNoRecipient   = errors.New("recipient email is required")
	ErrNoEmailSender = errors.New("email sending is not configured")
)

// ExecuteSendPlanSummary emails the owner a summary of one weekly plan.
// PRE: PlanID refers to an existing plan
// POST: One email is queued with the plan's focus, goals, and wins
func ExecuteSendPlanSummary(ctx context.Context, input SendPlanSummaryInput, deps SendPlanSummaryDeps) (SendPlanSummaryResult, error) {
	if input.To == "" {
		return SendPlanSummaryResult{}, ErrNoRecipient
	}
	if deps.Sender == nil {
		return SendPlanSummaryResult{}, ErrNoEmailSender
	}

	plan, err := deps.PlanStore.GetByID(ctx, input.PlanID)
	if err != nil {
		return SendPlanSummaryResult{}, fmt.Errorf("load plan: %w", err)
	}

	weekLabel := plan.WeekOf.Time().Format("Mon 2 Jan 2006")
	result, err := deps.Sender.Send(ctx, email.SendRequest{
		To:      []string{input.To},
		From:    deps.From,
		ReplyTo: deps.ReplyTo,
		Subject: "Weekly plan — " + weekLabel,
		HTML:    renderPlanSummaryHTML(plan, weekLabel),
	})
	if err != nil {
		return SendPlanSummaryResult{}, err
	}

	slog.Info("plan_summary_sent", "plan_id", plan.ID, "to", input.To, "message_id", result.MessageID)
	return SendPlanSummaryResult{MessageID: result.MessageID}, nil
}

// renderPlanSummaryHTML builds the email body. Goals and wins are free text
// with one entry per line, rendered as list items.
func renderPlanSummaryHTML(plan weeklyplan.WeeklyPlan, weekLabel string) string {
	var b strings.Builder
	b.WriteString("<h2>Week of " + html.EscapeString(weekLabel) + "</h2>")
	b.WriteString("<p><strong>Focus:</strong> " + html.EscapeString(plan.Focus) + "</p>")

	writeLines := func(heading, text string) {
		lines := nonEmptyLines(text)
		if len(lines) == 0 {
			return
		}
		b.WriteString("<h3>" + heading + "</h3><ul>")
		for _, line := range lines {
			b.WriteString("<li>" + html.EscapeString(line) + "</li>")
		}
		b.WriteString("</ul>")
	}
	writeLines("Goals", plan.Goals)
	writeLines("Wins", plan.Wins)

	b.WriteString("<p style=\"color:#888\">Sent " + time.Now().Format("2 Jan 2006") + "</p>")
	return b.String()
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
