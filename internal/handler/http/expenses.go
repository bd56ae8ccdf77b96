package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mlukin/go-expense-tracker/internal/logger"
	"github.com/mlukin/go-expense-tracker/internal/utils"
	"github.com/mlukin/go-expense-tracker/models"
)

// listExpenses handles GET /api/expenses. Supported query parameters:
// category, year, month, page and limit. Unparsable numeric parameters are
// treated as absent, matching the lenient parsing of the listing endpoint's
// defaults. The response is a JSON array, empty when nothing matches.
func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	params := r.URL.Query()
	query := models.ExpenseQuery{
		Category: models.Category(params.Get("category")),
		Year:     atoiOrZero(params.Get("year")),
		Month:    atoiOrZero(params.Get("month")),
		Page:     atoiOrZero(params.Get("page")),
		Limit:    atoiOrZero(params.Get("limit")),
	}

	expenses, err := h.services.ExpenseService.ListExpenses(ctx, userID, query)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("expense listing failed")
		utils.WriteJSONError(w, messageFromError(err), statusFromError(err))
		return
	}

	if expenses == nil {
		expenses = []models.Expense{}
	}

	utils.WriteJSON(w, expenses, http.StatusOK)
}

// expenseSummary handles GET /api/expenses/summary. The aggregate always
// covers ALL of the caller's expenses, regardless of any listing filters.
func (h *Handler) expenseSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	summary, err := h.services.ExpenseService.ExpenseSummary(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("expense summary failed")
		utils.WriteJSONError(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}

// createExpense handles POST /api/expenses and answers 201 Created with the
// stored record. The owner always comes from the token, never the body.
func (h *Handler) createExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var request models.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.ExpenseService.CreateExpense(ctx, userID, request)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("expense creation failed")
		utils.WriteJSONError(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// updateExpense handles PUT /api/expenses/{id}. Only the owner may patch a
// record; a well-formed patch of someone else's expense answers 401.
func (h *Handler) updateExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	expenseID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid expense id in path")
		utils.WriteJSONError(w, "invalid expense id", http.StatusBadRequest)
		return
	}

	var update models.ExpenseUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.ExpenseService.UpdateExpense(ctx, userID, expenseID, update)
	if err != nil {
		log.Err(err).Int64("expense_id", expenseID).Msg("expense update failed")
		utils.WriteJSONError(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// deleteExpense handles DELETE /api/expenses/{id} and confirms the removal
// with the deleted record's id.
func (h *Handler) deleteExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	expenseID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid expense id in path")
		utils.WriteJSONError(w, "invalid expense id", http.StatusBadRequest)
		return
	}

	if err := h.services.ExpenseService.DeleteExpense(ctx, userID, expenseID); err != nil {
		log.Err(err).Int64("expense_id", expenseID).Msg("expense deletion failed")
		utils.WriteJSONError(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.DeleteExpenseResponse{
		ID:      expenseID,
		Message: "Expense deleted",
	}, http.StatusOK)
}

// atoiOrZero parses a decimal query parameter, treating anything unparsable
// as zero so the service applies its defaults.
func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
