package handler

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/gowallet/internal/adapter/http/dto"
	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
)

// csvHeader is the export header row. Amount is the entry's unsigned amount,
// Type is the entry type and Operation Type its direction; Date uses the
// entry's creation time.
var csvHeader = []string{"ID", "Amount", "Type", "Operation Type", "Date", "Wallet ID", "From Currency", "To Currency"}

// EntryHandler handles deposit/withdrawal and entry query requests.
type EntryHandler struct {
	entryUC *usecase.EntryUseCase
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(entryUC *usecase.EntryUseCase) *EntryHandler {
	return &EntryHandler{entryUC: entryUC}
}

// Deposit creates a deposit entry on a wallet.
func (h *EntryHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.createEntry(w, r, h.entryUC.CreateDeposit)
}

// Withdraw creates a withdrawal entry on a wallet.
func (h *EntryHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.createEntry(w, r, h.entryUC.CreateWithdrawal)
}

func (h *EntryHandler) createEntry(
	w http.ResponseWriter,
	r *http.Request,
	create func(context.Context, usecase.CreateEntryInput) (*domain.Entry, error),
) {
	userID := chi.URLParam(r, "userID")
	walletID := chi.URLParam(r, "walletID")

	var req dto.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := create(r.Context(), req.ToUseCaseInput(userID, walletID))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.EntryFromDomain(entry))
}

// List returns a wallet's entries over a date range.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	input, ok := h.rangeInput(w, r)
	if !ok {
		return
	}

	entries, err := h.entryUC.ListEntries(r.Context(), input)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.EntriesFromDomain(entries))
}

// Summary returns total debit/credit and the entries over a date range.
func (h *EntryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	input, ok := h.rangeInput(w, r)
	if !ok {
		return
	}

	summary, err := h.entryUC.Summarize(r.Context(), input)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.SummaryFromDomain(summary))
}

// Export streams a wallet's entries over a date range as CSV.
func (h *EntryHandler) Export(w http.ResponseWriter, r *http.Request) {
	input, ok := h.rangeInput(w, r)
	if !ok {
		return
	}

	entries, err := h.entryUC.ListEntries(r.Context(), input)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="entries.csv"`)

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return
	}

	for _, e := range entries {
		record := []string{
			e.ID,
			e.Amount.String(),
			string(e.Type),
			string(e.Direction),
			e.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			e.WalletID,
			string(e.FromCurrency),
			string(e.ToCurrency),
		}
		if err := cw.Write(record); err != nil {
			return
		}
	}

	cw.Flush()
}

func (h *EntryHandler) rangeInput(w http.ResponseWriter, r *http.Request) (usecase.EntriesRangeInput, bool) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	if start == "" || end == "" {
		writeError(w, http.StatusBadRequest, "missing start or end parameter", "")
		return usecase.EntriesRangeInput{}, false
	}

	startAt, endAt, err := dto.ParseDateRange(start, end)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date range", err.Error())
		return usecase.EntriesRangeInput{}, false
	}

	return usecase.EntriesRangeInput{
		UserID:   chi.URLParam(r, "userID"),
		WalletID: chi.URLParam(r, "walletID"),
		Start:    startAt,
		End:      endAt,
	}, true
}
