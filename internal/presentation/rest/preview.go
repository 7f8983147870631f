package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/finora/liability-service/internal/application/dto"
	"github.com/finora/liability-service/internal/application/usecase"
	"github.com/finora/liability-service/internal/domain/model"
)

// PreviewHandler serves the interactive impact-preview endpoint. Front ends
// call it on every debounced edit, so it is read-only and cheap.
type PreviewHandler struct {
	previewImpact *usecase.PreviewImpactUseCase
	logger        *slog.Logger
}

// NewPreviewHandler creates the preview HTTP handler.
func NewPreviewHandler(previewImpact *usecase.PreviewImpactUseCase, logger *slog.Logger) *PreviewHandler {
	return &PreviewHandler{previewImpact: previewImpact, logger: logger}
}

// RegisterRoutes attaches the preview route to the given router.
func (h *PreviewHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/v1/liabilities/{id}/impact-preview", h.preview).Methods(http.MethodPost)
}

type previewRequestBody struct {
	ProposedField  string `json:"proposed_field"`
	Amount         string `json:"amount"`
	Date           string `json:"date"`
	ConstraintMode string `json:"constraint_mode"`
	CustomPayment  string `json:"custom_payment"`
}

func (h *PreviewHandler) preview(w http.ResponseWriter, r *http.Request) {
	liabilityID := mux.Vars(r)["id"]

	var body previewRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.toRequest(liabilityID, body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	preview, err := h.previewImpact.Execute(r.Context(), req)
	if err != nil {
		h.logger.DebugContext(r.Context(), "impact preview rejected",
			"liability_id", liabilityID,
			"error", err,
		)
		writeError(w, previewStatusCode(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, preview)
}

func (h *PreviewHandler) toRequest(liabilityID string, body previewRequestBody) (dto.PreviewImpactRequest, error) {
	req := dto.PreviewImpactRequest{
		LiabilityID:    liabilityID,
		ProposedField:  body.ProposedField,
		ConstraintMode: body.ConstraintMode,
	}

	var err error
	if req.Amount, err = parseOptionalDecimal(body.Amount); err != nil {
		return dto.PreviewImpactRequest{}, errors.New("invalid amount")
	}
	if req.CustomPayment, err = parseOptionalDecimal(body.CustomPayment); err != nil {
		return dto.PreviewImpactRequest{}, errors.New("invalid custom_payment")
	}
	if req.Date, err = parseOptionalTime(body.Date); err != nil {
		return dto.PreviewImpactRequest{}, errors.New("invalid date")
	}
	return req, nil
}

func previewStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrLiabilityNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidTerm),
		errors.Is(err, model.ErrBelowCurrentBalance):
		return http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrNonAmortizing):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
