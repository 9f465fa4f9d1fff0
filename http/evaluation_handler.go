package http

import (
	"errors"
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"miles-advisor/domain"
	"miles-advisor/service"
)

const maxBodyBytes = 1 << 20

// EvaluationHandler serves the POST /v1/* evaluator endpoints.
type EvaluationHandler struct {
	suite  *service.Suite
	cache  *service.ResultCache
	logger zerolog.Logger
}

// NewEvaluationHandler builds the handler. cache may be nil.
func NewEvaluationHandler(suite *service.Suite, cache *service.ResultCache, logger zerolog.Logger) *EvaluationHandler {
	return &EvaluationHandler{
		suite:  suite,
		cache:  cache,
		logger: logger.With().Str("component", "evaluation_handler").Logger(),
	}
}

type evaluation[Out any] struct {
	Result  Out             `json:"result"`
	Summary service.Summary `json:"summary"`
	Cached  bool            `json:"cached"`
}

// upgradeRequest carries cabins as text so that an unknown cabin is a
// validation failure rather than a decode failure.
type upgradeRequest struct {
	Miles            float64 `json:"miles"`
	Cash             float64 `json:"cash"`
	CashUpgradePrice float64 `json:"cashUpgradePrice"`
	FullFarePrice    float64 `json:"fullFarePrice"`
	TravelHours      int     `json:"travelHours"`
	From             string  `json:"from"`
	To               string  `json:"to"`
}

func (req upgradeRequest) toInput() (domain.UpgradeInput, error) {
	from, err := domain.ParseCabinClass(req.From)
	if err != nil {
		return domain.UpgradeInput{}, fmt.Errorf("from: %w", err)
	}
	to, err := domain.ParseCabinClass(req.To)
	if err != nil {
		return domain.UpgradeInput{}, fmt.Errorf("to: %w", err)
	}
	return domain.UpgradeInput{
		Miles:            req.Miles,
		Cash:             req.Cash,
		CashUpgradePrice: req.CashUpgradePrice,
		FullFarePrice:    req.FullFarePrice,
		TravelHours:      req.TravelHours,
		From:             from,
		To:               to,
	}, nil
}

func (h *EvaluationHandler) Accelerator(w http.ResponseWriter, r *http.Request) {
	var input domain.AcceleratorInput
	if !decodeBody(w, r, &input) {
		return
	}
	respond(h, w, r, "accelerator", input, h.suite.Accelerator.Evaluate, service.SummarizeAccelerator)
}

func (h *EvaluationHandler) Upgrade(w http.ResponseWriter, r *http.Request) {
	var req upgradeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, codeInvalidInput, err.Error(), GetRequestID(r.Context()))
		return
	}
	respond(h, w, r, "upgrade", input, h.suite.Upgrade.Evaluate, service.SummarizeUpgrade)
}

func (h *EvaluationHandler) TicketPurchase(w http.ResponseWriter, r *http.Request) {
	var input domain.TicketPurchaseInput
	if !decodeBody(w, r, &input) {
		return
	}
	respond(h, w, r, "ticket_purchase", input, h.suite.TicketPurchase.Compare, service.SummarizeTicketPurchase)
}

func (h *EvaluationHandler) BuyMiles(w http.ResponseWriter, r *http.Request) {
	var input domain.BuyMilesInput
	if !decodeBody(w, r, &input) {
		return
	}
	respond(h, w, r, "buy_miles", input, h.suite.BuyMiles.Evaluate, service.SummarizeBuyMiles)
}

func (h *EvaluationHandler) RelativeUpgrade(w http.ResponseWriter, r *http.Request) {
	var input domain.RelativeUpgradeInput
	if !decodeBody(w, r, &input) {
		return
	}
	respond(h, w, r, "relative_upgrade", input, service.EvaluateRelativeUpgradeCost, service.SummarizeRelativeUpgrade)
}

func (h *EvaluationHandler) StatusProgress(w http.ResponseWriter, r *http.Request) {
	var input domain.StatusProgressInput
	if !decodeBody(w, r, &input) {
		return
	}
	respond(h, w, r, "status_progress", input, h.suite.EliteStatus.Progress, service.SummarizeStatusProgress)
}

func (h *EvaluationHandler) PersonalValue(w http.ResponseWriter, r *http.Request) {
	var input domain.PersonalValueInput
	if !decodeBody(w, r, &input) {
		return
	}
	respond(h, w, r, "personal_value", input, h.suite.PersonalValue.Calculate, service.SummarizePersonalValue)
}

func (h *EvaluationHandler) StatusRun(w http.ResponseWriter, r *http.Request) {
	var input domain.StatusRunInput
	if !decodeBody(w, r, &input) {
		return
	}
	respond(h, w, r, "status_run", input, h.suite.StatusRun.Recommend, service.SummarizeStatusRun)
}

// decodeBody reads a JSON request body into dst, writing a 400 envelope
// and returning false when it cannot.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidJSON, "request body must be a valid JSON object", GetRequestID(r.Context()))
		return false
	}
	return true
}

func respond[In, Out any](
	h *EvaluationHandler,
	w http.ResponseWriter,
	r *http.Request,
	kind string,
	input In,
	evaluate func(In) (Out, error),
	summarize func(In, Out) service.Summary,
) {
	requestID := GetRequestID(r.Context())

	result, hit, err := service.Cached(r.Context(), h.cache, kind, input, evaluate)
	if err != nil {
		if isValidationError(err) {
			writeError(w, http.StatusUnprocessableEntity, codeInvalidInput, err.Error(), requestID)
			return
		}
		h.logger.Error().Err(err).Str("kind", kind).Str("requestId", requestID).Msg("evaluation failed")
		writeError(w, http.StatusInternalServerError, codeInternal, "An unexpected error occurred", requestID)
		return
	}

	writeSuccess(w, http.StatusOK, evaluation[Out]{
		Result:  result,
		Summary: summarize(input, result),
		Cached:  hit,
	}, requestID)
}

func isValidationError(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrUnknownCabinClass) ||
		errors.Is(err, domain.ErrUnknownTravelPattern)
}
