// Package server exposes the planning calculator as a JSON HTTP API.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/finance-planner/internal/config"
	"github.com/iwvelando/finance-planner/internal/planner"
	"github.com/iwvelando/finance-planner/pkg/advice"
	"github.com/iwvelando/finance-planner/pkg/constants"
	"github.com/iwvelando/finance-planner/pkg/finance"
	"github.com/iwvelando/finance-planner/pkg/output"
	"github.com/iwvelando/finance-planner/pkg/tax"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger         *zap.Logger
	maxRequestSize int64
	version        string
}

// NewHandler constructs the HTTP handler that serves the planning API.
func NewHandler(logger *zap.Logger, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxRequestSize: maxRequestSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Full plan from a configuration payload
	mux.HandleFunc("/api/plan", h.handlePlan)

	// Single-operation endpoints
	mux.HandleFunc("/api/budget", h.handleBudget)
	mux.HandleFunc("/api/goal", h.handleGoal)
	mux.HandleFunc("/api/tax", h.handleTax)

	// Keyword intent routing for free-text questions
	mux.HandleFunc("/api/chat", h.handleChat)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type planResponse struct {
	Plan      *planner.Plan `json:"plan"`
	CSV       string        `json:"csv"`
	Warnings  []string      `json:"warnings,omitempty"`
	Duration  string        `json:"duration"`
	RequestID string        `json:"requestId"`
}

type budgetRequest struct {
	MonthlyIncome decimal.Decimal   `json:"monthlyIncome"`
	Expenses      []finance.Expense `json:"expenses"`
	Persona       string            `json:"persona"`
	TopExpenses   int               `json:"topExpenses"`
}

type budgetResponse struct {
	Summary   *finance.BudgetAnalysis `json:"summary"`
	Insights  []string                `json:"insights"`
	RequestID string                  `json:"requestId"`
}

type goalRequest struct {
	Name           string          `json:"name"`
	TargetAmount   decimal.Decimal `json:"targetAmount"`
	CurrentSavings decimal.Decimal `json:"currentSavings"`
	HorizonMonths  int             `json:"horizonMonths"`
	MonthlyIncome  decimal.Decimal `json:"monthlyIncome"`
	Persona        string          `json:"persona"`
}

type goalResponse struct {
	Plan      *finance.GoalPlan `json:"plan"`
	Advice    string            `json:"advice"`
	RequestID string            `json:"requestId"`
}

type taxRequest struct {
	GrossIncome decimal.Decimal            `json:"grossIncome"`
	Deductions  map[string]decimal.Decimal `json:"deductions"`
	Regime      string                     `json:"regime"`
}

type taxResponse struct {
	Computation *tax.Computation `json:"computation,omitempty"`
	Comparison  *tax.Comparison  `json:"comparison,omitempty"`
	Advice      string           `json:"advice"`
	RequestID   string           `json:"requestId"`
}

type chatRequest struct {
	Question string `json:"question"`
	Persona  string `json:"persona"`
}

type chatResponse struct {
	Intent    advice.Intent `json:"intent"`
	Context   string        `json:"context"`
	Response  string        `json:"response"`
	RequestID string        `json:"requestId"`
}

func (h *handler) handlePlan(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.begin(w, r, http.MethodPost)
	if !ok {
		return
	}
	start := time.Now()

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest,
			fmt.Sprintf("failed to decode configuration: %v", err), "server.handlePlan", requestID)
		return
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	configPayload := payload
	if rawConfig, ok := payload["config"]; ok {
		cfgMap, ok := rawConfig.(map[string]interface{})
		if !ok {
			h.respondError(w, http.StatusBadRequest,
				"invalid config payload: expected object", "server.handlePlan", requestID)
			return
		}
		configPayload = cfgMap
	}

	configBytes, err := yaml.Marshal(configPayload)
	if err != nil {
		h.respondError(w, http.StatusBadRequest,
			fmt.Sprintf("failed to encode configuration: %v", err), "server.handlePlan", requestID)
		return
	}

	cfg, err := config.LoadConfigurationFromReader(bytes.NewReader(configBytes))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handlePlan", requestID)
		return
	}

	warnings := cfg.ValidateConfiguration()

	plan, err := planner.BuildPlan(h.logger, *cfg)
	if err != nil {
		h.respondError(w, statusForError(err),
			fmt.Sprintf("failed to build plan: %v", err), "server.handlePlan", requestID)
		return
	}

	elapsed := time.Since(start)
	h.logger.Info("plan computed",
		zap.String("op", "server.handlePlan"),
		zap.String("requestId", requestID),
		zap.Int("goals", len(plan.Goals)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, planResponse{
		Plan:      plan,
		CSV:       output.CsvString(plan),
		Warnings:  warnings,
		Duration:  elapsed.String(),
		RequestID: requestID,
	})
}

func (h *handler) handleBudget(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.begin(w, r, http.MethodPost)
	if !ok {
		return
	}

	var req budgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest,
			fmt.Sprintf("failed to decode request: %v", err), "server.handleBudget", requestID)
		return
	}

	topN := req.TopExpenses
	if topN == 0 {
		topN = constants.DefaultTopExpenses
	}

	profile := finance.Profile{
		MonthlyIncome: req.MonthlyIncome,
		Expenses:      req.Expenses,
		Persona:       finance.Persona(req.Persona),
	}

	analysis, err := finance.AnalyzeBudget(profile, topN)
	if err != nil {
		h.respondError(w, statusForError(err), err.Error(), "server.handleBudget", requestID)
		return
	}

	h.logger.Info("budget analyzed",
		zap.String("op", "server.handleBudget"),
		zap.String("requestId", requestID),
		zap.String("savingsRate", analysis.SavingsRate.String()),
	)

	h.writeJSON(w, http.StatusOK, budgetResponse{
		Summary:   analysis,
		Insights:  advice.BudgetInsights(analysis),
		RequestID: requestID,
	})
}

func (h *handler) handleGoal(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.begin(w, r, http.MethodPost)
	if !ok {
		return
	}

	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest,
			fmt.Sprintf("failed to decode request: %v", err), "server.handleGoal", requestID)
		return
	}

	plan, err := finance.PlanGoal(req.MonthlyIncome, finance.GoalSpec{
		Name:           req.Name,
		TargetAmount:   req.TargetAmount,
		CurrentSavings: req.CurrentSavings,
		HorizonMonths:  req.HorizonMonths,
	})
	if err != nil {
		h.respondError(w, statusForError(err), err.Error(), "server.handleGoal", requestID)
		return
	}

	h.logger.Info("goal planned",
		zap.String("op", "server.handleGoal"),
		zap.String("requestId", requestID),
		zap.String("goal", req.Name),
		zap.String("feasibility", string(plan.Feasibility)),
	)

	h.writeJSON(w, http.StatusOK, goalResponse{
		Plan:      plan,
		Advice:    advice.GoalAdvice(plan),
		RequestID: requestID,
	})
}

func (h *handler) handleTax(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.begin(w, r, http.MethodPost)
	if !ok {
		return
	}

	var req taxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest,
			fmt.Sprintf("failed to decode request: %v", err), "server.handleTax", requestID)
		return
	}

	deductions := tax.DeductionSet(req.Deductions)
	resp := taxResponse{RequestID: requestID}

	switch req.Regime {
	case "", config.TaxModeCompare:
		comparison, err := tax.CompareRegimes(req.GrossIncome, deductions)
		if err != nil {
			h.respondError(w, statusForError(err), err.Error(), "server.handleTax", requestID)
			return
		}
		resp.Comparison = comparison
		resp.Advice = advice.TaxAdvice(comparison)
	default:
		policy, err := tax.DefaultPolicy(tax.Regime(req.Regime))
		if err != nil {
			h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleTax", requestID)
			return
		}
		computation, err := tax.Compute(req.GrossIncome, deductions, policy)
		if err != nil {
			h.respondError(w, statusForError(err), err.Error(), "server.handleTax", requestID)
			return
		}
		resp.Computation = computation
		resp.Advice = advice.TaxSummary(computation)
	}

	h.logger.Info("tax computed",
		zap.String("op", "server.handleTax"),
		zap.String("requestId", requestID),
		zap.String("regime", req.Regime),
	)

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleChat(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.begin(w, r, http.MethodPost)
	if !ok {
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest,
			fmt.Sprintf("failed to decode request: %v", err), "server.handleChat", requestID)
		return
	}

	intent := advice.RouteIntent(req.Question)

	h.logger.Info("chat routed",
		zap.String("op", "server.handleChat"),
		zap.String("requestId", requestID),
		zap.String("intent", string(intent)),
	)

	h.writeJSON(w, http.StatusOK, chatResponse{
		Intent:    intent,
		Context:   advice.PersonaContext(finance.Persona(req.Persona), intent),
		Response:  advice.FallbackResponse(),
		RequestID: requestID,
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// begin enforces the method, applies the body size limit, and assigns a
// request ID. The bool result reports whether the handler should proceed.
func (h *handler) begin(w http.ResponseWriter, r *http.Request, method string) (string, bool) {
	if r.Method != method {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return "", false
	}
	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}
	return uuid.NewString(), true
}

// statusForError maps calculator error kinds to HTTP statuses.
func statusForError(err error) int {
	switch {
	case errors.Is(err, finance.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, finance.ErrDivisionUndefined):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg, op, requestID string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.String("requestId", requestID),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg, "requestId": requestID})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
