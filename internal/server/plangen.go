package server

import (
	"encoding/json"
	"net/http"

	"github.com/barkoapp/barko/internal/plan"
)

type generatePlanRequest struct {
	IncomeRange    string `json:"incomeRange"`
	FinancialGoals string `json:"financialGoals"`
	Lang           string `json:"lang"`
}

// handleGeneratePlan is the public template-plan endpoint the web client
// calls before any identity exists. The language comes from the query
// string first, then the body, with "en" as the default and for any
// unsupported code. An empty or undecodable body is treated as empty
// answers and still gets the default plan.
func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req generatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		req = generatePlanRequest{}
	}

	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = req.Lang
	}
	lang = plan.ResolveLocale(lang)

	lp := plan.Fallback(lang, req.IncomeRange, req.FinancialGoals)
	writeJSON(w, http.StatusOK, lp)
}
