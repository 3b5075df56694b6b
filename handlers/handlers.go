// Package handlers provides HTTP request handlers for the treatment finder
// API: the analyze endpoint that turns a health concern into a structured
// treatment comparison, and the health check. Responses are always well-formed
// JSON envelopes; user-visible failures carry an actionable message instead of
// a raw error.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/cleanjesus/medmate-api/conditions"
	"github.com/cleanjesus/medmate-api/data"
	"github.com/cleanjesus/medmate-api/logging"
	"github.com/cleanjesus/medmate-api/metrics"
	"github.com/cleanjesus/medmate-api/treatments"
	"github.com/cleanjesus/medmate-api/validation"
)

// maxConditionsPerRequest caps how many conditions one request may process,
// regardless of how many were identified or extracted.
const maxConditionsPerRequest = 2

// noConditionsMessage guides the caller when nothing could be identified.
const noConditionsMessage = "No medical conditions identified. " +
	`Please provide specific condition names such as "Type 2 Diabetes" or "Hypertension".`

// TreatmentFinder is the aggregator contract the analyze handler depends on.
type TreatmentFinder interface {
	FindOptions(ctx context.Context, condition string) treatments.Result
	FindOptionsForMedications(ctx context.Context, condition string, meds []string) treatments.Result
}

// AnalyzeRequest is the caller input contract. Pre-identified conditions take
// precedence over extraction from the primary concern.
type AnalyzeRequest struct {
	PrimaryConcern           string   `json:"primaryConcern"`
	PreIdentifiedConditions  []string `json:"preIdentifiedConditions"`
	PreIdentifiedMedications []string `json:"preIdentifiedMedications"`
}

// ConservativeGroup bundles the non-radical recommendations for a condition.
type ConservativeGroup struct {
	Treatments   []string `json:"treatments"`
	Lifestyle    []string `json:"lifestyle"`
	Alternatives []string `json:"alternatives"`
}

// ConditionTreatments is the per-condition block of the response. Radical is
// always empty; the category exists in the schema but is intentionally
// disabled.
type ConditionTreatments struct {
	Condition    string            `json:"condition"`
	Conservative ConservativeGroup `json:"conservative"`
	Radical      []string          `json:"radical"`
}

// AnalyzeResponse is the top-level result envelope.
type AnalyzeResponse struct {
	Message           string                `json:"message,omitempty"`
	Conditions        []string              `json:"conditions"`
	TreatmentOptions  []ConditionTreatments `json:"treatmentOptions"`
	SearchedTimestamp string                `json:"searchedTimestamp"`
}

// RespondWithJSON writes a JSON response
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		logging.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		logging.Error("Failed to write JSON response", "error", err)
	}
}

func emptyEnvelope(message string) AnalyzeResponse {
	return AnalyzeResponse{
		Message:           message,
		Conditions:        []string{},
		TreatmentOptions:  []ConditionTreatments{},
		SearchedTimestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Analyze handles POST /analyze. Conditions are resolved with the precedence
// pre-identified > extracted from the primary concern; at most two are
// processed, each strictly sequentially.
func Analyze(finder TreatmentFinder, stats *data.Stats) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logging.Warn("Invalid analyze request body", "error", err)
			RespondWithJSON(w, http.StatusBadRequest, emptyEnvelope("Invalid request body: expected a JSON object."))
			return
		}

		if err := validation.ValidateConcern(req.PrimaryConcern); err != nil {
			logging.Warn("Rejected primary concern", "error", err)
			RespondWithJSON(w, http.StatusBadRequest, emptyEnvelope("The primary concern could not be processed. Please rephrase it using plain text."))
			return
		}
		for _, label := range append(append([]string{}, req.PreIdentifiedConditions...), req.PreIdentifiedMedications...) {
			if err := validation.ValidateLabel(label); err != nil {
				logging.Warn("Rejected pre-identified label", "error", err)
				RespondWithJSON(w, http.StatusBadRequest, emptyEnvelope("A provided condition or medication name could not be processed."))
				return
			}
		}

		conditionList := resolveConditions(req)
		if len(conditionList) == 0 {
			logging.Info("No conditions identified", "concern_present", req.PrimaryConcern != "")
			RespondWithJSON(w, http.StatusOK, emptyEnvelope(noConditionsMessage))
			return
		}

		logging.Info("Analyzing conditions", "conditions", conditionList)

		response := AnalyzeResponse{
			Conditions:       conditionList,
			TreatmentOptions: make([]ConditionTreatments, 0, len(conditionList)),
		}

		fallbacks := 0
		for _, condition := range conditionList {
			var result treatments.Result
			if len(req.PreIdentifiedMedications) > 0 {
				result = finder.FindOptionsForMedications(r.Context(), condition, req.PreIdentifiedMedications)
			} else {
				result = finder.FindOptions(r.Context(), condition)
			}
			if result.Fallback {
				fallbacks++
			}

			response.TreatmentOptions = append(response.TreatmentOptions, assembleCondition(result))
		}

		response.SearchedTimestamp = time.Now().UTC().Format(time.RFC3339)

		stats.RecordAnalysis(len(conditionList), fallbacks)
		metrics.AnalysesTotal.Inc()

		RespondWithJSON(w, http.StatusOK, response)
	}
}

// resolveConditions applies the input precedence rules and caps the result.
func resolveConditions(req AnalyzeRequest) []string {
	var list []string
	if len(req.PreIdentifiedConditions) > 0 {
		list = req.PreIdentifiedConditions
	} else if req.PrimaryConcern != "" {
		list = conditions.Extract(req.PrimaryConcern)
	}

	if len(list) > maxConditionsPerRequest {
		list = list[:maxConditionsPerRequest]
	}
	return list
}

// assembleCondition converts an aggregation result into the output schema
// block for one condition.
func assembleCondition(result treatments.Result) ConditionTreatments {
	standard := formatOptions(result.StandardOptions())
	if len(standard) == 0 {
		standard = []string{"Standard treatment for " + result.Condition}
	}

	alternatives := formatOptions(result.ConservativeOptions())
	if len(alternatives) == 0 {
		alternatives = []string{"Conservative option for " + result.Condition}
	}

	return ConditionTreatments{
		Condition: result.Condition,
		Conservative: ConservativeGroup{
			Treatments: standard,
			Lifestyle: []string{
				"Diet: Appropriate nutrition can help manage " + result.Condition,
				"Exercise: Regular physical activity tailored to your health status",
			},
			Alternatives: alternatives,
		},
		Radical: []string{},
	}
}

func formatOptions(options []treatments.Option) []string {
	formatted := make([]string, 0, len(options))
	for _, opt := range options {
		formatted = append(formatted,
			opt.Name+": "+opt.Description+" ("+opt.PriceCategory+" - "+opt.Price+")")
	}
	return formatted
}
