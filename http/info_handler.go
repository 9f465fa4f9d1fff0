package http

import (
	"context"
	"net/http"
	"sort"
	"time"

	"miles-advisor/domain"
	"miles-advisor/repository"
)

const healthPingTimeout = 2 * time.Second

// InfoHandler serves the read-only endpoints: health and the active valuation.
type InfoHandler struct {
	cache     repository.CacheRepository
	valuation domain.Valuation
	version   string
}

func NewInfoHandler(cache repository.CacheRepository, valuation domain.Valuation, version string) *InfoHandler {
	return &InfoHandler{cache: cache, valuation: valuation, version: version}
}

type cacheStatus struct {
	Backend   string `json:"backend"`
	Connected bool   `json:"connected"`
}

type healthData struct {
	Status  string       `json:"status"`
	Version string       `json:"version"`
	Cache   *cacheStatus `json:"cache,omitempty"`
}

func (h *InfoHandler) Health(w http.ResponseWriter, r *http.Request) {
	data := healthData{Status: "healthy", Version: h.version}

	if h.cache != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()

		status := &cacheStatus{Backend: h.cache.Name(), Connected: h.cache.Ping(ctx) == nil}
		if !status.Connected {
			data.Status = "degraded"
		}
		data.Cache = status
	}

	writeSuccess(w, http.StatusOK, data, GetRequestID(r.Context()))
}

type multiplierView struct {
	From   domain.CabinClass `json:"from"`
	To     domain.CabinClass `json:"to"`
	Factor float64           `json:"factor"`
}

type valuationView struct {
	LowRate               float64                         `json:"lowRate"`
	HighRate              float64                         `json:"highRate"`
	ComfortHoursThreshold int                             `json:"comfortHoursThreshold"`
	DefaultMultiplier     float64                         `json:"defaultMultiplier"`
	Multipliers           []multiplierView                `json:"multipliers"`
	StatusLadder          []domain.EliteTier              `json:"statusLadder"`
	TravelPatterns        map[string]domain.TravelPattern `json:"travelPatterns"`
	RedemptionAdjustments map[string]float64              `json:"redemptionAdjustments"`
}

func (h *InfoHandler) Valuation(w http.ResponseWriter, r *http.Request) {
	v := h.valuation

	multipliers := make([]multiplierView, 0, len(v.Multipliers))
	for pair, factor := range v.Multipliers {
		multipliers = append(multipliers, multiplierView{From: pair.From, To: pair.To, Factor: factor})
	}
	sort.Slice(multipliers, func(i, j int) bool {
		if multipliers[i].From != multipliers[j].From {
			return multipliers[i].From.Rank() < multipliers[j].From.Rank()
		}
		return multipliers[i].To.Rank() < multipliers[j].To.Rank()
	})

	writeSuccess(w, http.StatusOK, valuationView{
		LowRate:               v.LowRate,
		HighRate:              v.HighRate,
		ComfortHoursThreshold: v.ComfortHoursThreshold,
		DefaultMultiplier:     domain.DefaultUpgradeMultiplier,
		Multipliers:           multipliers,
		StatusLadder:          v.StatusLadder,
		TravelPatterns:        v.TravelPatterns,
		RedemptionAdjustments: v.RedemptionAdjustments,
	}, GetRequestID(r.Context()))
}
