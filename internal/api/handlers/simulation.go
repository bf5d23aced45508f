package handlers

import (
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"market-intel/internal/analysis"
	"market-intel/internal/api/models"
	"market-intel/internal/metrics"
	"market-intel/internal/model"
	"market-intel/internal/simulation"
	"market-intel/internal/store"
)

// SimulationHandler runs scenario simulations. Each request gets its own
// engine; seed 0 draws a fresh seed per request unless the body sets one.
type SimulationHandler struct {
	store store.Store
	rec   *metrics.Recorder
	log   zerolog.Logger
	seed  uint64
}

func NewSimulationHandler(st store.Store, rec *metrics.Recorder, log zerolog.Logger, seed uint64) *SimulationHandler {
	return &SimulationHandler{store: st, rec: rec, log: log, seed: seed}
}

func (h *SimulationHandler) resolveSeed(requested *uint64) uint64 {
	switch {
	case requested != nil:
		return *requested
	case h.seed != 0:
		return h.seed
	default:
		return rand.Uint64()
	}
}

func (h *SimulationHandler) engine(seed uint64) *simulation.Engine {
	return simulation.NewSeeded(seed).WithLogger(h.log)
}

// PriceWar handles POST /api/v1/simulations/price-war
func (h *SimulationHandler) PriceWar(c *gin.Context) {
	var req models.PriceWarRequest
	if !bindJSON(c, &req) {
		return
	}

	start := time.Now()
	res, err := h.engine(h.resolveSeed(req.Seed)).SimulatePriceWar(req.PriceWarParams)
	observe(h.rec, string(model.ScenarioPriceWar), start, err)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PriceWarResponse{
		Success:        true,
		ID:             save(c, h.store, h.log, string(res.Scenario), res),
		PriceWarResult: res,
	})
}

// Compare handles POST /api/v1/simulations/price-war/compare. Every
// profile runs against the same random stream.
func (h *SimulationHandler) Compare(c *gin.Context) {
	var req models.PriceWarRequest
	if !bindJSON(c, &req) {
		return
	}

	seed := h.resolveSeed(req.Seed)
	start := time.Now()
	ranked, err := analysis.RankStrategies(func() *simulation.Engine { return h.engine(seed) }, req.PriceWarParams)
	observe(h.rec, "price-war-compare", start, err)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CompareResponse{
		Success:  true,
		ID:       save(c, h.store, h.log, "price-war-compare", ranked),
		Rankings: ranked,
	})
}

// Launch handles POST /api/v1/simulations/new-product
func (h *SimulationHandler) Launch(c *gin.Context) {
	var req models.LaunchRequest
	if !bindJSON(c, &req) {
		return
	}

	start := time.Now()
	res, err := h.engine(h.resolveSeed(req.Seed)).SimulateNewProductLaunch(req.LaunchParams)
	observe(h.rec, string(model.ScenarioNewProduct), start, err)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.LaunchResponse{
		Success:      true,
		ID:           save(c, h.store, h.log, string(res.Scenario), res),
		LaunchResult: res,
	})
}

// Promotion handles POST /api/v1/simulations/promotion
func (h *SimulationHandler) Promotion(c *gin.Context) {
	var req models.PromotionRequest
	if !bindJSON(c, &req) {
		return
	}
	if mode := req.CompetitorResponse; mode != "" && !mode.Valid() {
		respondError(c, model.Invalid("competitorResponse", "must be one of [none match undercut]"))
		return
	}

	start := time.Now()
	res, err := h.engine(h.resolveSeed(nil)).SimulatePromotion(req.PromotionParams)
	observe(h.rec, string(model.ScenarioPromotion), start, err)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PromotionResponse{
		Success:         true,
		ID:              save(c, h.store, h.log, string(res.Scenario), res),
		PromotionResult: res,
	})
}

// Get handles GET /api/v1/simulations/:id
func (h *SimulationHandler) Get(c *gin.Context) {
	rec, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.StoredResultResponse{Success: true, Record: rec})
}

// save stores result and returns its ID. A store failure is logged and
// yields an empty ID; the computed result is still returned.
func save(c *gin.Context, st store.Store, log zerolog.Logger, kind string, result any) string {
	if st == nil {
		return ""
	}
	id, err := st.Save(c.Request.Context(), kind, result)
	if err != nil {
		log.Error().Err(err).Str("kind", kind).Msg("store result")
		return ""
	}
	return id
}
