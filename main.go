package main

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	prometheusotel "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"kitsearch/internal/catalog"
	"kitsearch/internal/config"
	"kitsearch/internal/ingest"
	"kitsearch/internal/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx := context.Background()

	cfg := config.DefaultConfig()

	configPath := flag.String("config", "", "Path to a TOML or YAML config file")
	listen := flag.String("listen", "", "Override the listen address (e.g. :8080)")
	productsPath := flag.String("products", "", "Override the products JSON path")
	rebuild := flag.Bool("rebuild", false, "Rebuild the catalog from the raw scrape and exit")
	flag.Parse()

	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if envPath := os.Getenv("KITSEARCH_PRODUCTS_PATH"); envPath != "" {
		cfg.Paths.ProductsJSON = envPath
	}

	if *listen != "" {
		cfg.Server.Listen = *listen
	}
	if *productsPath != "" {
		cfg.Paths.ProductsJSON = *productsPath
	}

	teams := catalog.BuiltinTeams()
	if cfg.Paths.TeamsFile != "" {
		loaded, err := catalog.LoadTeamsFile(cfg.Paths.TeamsFile)
		if err != nil {
			logger.Error("failed to load teams file", "path", cfg.Paths.TeamsFile, "error", err)
			os.Exit(1)
		}
		teams = loaded
	}
	db, collisions := catalog.NewDatabase(teams)
	for _, c := range collisions {
		logger.Warn("alias collision", "detail", c)
	}

	builder := catalog.NewBuilder(db, pricingFromConfig(cfg.Pricing), cfg.Resolver.IngestCutoff)
	pipeline := ingest.NewPipeline(builder, catalogVersions(cfg.Catalogs), logger)
	storage := store.New(cfg.Paths.ProductsJSON, cfg.Paths.ProductsDB)

	if *rebuild {
		if err := runRebuild(cfg, pipeline, storage, logger); err != nil {
			logger.Error("rebuild failed", "error", err)
			os.Exit(1)
		}
		return
	}

	index := catalog.NewIndex(db, cfg.Resolver.QueryCutoff, cfg.Search.PerPage, cfg.Search.MaxPerPage)
	products, err := storage.LoadProducts()
	if err != nil {
		logger.Error("failed to load products", "path", cfg.Paths.ProductsJSON, "error", err)
		os.Exit(1)
	}
	if products == nil {
		logger.Warn("no product snapshot found, starting with an empty catalog", "path", cfg.Paths.ProductsJSON)
	}
	index.Load(products)

	telemetry := newTelemetry(ctx, logger, cfg.Metrics.Enabled != nil && *cfg.Metrics.Enabled)
	telemetry.observeCatalog(index.Stats())

	server := newAPIServer(index, storage, pipeline, cfg, telemetry, logger)
	mux := http.NewServeMux()
	mux.HandleFunc("/api/search", server.handleSearch)
	mux.HandleFunc("/api/suggest", server.handleSuggest)
	mux.HandleFunc("/api/teams", server.handleTeams)
	mux.HandleFunc("/api/filters", server.handleFilters)
	mux.HandleFunc("/api/product/", server.handleProduct)
	mux.HandleFunc("/api/stats", server.handleStats)
	mux.HandleFunc("/api/health", server.handleHealth)
	mux.HandleFunc("/api/ready", server.handleReadiness)
	if telemetry.enabled {
		mux.HandleFunc("/api/metrics", telemetry.handleMetrics)
	}
	mux.HandleFunc("/admin/unmatched", server.requireAdmin(server.handleUnmatched))
	mux.HandleFunc("/admin/fix-team", server.requireAdmin(server.handleFixTeam))
	mux.HandleFunc("/admin/reload", server.requireAdmin(server.handleReload))
	mux.HandleFunc("/admin/rebuild", server.requireAdmin(server.handleRebuild))

	handler := withJSONHeaders(mux)
	handler = withTelemetry(handler, telemetry, cfg.Logging.RequestLogs == nil || *cfg.Logging.RequestLogs)

	logger.Info("kitsearch API listening", "listen", cfg.Server.Listen, "products", index.Len(), "teams", db.Len())
	if err := http.ListenAndServe(cfg.Server.Listen, handler); err != nil {
		logger.Error("server stopped", "error", err)
	}
}

func pricingFromConfig(p config.PricingConfig) catalog.Pricing {
	return catalog.Pricing{
		Fan:        p.Fan,
		Player:     p.Player,
		PlayerLong: p.PlayerLong,
		Retro:      p.Retro,
		Kit:        p.Kit,
	}
}

func catalogVersions(catalogs []config.CatalogConfig) map[string]string {
	versions := make(map[string]string, len(catalogs))
	for _, c := range catalogs {
		versions[c.ID] = c.Version
	}
	return versions
}

// runRebuild performs one full build from the raw scrape: products,
// the unmatched review file, and the run report.
func runRebuild(cfg config.AppConfig, pipeline *ingest.Pipeline, storage *store.Store, logger *slog.Logger) error {
	raw, err := ingest.LoadRaw(cfg.Paths.RawCatalog)
	if err != nil {
		return err
	}

	previous, err := storage.LoadProducts()
	if err != nil {
		return err
	}

	products, unmatched, report := pipeline.Run(raw, previous)
	if err := storage.SaveProducts(products); err != nil {
		return err
	}
	if err := ingest.WriteUnmatchedCSV(cfg.Paths.UnmatchedCSV, unmatched); err != nil {
		return err
	}
	if err := ingest.WriteReport(cfg.Paths.ReportFile, report); err != nil {
		return err
	}

	logger.Info("catalog rebuilt",
		"products", report.TotalProducts,
		"matched", report.MatchedProducts,
		"unmatched", len(unmatched),
		"match_rate", report.MatchRate,
	)
	return nil
}

func withJSONHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

type telemetry struct {
	enabled bool
	logger  *slog.Logger

	registry       *prometheus.Registry
	metricsHandler http.Handler
	meter          metric.Meter

	reqCount    atomic.Int64
	errCount    atomic.Int64
	lastStatus  atomic.Int64
	lastLatency atomic.Int64

	httpRequests   metric.Int64Counter
	httpErrors     metric.Int64Counter
	httpLatency    metric.Float64Histogram
	searchOps      metric.Int64Counter
	searchLatency  metric.Float64Histogram
	suggestOps     metric.Int64Counter
	ingestProducts metric.Int64Counter
	ingestLatency  metric.Float64Histogram

	productGauge   prometheus.Gauge
	matchRateGauge prometheus.Gauge
}

func newTelemetry(ctx context.Context, logger *slog.Logger, enabled bool) *telemetry {
	telemetry := &telemetry{enabled: enabled, logger: logger}
	if !enabled {
		return telemetry
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	exporter, err := prometheusotel.New(prometheusotel.WithRegisterer(registry))
	if err != nil {
		logger.Error("failed to initialize prometheus exporter", "error", err)
		return telemetry
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(provider)
	meter := provider.Meter("kitsearch")

	httpReq, _ := meter.Int64Counter("http_requests_total", metric.WithDescription("Total HTTP requests"))
	httpErr, _ := meter.Int64Counter("http_errors_total", metric.WithDescription("HTTP requests that returned an error status"))
	httpLatency, _ := meter.Float64Histogram("http_request_duration_ms", metric.WithDescription("Latency of HTTP requests in milliseconds"), metric.WithUnit("ms"))
	searchOps, _ := meter.Int64Counter("search_requests_total", metric.WithDescription("Search operations executed"))
	searchLatency, _ := meter.Float64Histogram("search_latency_ms", metric.WithDescription("Latency of search operations"), metric.WithUnit("ms"))
	suggestOps, _ := meter.Int64Counter("suggest_requests_total", metric.WithDescription("Autocomplete operations executed"))
	ingestProducts, _ := meter.Int64Counter("ingest_products_total", metric.WithDescription("Products processed by catalog rebuilds"))
	ingestLatency, _ := meter.Float64Histogram("ingest_latency_ms", metric.WithDescription("Latency of catalog rebuilds"), metric.WithUnit("ms"))

	productGauge := prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "kitsearch", Name: "products", Help: "Products currently loaded"})
	matchRateGauge := prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "kitsearch", Name: "match_rate", Help: "Share of products matched to a team"})
	registry.MustRegister(productGauge, matchRateGauge)

	telemetry.registry = registry
	telemetry.metricsHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	telemetry.meter = meter
	telemetry.httpRequests = httpReq
	telemetry.httpErrors = httpErr
	telemetry.httpLatency = httpLatency
	telemetry.searchOps = searchOps
	telemetry.searchLatency = searchLatency
	telemetry.suggestOps = suggestOps
	telemetry.ingestProducts = ingestProducts
	telemetry.ingestLatency = ingestLatency
	telemetry.productGauge = productGauge
	telemetry.matchRateGauge = matchRateGauge

	telemetry.logger.Info("telemetry initialized", "prometheus", true)
	telemetry.httpRequests.Add(ctx, 0) // ensure metric is created eagerly
	return telemetry
}

func (t *telemetry) recordRequest(ctx context.Context, method, path string, status int, duration time.Duration) {
	if !t.enabled {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("path", path),
		attribute.Int("status", status),
	)
	t.httpRequests.Add(ctx, 1, attrs)
	t.httpLatency.Record(ctx, float64(duration.Milliseconds()), attrs)
	if status >= http.StatusBadRequest {
		t.httpErrors.Add(ctx, 1, attrs)
	}

	t.reqCount.Add(1)
	t.lastStatus.Store(int64(status))
	t.lastLatency.Store(duration.Milliseconds())
	if status >= http.StatusBadRequest {
		t.errCount.Add(1)
	}
}

func (t *telemetry) recordSearch(ctx context.Context, query string, hits int, duration time.Duration) {
	if !t.enabled {
		return
	}

	attrs := metric.WithAttributes(attribute.Bool("with_query", query != ""))
	t.searchOps.Add(ctx, 1, attrs)
	t.searchLatency.Record(ctx, float64(duration.Milliseconds()), attrs)
}

func (t *telemetry) recordSuggest(ctx context.Context) {
	if !t.enabled {
		return
	}
	t.suggestOps.Add(ctx, 1)
}

func (t *telemetry) recordIngest(ctx context.Context, products int, duration time.Duration) {
	if !t.enabled {
		return
	}
	t.ingestProducts.Add(ctx, int64(products))
	t.ingestLatency.Record(ctx, float64(duration.Milliseconds()))
}

func (t *telemetry) observeCatalog(stats catalog.Stats) {
	if !t.enabled {
		return
	}
	t.productGauge.Set(float64(stats.TotalProducts))
	t.matchRateGauge.Set(stats.MatchRate)
}

func (t *telemetry) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if !t.enabled || t.registry == nil {
		respond(w, http.StatusOK, map[string]any{"enabled": false})
		return
	}

	t.metricsHandler.ServeHTTP(w, r)
}

func withTelemetry(next http.Handler, telemetry *telemetry, logRequests bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(recorder, r)
		duration := time.Since(start)

		if telemetry != nil {
			telemetry.recordRequest(r.Context(), r.Method, r.URL.Path, recorder.status, duration)
		}
		if logRequests && telemetry != nil && telemetry.logger != nil {
			telemetry.logger.Info("request completed", "method", r.Method, "path", r.URL.Path, "status", recorder.status, "duration_ms", duration.Milliseconds())
		}
	})
}

type apiServer struct {
	index    *catalog.Index
	storage  *store.Store
	pipeline *ingest.Pipeline
	cfg      config.AppConfig

	telemetry *telemetry
	logger    *slog.Logger

	// writeMu serializes the admin operations that mutate or replace
	// the snapshot (fix-team, reload, rebuild).
	writeMu sync.Mutex
	ready   atomic.Bool
}

func newAPIServer(index *catalog.Index, storage *store.Store, pipeline *ingest.Pipeline, cfg config.AppConfig, telemetry *telemetry, logger *slog.Logger) *apiServer {
	server := &apiServer{
		index:     index,
		storage:   storage,
		pipeline:  pipeline,
		cfg:       cfg,
		telemetry: telemetry,
		logger:    logger,
	}
	server.ready.Store(index.Loaded())
	return server
}

// requireAdmin guards an endpoint with basic auth. Credentials compare
// as digests so length differences do not leak through subtle.
func (s *apiServer) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || !credentialsMatch(user, s.cfg.Admin.User) || !credentialsMatch(pass, s.cfg.Admin.Password) {
			w.Header().Set("WWW-Authenticate", `Basic realm="kitsearch admin"`)
			respond(w, http.StatusUnauthorized, map[string]any{"error": "unauthorized"})
			return
		}
		next(w, r)
	}
}

func credentialsMatch(got, want string) bool {
	gotSum := sha256.Sum256([]byte(got))
	wantSum := sha256.Sum256([]byte(want))
	return subtle.ConstantTimeCompare(gotSum[:], wantSum[:]) == 1
}

func (s *apiServer) handleSearch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	page, err := parseIntDefault(q.Get("page"), 1)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid page: %v", err), start)
		return
	}
	perPage, err := parseIntDefault(q.Get("limit"), 0)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid limit: %v", err), start)
		return
	}

	req := catalog.SearchRequest{
		Query:   q.Get("q"),
		Team:    q.Get("team"),
		League:  q.Get("league"),
		Country: q.Get("country"),
		Season:  q.Get("season"),
		Type:    q.Get("type"),
		Version: q.Get("version"),
		Page:    page,
		PerPage: perPage,
	}

	resp := s.index.Search(req)
	respond(w, http.StatusOK, resp)

	if s.telemetry != nil {
		s.telemetry.recordSearch(r.Context(), req.Query, resp.Total, time.Since(start))
	}
	if s.logger != nil {
		s.logger.Info("search completed", "query", req.Query, "total", resp.Total, "page", resp.Page, "duration_ms", time.Since(start).Milliseconds())
	}
}

func (s *apiServer) handleSuggest(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	prefix := r.URL.Query().Get("q")
	if prefix == "" {
		respondError(w, http.StatusBadRequest, "q parameter is required", start)
		return
	}

	suggestions := s.index.Suggest(prefix)
	respond(w, http.StatusOK, map[string]any{"suggestions": suggestions, "timingMs": time.Since(start).Milliseconds()})

	if s.telemetry != nil {
		s.telemetry.recordSuggest(r.Context())
	}
}

func (s *apiServer) handleTeams(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	teams := s.index.Teams(q.Get("league"), q.Get("country"))
	respond(w, http.StatusOK, map[string]any{"teams": teams, "timingMs": time.Since(start).Milliseconds()})
}

func (s *apiServer) handleFilters(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	respond(w, http.StatusOK, s.index.Filters())
}

func (s *apiServer) handleProduct(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/product/"), "/")
	if id == "" {
		respondError(w, http.StatusBadRequest, "product id is required", start)
		return
	}

	product, err := s.index.Product(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondError(w, http.StatusNotFound, "product not found", start)
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error(), start)
		return
	}
	respond(w, http.StatusOK, product)
}

func (s *apiServer) handleStats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	stats := s.index.Stats()
	payload := map[string]any{"stats": stats, "timingMs": time.Since(start).Milliseconds()}
	if report, err := ingest.ReadReport(s.cfg.Paths.ReportFile); err == nil {
		payload["last_update"] = report
	}
	respond(w, http.StatusOK, payload)
}

func (s *apiServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	start := time.Now()
	respond(w, http.StatusOK, map[string]any{"status": "ok", "timingMs": time.Since(start).Milliseconds()})
}

func (s *apiServer) handleReadiness(w http.ResponseWriter, _ *http.Request) {
	start := time.Now()
	ready := s.ready.Load() && s.index.Loaded()

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}

	respond(w, status, map[string]any{
		"status":   map[bool]string{true: "ready", false: "initializing"}[ready],
		"products": s.index.Len(),
		"timingMs": time.Since(start).Milliseconds(),
	})
}

func (s *apiServer) handleUnmatched(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	unmatched := s.index.Unmatched()
	respond(w, http.StatusOK, map[string]any{
		"unmatched": unmatched,
		"count":     len(unmatched),
		"timingMs":  time.Since(start).Milliseconds(),
	})
}

func (s *apiServer) handleFixTeam(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		ProductID string `json:"product_id"`
		TeamKey   string `json:"team_key"`
	}
	// Accepts either query parameters or a JSON body.
	req.ProductID = r.URL.Query().Get("product_id")
	req.TeamKey = r.URL.Query().Get("team_key")
	if req.ProductID == "" && req.TeamKey == "" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid json payload", start)
			return
		}
	}
	if req.ProductID == "" || req.TeamKey == "" {
		respondError(w, http.StatusBadRequest, "product_id and team_key are required", start)
		return
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	product, err := s.index.Fix(req.ProductID, req.TeamKey)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			respondError(w, http.StatusNotFound, "product not found", start)
		case errors.Is(err, catalog.ErrUnknownTeam):
			respondError(w, http.StatusBadRequest, "unknown team", start)
		default:
			respondError(w, http.StatusInternalServerError, err.Error(), start)
		}
		return
	}

	if err := s.storage.SaveProducts(s.index.Products()); err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("save products: %v", err), start)
		return
	}

	if s.telemetry != nil {
		s.telemetry.observeCatalog(s.index.Stats())
	}
	if s.logger != nil {
		s.logger.Info("product reassigned", "product", req.ProductID, "team", req.TeamKey)
	}
	respond(w, http.StatusOK, map[string]any{"product": product, "timingMs": time.Since(start).Milliseconds()})
}

func (s *apiServer) handleReload(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	products, err := s.storage.LoadProducts()
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("load products: %v", err), start)
		return
	}
	s.index.Load(products)
	s.ready.Store(true)

	if s.telemetry != nil {
		s.telemetry.observeCatalog(s.index.Stats())
	}
	if s.logger != nil {
		s.logger.Info("catalog reloaded", "products", s.index.Len())
	}
	respond(w, http.StatusOK, map[string]any{"products": s.index.Len(), "timingMs": time.Since(start).Milliseconds()})
}

func (s *apiServer) handleRebuild(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	raw, err := ingest.LoadRaw(s.cfg.Paths.RawCatalog)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("load raw catalog: %v", err), start)
		return
	}

	products, unmatched, report := s.pipeline.Run(raw, s.index.Products())
	if err := s.storage.SaveProducts(products); err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("save products: %v", err), start)
		return
	}
	if err := ingest.WriteUnmatchedCSV(s.cfg.Paths.UnmatchedCSV, unmatched); err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("write unmatched: %v", err), start)
		return
	}
	if err := ingest.WriteReport(s.cfg.Paths.ReportFile, report); err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("write report: %v", err), start)
		return
	}

	s.index.Load(products)
	s.ready.Store(true)

	if s.telemetry != nil {
		s.telemetry.recordIngest(r.Context(), report.TotalProducts, time.Since(start))
		s.telemetry.observeCatalog(s.index.Stats())
	}
	respond(w, http.StatusOK, map[string]any{"report": report, "timingMs": time.Since(start).Milliseconds()})
}

func respond(w http.ResponseWriter, status int, payload any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string, start time.Time) {
	respond(w, status, map[string]any{"error": message, "timingMs": time.Since(start).Milliseconds()})
}

func parseIntDefault(raw string, defaultVal int) (int, error) {
	if raw == "" {
		return defaultVal, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	return val, nil
}
