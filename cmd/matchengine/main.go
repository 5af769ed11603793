// Command matchengine runs one ranking pass: it loads a project and a
// candidate pool from JSON (or generates a demo pool), ranks the pool, and
// writes the scored report as JSON. A Prometheus endpoint can be exposed
// for the duration of the run.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gigboard/matchengine/internal/app"
	"github.com/gigboard/matchengine/internal/config"
	"github.com/gigboard/matchengine/internal/domain/geo"
	"github.com/gigboard/matchengine/internal/domain/location"
	"github.com/gigboard/matchengine/internal/domain/model"
	"github.com/gigboard/matchengine/internal/domain/scoring"
	"github.com/gigboard/matchengine/internal/domain/skills"
	"github.com/gigboard/matchengine/internal/fixture"
	"github.com/gigboard/matchengine/pkg/logger"
	"github.com/gigboard/matchengine/pkg/metrics"
)

// HTTP server timeout constants for the metrics endpoint.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

func main() {
	projectPath := flag.String("project", "", "path to project requirements JSON")
	poolPath := flag.String("pool", "", "path to candidate pool JSON")
	outPath := flag.String("out", "", "path to write the ranked report (default stdout)")
	demo := flag.Int("demo", 0, "generate a demo pool of this size instead of reading files")
	seed := flag.Int64("seed", 0, "seed for demo pool generation (0 uses the clock)")
	metricsAddr := flag.String("metrics-addr", "", "prometheus listen address, e.g. :9090 (overrides config)")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env).
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	if *metricsAddr != "" {
		cfg.MetricsAddr = *metricsAddr
	}
	if cfg.MetricsAddr != "" {
		go serveMetrics(ctx, cfg.MetricsAddr)
	}

	ranker, err := buildRanker(cfg, log)
	if err != nil {
		log.Error(ctx, "failed to build ranker", logger.Error(err))
		return
	}

	project, pool, err := loadInputs(cfg, *projectPath, *poolPath, *demo, *seed)
	if err != nil {
		log.Error(ctx, "failed to load inputs", logger.Error(err))
		return
	}

	matches, err := ranker.Rank(ctx, pool, project)
	if err != nil {
		log.Error(ctx, "ranking failed", logger.Error(err))
		return
	}

	if err := writeReport(*outPath, project, matches); err != nil {
		log.Error(ctx, "failed to write report", logger.Error(err))
		return
	}

	log.Info(ctx, "report written",
		logger.String("projectID", project.ID),
		logger.Int("candidates", len(matches)),
	)
}

// buildRanker assembles the matchers from configuration.
func buildRanker(cfg *config.Config, log logger.Logger) (*app.Ranker, error) {
	resolverOpts := make([]geo.Option, 0, len(cfg.Cities))
	for name, coords := range cfg.Cities {
		if len(coords) != 2 {
			log.Warn(context.Background(), "skipping city with malformed coordinates; lookups for it will not resolve",
				logger.String("city", name),
				logger.Int("values", len(coords)),
			)
			continue
		}
		resolverOpts = append(resolverOpts, geo.WithCity(name, coords[0], coords[1]))
	}
	resolver := geo.NewStaticResolver(resolverOpts...)

	locationOpts := []location.Option{
		location.WithResolver(resolver),
		location.WithTransitHubs(cfg.TransitHubs...),
	}
	for name, cities := range cfg.Clusters {
		locationOpts = append(locationOpts, location.WithRegionalCluster(name, cities...))
	}

	taxonomy := skills.NewStaticTaxonomy(
		skills.WithCategory("frontend", "React", "TypeScript", "Vue"),
		skills.WithCategory("backend", "Go", "Python", "PostgreSQL", "GraphQL"),
		skills.WithCategory("infrastructure", "Kubernetes", "Terraform", "AWS"),
	)

	return app.New(
		app.WithLogger(log.Named("ranker")),
		app.WithWorkerCount(cfg.WorkerCount),
		app.WithWeights(cfg.Weights),
		app.WithFitThresholds(cfg.FitThresholds),
		app.WithSkillsMatcher(skills.New(skills.WithTaxonomy(taxonomy))),
		app.WithLocationMatcher(location.New(locationOpts...)),
		app.WithAvailabilityMatcher(scoring.NewAvailabilityMatcher(scoring.WithFullTimeHours(cfg.FullTimeHours))),
		app.WithPortfolioMatcher(scoring.NewPortfolioMatcher(scoring.WithPortfolioTaxonomy(taxonomy))),
	)
}

// loadInputs reads the project and pool from JSON files, or generates a demo
// pool when -demo is set.
func loadInputs(cfg *config.Config, projectPath, poolPath string, demo int, seed int64) (*model.ProjectRequirements, []*model.TalentProfile, error) {
	if demo > 0 {
		opts := []fixture.Option{}
		if seed != 0 {
			opts = append(opts, fixture.WithSeed(seed))
		}
		gen := fixture.New(opts...)
		return gen.Project(), gen.Pool(demo), nil
	}

	if projectPath == "" || poolPath == "" {
		return nil, nil, fmt.Errorf("either -demo or both -project and -pool are required")
	}

	var project model.ProjectRequirements
	if err := readJSON(projectPath, &project); err != nil {
		return nil, nil, fmt.Errorf("read project: %w", err)
	}
	var pool []*model.TalentProfile
	if err := readJSON(poolPath, &pool); err != nil {
		return nil, nil, fmt.Errorf("read pool: %w", err)
	}
	return &project, pool, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// report is the JSON document the CLI emits.
type report struct {
	ProjectID string                 `json:"project_id"`
	Generated time.Time              `json:"generated"`
	Matches   []model.CandidateMatch `json:"matches"`
}

func writeReport(path string, project *model.ProjectRequirements, matches []model.CandidateMatch) error {
	doc := report{
		ProjectID: project.ID,
		Generated: time.Now().UTC(),
		Matches:   matches,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// serveMetrics exposes the Prometheus registry for the duration of the run.
func serveMetrics(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), readTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Get().Info(ctx, "serving metrics", logger.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Get().Error(ctx, "metrics server failed", logger.Error(err))
	}
}
