package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/gigboard/matchengine/internal/config"
	"github.com/gigboard/matchengine/internal/fixture"
	"github.com/gigboard/matchengine/pkg/logger"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		if err := logger.Init(); err != nil {
			t.Fatalf("failed to initialize logger: %v", err)
		}

		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("MATCH_LOG_LEVEL", "debug")
			_ = os.Setenv("MATCH_WORKER_COUNT", "4")
			defer func() {
				_ = os.Unsetenv("MATCH_LOG_LEVEL")
				_ = os.Unsetenv("MATCH_WORKER_COUNT")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 4)
			})
		})

		convey.Convey("When building the ranker from configuration", func() {
			cfg := config.New()
			ranker, err := buildRanker(cfg, logger.Get())

			convey.Convey("Then the ranker should be usable end to end", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(ranker, convey.ShouldNotBeNil)

				gen := fixture.New(fixture.WithSeed(11))
				matches, err := ranker.Rank(context.Background(), gen.Pool(8), gen.Project())
				convey.So(err, convey.ShouldBeNil)
				convey.So(matches, convey.ShouldHaveLength, 8)
				convey.So(matches[0].Ranking, convey.ShouldEqual, 1)
			})
		})

		convey.Convey("When the city table carries a malformed entry", func() {
			cfg := config.New()
			cfg.Cities["nowhere"] = []float64{52.52}

			convey.Convey("Then the ranker still builds and ranks", func() {
				ranker, err := buildRanker(cfg, logger.Get())
				convey.So(err, convey.ShouldBeNil)
				convey.So(ranker, convey.ShouldNotBeNil)

				gen := fixture.New(fixture.WithSeed(2))
				matches, err := ranker.Rank(context.Background(), gen.Pool(4), gen.Project())
				convey.So(err, convey.ShouldBeNil)
				convey.So(matches, convey.ShouldHaveLength, 4)
			})
		})

		convey.Convey("When loading demo inputs", func() {
			cfg := config.New()
			project, pool, err := loadInputs(cfg, "", "", 6, 3)

			convey.Convey("Then a seeded demo pool is generated", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(project, convey.ShouldNotBeNil)
				convey.So(pool, convey.ShouldHaveLength, 6)
			})
		})

		convey.Convey("When loading inputs from JSON files", func() {
			cfg := config.New()
			gen := fixture.New(fixture.WithSeed(5))
			dir := t.TempDir()

			projectPath := filepath.Join(dir, "project.json")
			poolPath := filepath.Join(dir, "pool.json")
			writeJSONFile(t, projectPath, gen.Project())
			writeJSONFile(t, poolPath, gen.Pool(4))

			convey.Convey("Then both files round-trip into the input types", func() {
				project, pool, err := loadInputs(cfg, projectPath, poolPath, 0, 0)
				convey.So(err, convey.ShouldBeNil)
				convey.So(project.ID, convey.ShouldNotBeEmpty)
				convey.So(pool, convey.ShouldHaveLength, 4)
			})

			convey.Convey("And a missing pool path is rejected", func() {
				_, _, err := loadInputs(cfg, projectPath, "", 0, 0)
				convey.So(err, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When writing the report to a file", func() {
			gen := fixture.New(fixture.WithSeed(5))
			project := gen.Project()
			cfg := config.New()
			ranker, err := buildRanker(cfg, logger.Get())
			convey.So(err, convey.ShouldBeNil)

			matches, err := ranker.Rank(context.Background(), gen.Pool(4), project)
			convey.So(err, convey.ShouldBeNil)

			out := filepath.Join(t.TempDir(), "report.json")
			convey.So(writeReport(out, project, matches), convey.ShouldBeNil)

			convey.Convey("Then the report parses back with the same project ID", func() {
				data, err := os.ReadFile(out)
				convey.So(err, convey.ShouldBeNil)

				var doc report
				convey.So(json.Unmarshal(data, &doc), convey.ShouldBeNil)
				convey.So(doc.ProjectID, convey.ShouldEqual, project.ID)
				convey.So(doc.Matches, convey.ShouldHaveLength, 4)
			})
		})
	})
}

func writeJSONFile(t *testing.T, path string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
