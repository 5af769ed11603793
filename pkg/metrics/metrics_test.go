package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			registryOpt := WithPrometheusRegistry(prometheus.NewRegistry())

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(registryOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with an isolated registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the package-level recording helpers", t, func() {
		Convey("Then evaluation metrics record without panicking", func() {
			So(func() {
				RecordEvaluation()
				RecordCandidateSkipped()
				ObserveEvaluationLatency(1.5)
			}, ShouldNotPanic)
		})

		Convey("Then ranking run metrics record without panicking", func() {
			So(func() {
				RecordRankingRun()
				ObserveRankingLatency(12.5)
				UpdatePoolSize(50)
				UpdateWorkerCount(8)
			}, ShouldNotPanic)
		})

		Convey("Then cache metrics record without panicking", func() {
			So(func() {
				RecordCacheHit()
				RecordCacheMiss()
				UpdateCacheSize(42)
			}, ShouldNotPanic)
		})
	})
}

func TestGetRegistry(t *testing.T) {
	Convey("Given the global registry accessor", t, func() {
		registry := GetRegistry()

		Convey("Then it returns a gatherable registry", func() {
			So(registry, ShouldNotBeNil)
			_, err := registry.Gather()
			So(err, ShouldBeNil)
		})
	})
}
