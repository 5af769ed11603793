package cache_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/gigboard/matchengine/internal/cache"
	"github.com/gigboard/matchengine/internal/domain/model"
)

// countingEvaluator records how often the wrapped evaluation actually runs.
type countingEvaluator struct {
	calls int
	err   error
}

func (e *countingEvaluator) Evaluate(_ context.Context, talent *model.TalentProfile, project *model.ProjectRequirements) (model.CandidateMatch, error) {
	e.calls++
	if talent == nil || project == nil {
		return model.CandidateMatch{}, errors.New("nil input")
	}
	if e.err != nil {
		return model.CandidateMatch{}, e.err
	}
	return model.CandidateMatch{
		TalentID:     talent.ID,
		OverallScore: float64(e.calls),
	}, nil
}

func talent(id, version string) *model.TalentProfile {
	return &model.TalentProfile{ID: id, Version: version}
}

func project(id, version string) *model.ProjectRequirements {
	return &model.ProjectRequirements{ID: id, Version: version}
}

func TestMemoEvaluate(t *testing.T) {
	Convey("Given a memoized evaluator", t, func() {
		ctx := context.Background()
		inner := &countingEvaluator{}
		memo := cache.New(inner)

		Convey("When the same pair is evaluated twice", func() {
			first, err := memo.Evaluate(ctx, talent("t-1", "v1"), project("p-1", "v1"))
			So(err, ShouldBeNil)
			second, err := memo.Evaluate(ctx, talent("t-1", "v1"), project("p-1", "v1"))
			So(err, ShouldBeNil)

			Convey("Then the wrapped evaluator runs once", func() {
				So(inner.calls, ShouldEqual, 1)
				So(second, ShouldResemble, first)
				So(memo.Size(), ShouldEqual, 1)
			})
		})

		Convey("When the same candidate meets a different project", func() {
			_, err := memo.Evaluate(ctx, talent("t-1", "v1"), project("p-1", "v1"))
			So(err, ShouldBeNil)
			_, err = memo.Evaluate(ctx, talent("t-1", "v1"), project("p-2", "v1"))
			So(err, ShouldBeNil)

			Convey("Then each project gets its own entry", func() {
				So(inner.calls, ShouldEqual, 2)
				So(memo.Size(), ShouldEqual, 2)
			})
		})

		Convey("When the candidate version changes", func() {
			_, err := memo.Evaluate(ctx, talent("t-1", "v1"), project("p-1", "v1"))
			So(err, ShouldBeNil)
			_, err = memo.Evaluate(ctx, talent("t-1", "v2"), project("p-1", "v1"))
			So(err, ShouldBeNil)

			Convey("Then the stale entry is not reused", func() {
				So(inner.calls, ShouldEqual, 2)
			})
		})

		Convey("When an input is nil", func() {
			Convey("Then the wrapped evaluator's rejection surfaces without a panic", func() {
				So(func() {
					_, err := memo.Evaluate(ctx, nil, project("p-1", "v1"))
					So(err, ShouldNotBeNil)
					_, err = memo.Evaluate(ctx, talent("t-1", "v1"), nil)
					So(err, ShouldNotBeNil)
				}, ShouldNotPanic)
				So(inner.calls, ShouldEqual, 2)
				So(memo.Size(), ShouldEqual, 0)
			})
		})

		Convey("When the wrapped evaluator fails", func() {
			inner.err = errors.New("boom")
			_, err := memo.Evaluate(ctx, talent("t-1", "v1"), project("p-1", "v1"))
			So(err, ShouldNotBeNil)

			Convey("Then the error is not cached", func() {
				inner.err = nil
				_, err := memo.Evaluate(ctx, talent("t-1", "v1"), project("p-1", "v1"))
				So(err, ShouldBeNil)
				So(inner.calls, ShouldEqual, 2)
			})
		})
	})
}

func TestMemoEviction(t *testing.T) {
	Convey("Given a memo bounded to three entries", t, func() {
		ctx := context.Background()
		inner := &countingEvaluator{}
		memo := cache.New(inner, cache.WithMaxSize(3))

		for i := 0; i < 5; i++ {
			_, err := memo.Evaluate(ctx, talent(fmt.Sprintf("t-%d", i), "v1"), project("p-1", "v1"))
			So(err, ShouldBeNil)
		}

		Convey("Then the size never exceeds the bound", func() {
			So(memo.Size(), ShouldEqual, 3)
			So(inner.calls, ShouldEqual, 5)
		})

		Convey("And surviving entries still hit", func() {
			before := inner.calls
			// The earliest inserts were evicted; the newest survives.
			_, err := memo.Evaluate(ctx, talent("t-4", "v1"), project("p-1", "v1"))
			So(err, ShouldBeNil)
			So(inner.calls, ShouldEqual, before)
		})
	})

	Convey("Given an unbounded memo", t, func() {
		ctx := context.Background()
		inner := &countingEvaluator{}
		memo := cache.New(inner, cache.WithMaxSize(0))

		for i := 0; i < 50; i++ {
			_, err := memo.Evaluate(ctx, talent(fmt.Sprintf("t-%d", i), "v1"), project("p-1", "v1"))
			So(err, ShouldBeNil)
		}

		Convey("Then nothing is evicted", func() {
			So(memo.Size(), ShouldEqual, 50)
		})
	})
}
