package geo_test

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/gigboard/matchengine/internal/domain/geo"
	"github.com/gigboard/matchengine/internal/domain/model"
)

func TestDistanceKm(t *testing.T) {
	Convey("Given two well-known city coordinates", t, func() {
		berlinLat, berlinLng := 52.52, 13.405
		hamburgLat, hamburgLng := 53.5511, 9.9937

		Convey("Then the great-circle distance lands near the real value", func() {
			km := geo.DistanceKm(berlinLat, berlinLng, hamburgLat, hamburgLng)
			So(km, ShouldBeGreaterThan, 250)
			So(km, ShouldBeLessThan, 260)
		})

		Convey("And distance is symmetric", func() {
			ab := geo.DistanceKm(berlinLat, berlinLng, hamburgLat, hamburgLng)
			ba := geo.DistanceKm(hamburgLat, hamburgLng, berlinLat, berlinLng)
			So(ab, ShouldAlmostEqual, ba, 1e-9)
		})

		Convey("And identical points are zero kilometers apart", func() {
			So(geo.DistanceKm(berlinLat, berlinLng, berlinLat, berlinLng), ShouldEqual, 0)
		})
	})
}

func TestStaticResolver(t *testing.T) {
	Convey("Given a resolver seeded with a city table", t, func() {
		ctx := context.Background()
		resolver := geo.NewStaticResolver(
			geo.WithCity("Berlin", 52.52, 13.405),
			geo.WithCities(map[string]model.Coordinates{
				"Hamburg": {Latitude: 53.5511, Longitude: 9.9937},
			}),
		)

		So(resolver.Len(), ShouldEqual, 2)

		Convey("Then lookups are case-insensitive and whitespace-tolerant", func() {
			c, ok := resolver.Resolve(ctx, "  berlin ")
			So(ok, ShouldBeTrue)
			So(c.Latitude, ShouldEqual, 52.52)

			c, ok = resolver.Resolve(ctx, "HAMBURG")
			So(ok, ShouldBeTrue)
			So(c.Longitude, ShouldEqual, 9.9937)
		})

		Convey("And unknown names miss without error", func() {
			_, ok := resolver.Resolve(ctx, "Atlantis")
			So(ok, ShouldBeFalse)
		})
	})
}
