package pointgo_test

import (
	"context"
	"fmt"

	"github.com/hupe1980/pointgo"
	"github.com/hupe1980/pointgo/pointset"
	"github.com/hupe1980/pointgo/query"
)

func Example() {
	ctx := context.Background()

	ps, _ := pointset.FromCoords([][3]float64{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {10, 0, 0}})
	cloud, _ := pointgo.New(ps)

	centroids, _ := cloud.FPS(ctx, 2)
	ball, _ := cloud.BallQuery(ctx, 0, 1.5, 5)
	knn, _ := cloud.KNN(ctx, 0, 2)

	fmt.Println(centroids)
	fmt.Println(ball.Indices())
	fmt.Println(knn.Indices())
	// Output:
	// [0 3]
	// [1]
	// [1 2]
}

func ExampleCloud_SampleAndGroup() {
	ctx := context.Background()

	ps, _ := pointset.FromCoords([][3]float64{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {10, 0, 0}})
	cloud, _ := pointgo.New(ps)

	g, _ := cloud.SampleAndGroup(ctx, pointgo.GroupConfig{
		Centroids: 2,
		Grouper:   pointgo.GroupBall,
		Radius:    1.5,
		K:         3,
		Padding:   query.PadRepeatNearest,
	})

	for i, c := range g.Centroids {
		fmt.Println(c, g.Groups[i].Indices())
	}
	// Output:
	// 0 [1 1 1]
	// 3 []
}
