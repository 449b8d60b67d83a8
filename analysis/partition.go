package analysis

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/pointgo/pointset"
)

// Groups holds the outcome of Partition. Every slice is in ascending index
// order.
type Groups struct {
	Both     pointset.Selection `json:"both"`
	BallOnly pointset.Selection `json:"ball_only"`
	KNNOnly  pointset.Selection `json:"knn_only"`
}

// Partition splits the neighbors found by a ball query and a kNN query
// around the same point into the indices found by both, by the ball query
// only and by the kNN query only. Padded entries collapse into one.
func Partition(ball, knn pointset.NeighborList) Groups {
	b := bitmapOf(ball)
	k := bitmapOf(knn)

	return Groups{
		Both:     toSelection(roaring.And(b, k)),
		BallOnly: toSelection(roaring.AndNot(b, k)),
		KNNOnly:  toSelection(roaring.AndNot(k, b)),
	}
}

func bitmapOf(l pointset.NeighborList) *roaring.Bitmap {
	bm := roaring.New()
	for _, nb := range l {
		bm.Add(uint32(nb.Index))
	}
	return bm
}

func toSelection(bm *roaring.Bitmap) pointset.Selection {
	out := make(pointset.Selection, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}
