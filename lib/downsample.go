package fundchart

import "math"

// A Downsampled couples the reduced points of a series with the strictly
// increasing indices they were drawn from. The first and last points of
// the input are always retained, so OriginalIndex[0] == 0 and
// OriginalIndex[len-1] == len(input)-1.
type Downsampled struct {
	Points        []Point
	OriginalIndex []int
}

// Downsample reduces data to threshold points while keeping the visual
// shape of the original series. The algorithm is called
// Largest-Triangle-Three-Buckets and is described in:
// https://skemman.is/bitstream/1946/15343/3/SS_MSthesis.pdf
//
// The x coordinate of each point is its integer sample index. A threshold
// below 2 means no downsampling: the input is returned unchanged with an
// identity index map. Ties on triangle area go to the first point
// encountered in scan order, which keeps the output deterministic.
func Downsample(data []Point, threshold int) Downsampled {
	n := len(data)
	if threshold >= n || threshold < 2 {
		return Downsampled{Points: data, OriginalIndex: identityIndex(n)}
	}

	if threshold == 2 {
		return Downsampled{
			Points:        []Point{data[0], data[n-1]},
			OriginalIndex: []int{0, n - 1},
		}
	}

	// Bucket size. Leave room for start and end data points.
	every := float64(n-2) / float64(threshold-2)

	sampled := make([]Point, 0, threshold)
	indices := make([]int, 0, threshold)

	// Always add the first point.
	sampled = append(sampled, data[0])
	indices = append(indices, 0)

	a := 0 // previously selected point
	bucketStart, bucketCenter := 1, int(math.Floor(every))+1

	for i := 0; i < threshold-2; i++ {
		bucketEnd := int(math.Floor(float64(i+2)*every)) + 1

		// Calculate point c as the average of all points in the next bucket.
		avgRangeStart, avgRangeEnd := bucketCenter, bucketEnd
		if avgRangeEnd >= n {
			avgRangeEnd = n
		}
		avgRangeLength := float64(avgRangeEnd - avgRangeStart)

		var avgX, avgY float64
		for j := avgRangeStart; j < avgRangeEnd; j++ {
			avgX += float64(j)
			avgY += data[j].Value
		}
		avgX /= avgRangeLength
		avgY /= avgRangeLength

		// Find the point b in the current bucket that together with points
		// a and c forms the largest triangle.
		pointAX, pointAY := float64(a), data[a].Value

		maxArea := -1.0
		nextA := bucketStart
		for j := bucketStart; j < bucketCenter; j++ {
			// Triangle area over three buckets. Only the relative magnitude
			// matters, so the constant 1/2 factor is dropped.
			area := math.Abs((pointAX-avgX)*(data[j].Value-pointAY) - (pointAX-float64(j))*(avgY-pointAY))
			if area > maxArea {
				maxArea, nextA = area, j
			}
		}

		sampled = append(sampled, data[nextA])
		indices = append(indices, nextA)
		a = nextA

		bucketStart, bucketCenter = bucketCenter, bucketEnd
	}

	// Always add the last point unmodified.
	sampled = append(sampled, data[n-1])
	indices = append(indices, n-1)

	return Downsampled{Points: sampled, OriginalIndex: indices}
}
