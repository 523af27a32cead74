// Package travelmatrix provides the dense ALL×ALL travel-time matrix the
// bitmask DP engine reads from, and the projection that derives it from a
// distance/height-gain table and a walking configuration:
//
//	T[i][j] = (km(i,j) / speed) * 60 + (height_gain_m(i,j) / naismith)
//
// The matrix is not assumed symmetric: height gain is directional, so
// T[i][j] and T[j][i] may differ even when the straight-line distance is
// the same. Unreachable pairs carry the +Inf sentinel; T[i][i] is unused.
package travelmatrix
