// Package utils provides small numeric helpers shared by the reconciliation
// engine and the HTTP layer: coordinate rounding and the planar distance
// approximation used for proximity matching.
package utils
