// Package registry implements the primary station provider, an Open Charge
// Map compatible points-of-interest API. Records are decoded into wire models
// and converted to reconcile.RawRecord before leaving the package.
package registry
