// Package directory implements the secondary provider, a Google Places
// compatible business directory.
//
// Nearby searches use the v1 text search endpoint, which carries ratings,
// opening hours, photos and EV connector availability. The legacy nearby
// search and details endpoints are used only to borrow photos from a
// non-charging business at the same location when a station has none.
//
// Photo references returned by this package are opaque: v1 media names
// ("places/<id>/photos/<ref>") or legacy photo references. PhotoURL turns
// them into fetchable URLs for the HTTP layer.
package directory
