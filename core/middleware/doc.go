// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - rayid: assigns every request a ray id (reusing a valid inbound
//     X-Ray-ID header), stores it in locals for logger.WithRayID and echoes
//     it in the response.
//   - auth: validates the X-API-Key header when an API key is configured.
//
// RayID must be registered first so that rejected requests are traceable too.
package middleware
