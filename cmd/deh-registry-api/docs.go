// Package docs provides OpenAPI documentation for the DataElementHub registry API
//
//	@title			DataElementHub Registry API
//	@version		1.0
//	@description	Relations between data elements of metadata repositories and the sources they
//	@description	were imported from.
//	@description
//	@description	Mutations require a Bearer token unless the server runs in anonymous mode.
//
//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description OAuth 2.0 Bearer token authentication. Format: "Bearer {token}"
//
//	@tag.name	relations
//	@tag.description	Relations between data elements
//
//	@tag.name	sources
//	@tag.description	Provenance of imported data elements
//
//	@tag.name	system
//	@tag.description	Health and version information
package main
