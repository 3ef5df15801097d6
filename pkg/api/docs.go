// Package api provides the HTTP API for teabrew.
//
//	@title				Tea Brewing API
//	@version			1.0.0
//	@description		A REST API for managing teapots, teas, brewing sessions and steeps.
//	@description		The server keeps all state in memory and is intended as a stable
//	@description		target for API tooling.
//
//	@contact.name		TeapotFramework
//	@contact.url		https://teapotframework.dev
//
//	@license.name		MIT
//	@license.url		https://teapotframework.dev/license
//
//	@host				localhost:3000
//	@BasePath			/
//
//	@tag.name			teapots
//	@tag.description	Teapot management
//
//	@tag.name			teas
//	@tag.description	Tea catalog management
//
//	@tag.name			brews
//	@tag.description	Brewing session lifecycle
//
//	@tag.name			steeps
//	@tag.description	Per-brew steep records
//
//	@tag.name			health
//	@tag.description	Health and liveness probes
//
//	@tag.name			events
//	@tag.description	Real-time entity change streaming
//
//	@tag.name			system
//	@tag.description	Service metadata
package api
