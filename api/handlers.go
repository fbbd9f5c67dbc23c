package api

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(deps Dependencies, rd *renderer, cookies sessionMiddleware, r router) *routeHandlers {
	return &routeHandlers{
		pageHandler:     newPageHandler(rd, deps.Site, deps.Store),
		projectHandler:  newProjectHandler(deps.Catalog),
		showcaseHandler: newShowcaseHandler(deps.Store, cookies),
		wsHandler:       newWSHandler(deps.Store, r.settings.AcceptedOrigins),
		healthHandler:   newHealthHandler(r.startupTime, deps.Catalog, deps.Store),
	}
}
