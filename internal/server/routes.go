package server

import (
	"net/http"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// WebSocket route (streaming voice chat)
	mux.HandleFunc("/ws", s.app.WSHandler.HandleWebSocket)

	// API routes - Voice assistant
	mux.HandleFunc("/api/assistant", s.app.AssistantHandler.RespondHandler) // POST

	// API routes - Agent tools
	mux.HandleFunc("/api/tools/market-analysis", s.app.AgentHandler.MarketAnalysisHandler)
	mux.HandleFunc("/api/tools/crop-recommender", s.app.AgentHandler.CropRecommenderHandler)
	mux.HandleFunc("/api/tools/government-schemes", s.app.AgentHandler.GovernmentSchemesHandler)
	mux.HandleFunc("/api/tools/irrigation-scheduler", s.app.AgentHandler.IrrigationSchedulerHandler)
	mux.HandleFunc("/api/tools/post-harvest", s.app.AgentHandler.PostHarvestHandler)
	mux.HandleFunc("/api/tools/crop-agent", s.app.AgentHandler.CropAgentHandler)
	mux.HandleFunc("/api/tools/crop-diagnosis", s.app.DiagnosisHandler.DiagnoseHandler)

	// API routes - Records
	mux.HandleFunc("/api/diagnoses", s.app.DiagnosisHandler.ListHandler) // GET
	mux.HandleFunc("/api/diagnoses/", s.app.DiagnosisHandler.GetHandler) // GET /{id}
	mux.HandleFunc("/api/crops", s.app.CropHandler.CollectionHandler)    // GET (list), POST (create)
	mux.HandleFunc("/api/crops/", s.app.CropHandler.ItemHandler)         // GET/DELETE /{id}

	// API routes - System
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)

	// Catch-all for unknown API paths
	mux.HandleFunc("/", s.app.APIHandler.NotFoundHandler)

	return mux
}
