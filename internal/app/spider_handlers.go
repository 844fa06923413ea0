package app

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"arachnid/internal/spider"
)

func (s *Server) handleSpiderInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"system": "S.P.I.D.E.R. Protocol",
		"name":   "Super Private IDentity Emergency Recall",
		"description": "This system tracks unauthorized access attempts to confidential agent files. " +
			"Access to agent logs requires proper clearance.",
		"authentication": map[string]any{
			"type":          "API Key",
			"header":        spider.KeyHeader,
			"how_to_obtain": "POST to /api/v1/spider/key with proper credentials",
		},
		"endpoints": map[string]string{
			"/api/v1/spider/info":        "This endpoint - public system information",
			"/api/v1/spider/key":         "Obtain API key (requires POST with credentials)",
			"/api/v1/spider/agents":      "Search for agent UUIDs by name (requires API key and query param)",
			"/api/v1/spider/triggered":   "List agents that triggered file-access monitoring (requires API key)",
			"/api/v1/spider/logs/{uuid}": "View access logs for a specific agent (requires API key)",
		},
		"usage": map[string]string{
			"search_agents": `GET /api/v1/spider/agents?query="agent name"`,
			"view_logs":     "GET /api/v1/spider/logs/{uuid}",
		},
		"note": "Search for agents by name to get their UUID, then use that UUID to view their access logs.",
	})
}

func (s *Server) handleSpiderKey(w http.ResponseWriter, r *http.Request) {
	var creds spider.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		apiError(w, `Invalid JSON body. Expected: { "agent_id": string, "clearance": string }`, http.StatusBadRequest)
		return
	}
	if creds.AgentID == "" || creds.Clearance == "" {
		apiError(w, `Missing required fields. Expected: { "agent_id": "investigation_team", "clearance": "omega" }`, http.StatusBadRequest)
		return
	}

	expected := spider.Credentials{AgentID: s.cfg.SpiderAgentID, Clearance: s.cfg.SpiderClearance}
	switch err := spider.ValidateCredentials(creds, expected); err {
	case nil:
	case spider.ErrUnknownAgent:
		apiError(w, "Invalid agent_id. Access denied.", http.StatusUnauthorized)
		return
	case spider.ErrInsufficientClearance:
		apiError(w, "Insufficient clearance level. Access denied.", http.StatusForbidden)
		return
	default:
		apiError(w, "Access denied.", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Access granted. Use this key in the " + spider.KeyHeader + " header.",
		"key":     s.cfg.SpiderKey,
		"usage":   "Include this key as a header: " + spider.KeyHeader + ": " + s.cfg.SpiderKey,
	})
}

func (s *Server) handleAgentSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		apiError(w, `Missing required query parameter. Usage: /api/v1/spider/agents?query="agent name"`, http.StatusBadRequest)
		return
	}

	agent, ok := spider.SearchAgent(query)
	if !ok {
		apiError(w, fmt.Sprintf("No agent found matching query: %q. The agent may not exist in the system.", query), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Agent found",
		"query":   query,
		"agent":   agent,
		"usage":   "Use this UUID to query logs: GET /api/v1/spider/logs/" + agent.UUID,
	})
}

func (s *Server) handleTriggeredAgents(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":          "S.P.I.D.E.R. Protocol trigger events",
		"count":            len(spider.TriggeredAgents),
		"triggered_agents": spider.TriggeredAgents,
	})
}

func (s *Server) handleAgentLogs(w http.ResponseWriter, r *http.Request) {
	agentUUID := chi.URLParam(r, "uuid")
	if !spider.HasLogs(agentUUID) {
		apiError(w, fmt.Sprintf(
			"No logs found for agent UUID: %s. This agent either does not exist or has no recorded access violations.",
			agentUUID), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "S.P.I.D.E.R. Protocol Access Logs",
		"agent_uuid": agentUUID,
		"agent_name": spider.BuckinghamWeb.Name,
		"description": "These agents accessed confidential files about the victim shortly before they went dark.",
		"count":       len(spider.TriggeredAgents),
		"access_logs": spider.TriggeredAgents,
	})
}
