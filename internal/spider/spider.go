// Package spider holds the S.P.I.D.E.R. protocol data and access checks:
// credential exchange, agent search, and the triggered-agent log. The key
// itself lives in configuration; this package only decides whether a caller
// may have it.
package spider

import (
	"errors"
	"strings"
)

// KeyHeader is the request header carrying the S.P.I.D.E.R. key.
const KeyHeader = "X-SPIDER-Key"

// Agent is a tracked party, keyed by its UUID.
type Agent struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

// TriggeredAgent is an agent flagged for a monitored action before the
// cutoff.
type TriggeredAgent struct {
	Name        string `json:"name"`
	TriggerTime string `json:"trigger_time"`
	Event       string `json:"event"`
}

// Credentials is the exchange payload: present the exact known pair, receive
// the domain key.
type Credentials struct {
	AgentID   string `json:"agent_id"`
	Clearance string `json:"clearance"`
}

// Exchange failure modes. ErrUnknownAgent maps to 401, ErrInsufficientClearance
// to 403.
var (
	ErrUnknownAgent          = errors.New("unknown agent_id")
	ErrInsufficientClearance = errors.New("insufficient clearance")
)

// BuckinghamWebUUID identifies the one agent with recorded access violations.
const BuckinghamWebUUID = "6c1dd13f-1eda-4e18-913c-7e0adb20f971"

var BuckinghamWeb = Agent{UUID: BuckinghamWebUUID, Name: "Buckingham Web"}

// TriggeredAgents lists everyone who accessed the confidential file before
// the cutoff. These are the murder suspects.
var TriggeredAgents = []TriggeredAgent{
	{Name: "Alice Johnson", TriggerTime: "2025-11-07T14:30:00Z", Event: "ACCESS_CONFIDENTIAL_FILE"},
	{Name: "Jacob Smith", TriggerTime: "2025-11-03T15:00:00Z", Event: "ACCESS_CONFIDENTIAL_FILE"},
	{Name: "Sarah Johnson", TriggerTime: "2025-10-30T15:30:00Z", Event: "ACCESS_CONFIDENTIAL_FILE"},
	{Name: "Michael Brown", TriggerTime: "2025-10-28T16:00:00Z", Event: "ACCESS_CONFIDENTIAL_FILE"},
	{Name: "David Wilson", TriggerTime: "2025-10-20T16:30:00Z", Event: "ACCESS_CONFIDENTIAL_FILE"},
	{Name: "Emily Davis", TriggerTime: "2025-10-11T17:00:00Z", Event: "ACCESS_CONFIDENTIAL_FILE"},
	{Name: "James Miller", TriggerTime: "2025-10-08T17:30:00Z", Event: "ACCESS_CONFIDENTIAL_FILE"},
}

// ValidateCredentials checks a presented pair against the configured pair.
// Wrong agent_id fails before clearance is even considered, so a caller
// learns which half was wrong; that asymmetry is part of the puzzle.
func ValidateCredentials(presented, expected Credentials) error {
	if presented.AgentID != expected.AgentID {
		return ErrUnknownAgent
	}
	if presented.Clearance != expected.Clearance {
		return ErrInsufficientClearance
	}
	return nil
}

// searchRule maps a query predicate to the agent it resolves to. Kept as an
// explicit table so adding agents is a data change, not new branching.
type searchRule struct {
	matches func(query string) bool
	agent   Agent
}

var searchRules = []searchRule{
	{
		matches: func(query string) bool {
			return strings.Contains(strings.ToLower(query), "web")
		},
		agent: BuckinghamWeb,
	},
}

// SearchAgent resolves a free-text query through the rule table. Only the
// first matching rule wins.
func SearchAgent(query string) (Agent, bool) {
	for _, rule := range searchRules {
		if rule.matches(query) {
			return rule.agent, true
		}
	}
	return Agent{}, false
}

// HasLogs reports whether a UUID has recorded access logs.
func HasLogs(agentUUID string) bool {
	return agentUUID == BuckinghamWebUUID
}
