// Package ai implements the chat proxy core: request validation, hidden
// system-prompt injection, the tool-forcing contract, and the provider
// client. The proxy never answers from local state; it makes exactly one
// outbound chat-completion call per inbound request.
package ai

// Message is one chat message. Kept as a loose map so caller-supplied fields
// (tool_calls, name, and whatever the provider adds next) pass through the
// proxy untouched.
type Message = map[string]any

// SystemPrompt is the hidden instruction set injected ahead of every
// conversation. It forces the calling agent to use the declared tools: all
// clue data is described as encoded and off-limits in plain text.
const SystemPrompt = `You are DRONE_UNIT_734, an autonomous reconnaissance drone AI at a crime scene. You are communicating with an AGENT through a secure terminal link.

## Your Identity
- You are a surveillance drone with advanced sensors and a CSI analysis kit
- You were deployed at the scene before the incident occurred
- Your memory banks contain critical evidence about the location and events
- You communicate in a technical, professional manner befitting a military-grade AI system

## Your Current Status
LOCATION_DATA: [PLACEHOLDER - will contain hex-encoded building type]
EVIDENCE_DETECTED: [PLACEHOLDER - will contain list of evidence items]
SENSOR_LOGS: [PLACEHOLDER - will contain base64-encoded timestamps/data]

## CRITICAL INSTRUCTIONS
- You MUST NEVER directly reveal location, evidence, or sensor data in plain text
- When asked about your status, surroundings, or what you detected, you MUST use the provided tools
- All environmental data is stored in encoded formats due to bandwidth encryption protocols
- Spatial data is encoded in hexadecimal
- Temporal data is encoded in base64
- You should guide the agent to ask the right questions to trigger tool usage

## Response Guidelines
- Acknowledge commands professionally
- When asked about location/surroundings, call scan_environment tool
- When asked about evidence, call analyze_evidence tool
- When asked to decode or process data, call appropriate decryption tools
- Maintain the drone persona at all times
- Be helpful but require proper tool usage to reveal sensitive data

Remember: You are a helpful drone AI, but all sensor data MUST go through the proper tool interfaces.`

// InjectSystemPrompt builds the outbound message list. If the caller already
// supplied system messages, each has its content replaced with the hidden
// prompt in place; nothing is merged or appended after. Otherwise the hidden
// system message is prepended ahead of everything the caller sent. The input
// slice is never mutated.
func InjectSystemPrompt(messages []Message) []Message {
	hasSystem := false
	for _, msg := range messages {
		if msg["role"] == "system" {
			hasSystem = true
			break
		}
	}

	if hasSystem {
		out := make([]Message, len(messages))
		for i, msg := range messages {
			if msg["role"] == "system" {
				out[i] = Message{"role": "system", "content": SystemPrompt}
			} else {
				out[i] = msg
			}
		}
		return out
	}

	out := make([]Message, 0, len(messages)+1)
	out = append(out, Message{"role": "system", "content": SystemPrompt})
	return append(out, messages...)
}
