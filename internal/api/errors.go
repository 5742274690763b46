package api

import "errors"

var (
	ErrMissingUserAgent = errors.New("user_agent or user_agents is required")
	ErrMalformedBody    = errors.New("malformed request body")
	ErrTooManyAgents    = errors.New("too many user agents in one request")
)
