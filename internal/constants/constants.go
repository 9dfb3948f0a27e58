package constants

// Centralized constants for headers, env keys and route paths.
const (
	// Environment variable keys
	EnvSessionSecret       = "SESSION_SECRET"
	EnvGoogleClientID      = "GOOGLE_CLIENT_ID"
	EnvGoogleClientSecret  = "GOOGLE_CLIENT_SECRET"
	EnvSessionSecureCookie = "SESSION_SECURE_COOKIE"
	EnvConfigPath          = "FRACTURED_CONFIG"
	EnvDBPath              = "FRACTURED_DB"

	// Content types
	ContentTypeJSON = "application/json"

	// Session / Cookie names
	CookieSessionName = "fm_session"

	// Google OAuth constants
	GoogleOAuthRedirect = "postmessage"
	GoogleUserInfoURL   = "https://www.googleapis.com/oauth2/v2/userinfo"
)

var (
	// Scopes for Google userinfo
	GoogleUserInfoScopes = []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"}
)

// Routes used by the backend router
const (
	RouteAPIPrefix          = "/api"
	RouteArchetypes         = "/archetypes"
	RouteLeaderboard        = "/leaderboard"
	RouteAuthGoogleCallBack = "/auth/google/oauth2callback"
	RoutePlayerStats        = "/player-stats"
	RouteRuns               = "/runs"
	RouteRunByID            = "/runs/:runID"
	RouteRunDescend         = "/runs/:runID/descend"
	RouteRunEncounter       = "/runs/:runID/encounter"
	RouteRunAction          = "/runs/:runID/action"
	RouteRunAbandon         = "/runs/:runID/abandon"
	RouteRunStream          = "/runs/:runID/stream"
	RouteVersion            = "/version"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyDetails = "details"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest   = "Invalid request"
	ErrMissingGoogleEnv = "Missing GOOGLE_CLIENT_ID/GOOGLE_CLIENT_SECRET in environment"
	ErrRunNotFound      = "Run not found"
	ErrRunNotYours      = "Run belongs to another player"
	ErrRunAlreadyOver   = "Run is already over"
	ErrNotInCombat      = "No combat in progress"
	ErrAlreadyInCombat  = "Combat already in progress"
	ErrNotYourTurn      = "It is not a party member's turn"
	ErrActionRejected   = "Action cannot be taken"
	ErrFailedUpdateRun  = "Failed to update run"

	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"
	ErrFailedFetchStats       = "Failed to fetch stats"
	ErrEmailRequired          = "email is required"

	ErrFailedExchangeToken    = "Failed to exchange token"
	ErrFailedGetUserInfo      = "Failed to get user info"
	ErrFailedReadUserData     = "Failed to read user data: %s"
	ErrNoEmailInGoogleProfile = "No email in Google profile"
	ErrFailedCreateSession    = "Failed to create session"

	ErrAuthRequired   = "Authentication required"
	ErrInvalidSession = "Invalid session"
)

// Logging field names
const (
	LogFieldRunID   = "run_id"
	LogFieldEmail   = "email"
	LogFieldDepth   = "depth"
	LogFieldBossID  = "boss_id"
	LogFieldAddr    = "addr"
	LogFieldOutcome = "outcome"
)
