// Package server implements the HTTP server using Echo framework.
//
// Routes: activities (public list + authenticated roster mutations), auth
// (login/logout/verify with bearer tokens), static assets, and observability
// (health, metrics, version). Handlers split by domain: handlers_auth.go,
// handlers_activities.go, handlers_health.go.
package server
