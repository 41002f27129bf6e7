// Package marketsdk contains the wire types for the motodrive HTTP API and
// a small typed client. The server handlers and external consumers share
// these definitions so the two sides cannot drift apart.
package marketsdk
