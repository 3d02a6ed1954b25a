// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this package
// defines the listen port, the optional API key and the graceful shutdown budget.
package server
