// Package app contains the core application logic. It resolves settings,
// builds the logger, and runs one compilation: read the template, load it
// into an in-memory topology, and serialize the result. It is decoupled from
// any specific entrypoint like a CLI.
package app
