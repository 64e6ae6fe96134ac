// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the extraction lifecycle (read records,
// compute the closure, build the graph, merge the saved layout, persist),
// decoupled from any specific entrypoint like a CLI.
package app
