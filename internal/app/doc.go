// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle: resolve which deck
// files to read, parse them into one document, render the result. It is
// decoupled from any specific entrypoint like a CLI.
package app
