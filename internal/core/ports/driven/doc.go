// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - WorkspaceStore: Durable key-value persistence of the document list
//     and the active-selection pointer
//   - ConfigStore: Editor settings persistence
//
// # Optional Interfaces
//
//   - Renderer: Markdown rendering. The core never depends on what the
//     renderer produces; without one, only the raw editor is available.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
