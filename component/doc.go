// Package component defines the lifecycle interface for long-lived parts of
// an application, such as a provider registry.
//
// Components are registered with a Registry, started in registration order,
// stopped in reverse order and asked for their health. The bootstrap package
// drives the registry.
//
// # Interfaces
//
//   - Component: core lifecycle interface (Start/Stop/Health)
//   - Describable: startup summary descriptions
package component
