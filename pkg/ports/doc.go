/*
Package ports defines the driven ports (interfaces) behind the host surface.

These interfaces decouple helpers and tools from external implementations, so the
same code runs against in-memory, Redis or file-backed adapters.

# Key Interfaces

  - Gate: admits one event per key and window; backs cross-process throttling.
  - PaletteSource: resolves named colour palettes (e.g. from a Loam directory).
*/
package ports
