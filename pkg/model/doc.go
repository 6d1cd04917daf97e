// Package model holds the declarative descriptors the wizard engine is driven
// by: listing types, step and field descriptors, and the accumulated form
// values. Descriptors are plain data assembled once at process start; the
// registries validate their integrity before serving them.
package model
