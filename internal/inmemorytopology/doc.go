// Package inmemorytopology provides a thread-safe, in-memory implementation
// of the topologystore.Store interface. Templates are small enough that the
// whole graph fits comfortably in memory.
package inmemorytopology
