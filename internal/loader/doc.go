// Package loader compiles a template into a topology store.
//
// A Loader reads its input one line at a time. Each line is parsed by the
// state machine with the grammar of the current section and the resulting
// record is resolved against two symbol tables: node names to store handles
// and pattern names to compiled matchers. Resolution is fail-fast. The first
// error stops the load, is wrapped in a *diag.LineError, and leaves whatever
// was already added in the store.
//
// Before any line is read, New adds an implicit root node and registers it as
// "root", so edges may start at root without declaring it. A [nodes] entry
// called root replaces the symbol like any other redefinition.
package loader
