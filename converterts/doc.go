// Package converters renders core.Graph values in formats other tools read.
// Today that is Graphviz DOT, optionally with a coloring as vertex fills.
package converters
