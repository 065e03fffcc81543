// Package formats provides parsers for the mesh formats the game loads.
package formats

// Note: OBJ (Wavefront) is implemented in obj.go
