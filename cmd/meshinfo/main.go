// meshinfo is a CLI utility for inspecting maze and character OBJ meshes.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Faultbox/neonmaze/internal/assets"
	"github.com/Faultbox/neonmaze/internal/collision"
	"github.com/Faultbox/neonmaze/pkg/formats"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "boxes":
		cmdBoxes(args)
	case "fetch":
		cmdFetch(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshinfo - OBJ mesh inspection utility

Usage:
  meshinfo <command> [options]

Commands:
  info <file.obj>                     Show record counts and bounds
  boxes [-offset y] [-n N] <file.obj> Show wall collision boxes
  fetch [-root R]... [-cache dir] <name>...
                                      Load meshes through the asset roots

Examples:
  meshinfo info assets/modelo/labirinth.obj
  meshinfo boxes -offset -1 -n 10 assets/modelo/labirinth.obj
  meshinfo fetch -root assets -root https://example.com/pack pac_man.obj`)
}

func openOBJ(path string) *formats.OBJ {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	mesh, err := formats.ReadOBJ(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return mesh
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshinfo info <file.obj>")
		os.Exit(1)
	}

	mesh := openOBJ(args[0])
	printMesh(args[0], mesh)
}

func printMesh(name string, mesh *formats.OBJ) {
	s := mesh.Stats
	fmt.Printf("Mesh:      %s\n", name)
	fmt.Printf("Positions: %d\n", s.Positions)
	fmt.Printf("Normals:   %d\n", s.Normals)
	fmt.Printf("Texcoords: %d\n", s.Texcoords)
	fmt.Printf("Faces:     %d\n", s.Faces)
	fmt.Printf("Triangles: %d\n", mesh.TriangleCount())
	if s.Skipped > 0 {
		fmt.Printf("Skipped:   %d\n", s.Skipped)
	}
	if mesh.Empty() {
		fmt.Println("Bounds:    (empty)")
		return
	}
	lo, hi := mesh.Bounds()
	fmt.Printf("Bounds:    [%.3f %.3f %.3f] .. [%.3f %.3f %.3f]\n", lo[0], lo[1], lo[2], hi[0], hi[1], hi[2])
	fmt.Printf("Normals:   %v\n", mesh.HasNormals())
}

func cmdBoxes(args []string) {
	fs := flag.NewFlagSet("boxes", flag.ExitOnError)
	offset := fs.Float64("offset", 0, "Vertical offset added to every vertex")
	limit := fs.Int("n", 0, "Print the first N boxes (0 = none)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshinfo boxes [-offset y] [-n N] <file.obj>")
		os.Exit(1)
	}

	mesh := openOBJ(fs.Arg(0))
	boxes := collision.BuildAABBs(mesh.Positions, float32(*offset))

	fmt.Printf("Mesh:  %s\n", fs.Arg(0))
	fmt.Printf("Boxes: %d\n", len(boxes))
	if u, ok := collision.Union(boxes); ok {
		fmt.Printf("Union: [%.3f %.3f %.3f] .. [%.3f %.3f %.3f]\n",
			u.Min.X, u.Min.Y, u.Min.Z, u.Max.X, u.Max.Y, u.Max.Z)
	}

	for i, b := range boxes {
		if i >= *limit {
			break
		}
		size := b.Size()
		fmt.Printf("  %5d  center (%.3f, %.3f, %.3f)  size (%.3f, %.3f, %.3f)\n",
			i, b.Center.X, b.Center.Y, b.Center.Z, size.X, size.Y, size.Z)
	}
}

// rootList collects repeated -root flags.
type rootList []string

func (r *rootList) String() string     { return strings.Join(*r, ",") }
func (r *rootList) Set(v string) error { *r = append(*r, v); return nil }

func cmdFetch(args []string) {
	fs := flag.NewFlagSet("fetch", flag.ExitOnError)
	var roots rootList
	fs.Var(&roots, "root", "Asset root directory or http(s) URL (repeatable, later wins)")
	cacheDir := fs.String("cache", "", "Parsed mesh cache directory")
	timeout := fs.Duration("timeout", 10*time.Second, "HTTP timeout")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshinfo fetch [-root R]... [-cache dir] <name>...")
		os.Exit(1)
	}
	if len(roots) == 0 {
		roots = rootList{"assets"}
	}

	m := assets.NewManager(assets.Options{
		CacheDir:    *cacheDir,
		HTTPTimeout: *timeout,
		Concurrency: 4,
	})
	defer m.Close()
	if err := m.AddRoots(roots); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	meshes, err := m.LoadMeshes(context.Background(), fs.Args())
	for _, name := range fs.Args() {
		if mesh, ok := meshes[name]; ok {
			printMesh(name, mesh)
			fmt.Println()
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
