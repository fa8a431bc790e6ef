// Package main generates markdown reference documentation for a project's
// attached properties from its properties.yaml manifest.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-drift/attached/cmd/propdoc/internal/manifest"
)

func main() {
	manifestPath := flag.String("manifest", "properties.yaml", "manifest file, relative to the module root")
	outDir := flag.String("out", filepath.Join("docs", "properties"), "output directory, relative to the module root")
	flag.Parse()

	root, err := manifest.FindProjectRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding module root: %v\n", err)
		os.Exit(1)
	}

	modulePath, err := manifest.ModulePath(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving module path: %v\n", err)
		os.Exit(1)
	}

	m, err := manifest.Load(filepath.Join(root, *manifestPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading manifest: %v\n", err)
		os.Exit(1)
	}

	dir := filepath.Join(root, *outDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	groups := append([]manifest.Group(nil), m.Groups...)
	sort.Slice(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })

	for _, group := range groups {
		fmt.Printf("Generating docs for %s...\n", group.Name)
		page := renderGroup(modulePath, group)
		dest := filepath.Join(dir, group.Name+".md")
		if err := os.WriteFile(dest, []byte(page), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", dest, err)
			os.Exit(1)
		}
	}

	fmt.Println("\nProperty documentation generated successfully!")
}

func renderGroup(modulePath string, group manifest.Group) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", group.Name)
	if group.Package != "" {
		fmt.Fprintf(&b, "Import: `%s`\n\n", modulePath+"/"+filepath.ToSlash(group.Package))
	}
	if group.Doc != "" {
		fmt.Fprintf(&b, "%s\n\n", group.Doc)
	}

	b.WriteString("| Property | Owner | Type | Default | Coercion |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, p := range group.Properties {
		fmt.Fprintf(&b, "| `%s` | `%s` | `%s` | %s | %s |\n",
			p.Name, p.Owner, p.Type, orDash(p.Default), orDash(p.Coerce))
	}
	b.WriteString("\n")

	for _, p := range group.Properties {
		if p.Doc == "" {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", p.Name, p.Doc)
	}

	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
