// Command latticegen generates fieldwise semilattice merge code.
//
// For each named struct type it emits a Join method (fieldwise join) and
// a PartialCompare method (fieldwise comparison combined with
// lattice.Combine). The generated methods are what make a product of
// semilattice fields a semilattice itself, so the laws of the whole
// follow from the laws of the parts.
//
// Only struct types are accepted. There is no lawful fieldwise merge for
// interfaces or other sum-like shapes — two values of different variants
// have no least upper bound — so asking for one is a hard error, caught
// here at generation time rather than at merge time.
//
// Usage (via go:generate in the target package):
//
//	latticegen -type Owned,Shared,Slice,Root -output zz_generated_join.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"go/types"
	"os"
	"strings"
	"text/template"

	"golang.org/x/tools/go/packages"
)

func main() {
	typeNames := flag.String("type", "", "comma-separated struct type names")
	output := flag.String("output", "zz_generated_join.go", "output file name")
	dir := flag.String("dir", ".", "package directory")
	flag.Parse()

	if *typeNames == "" {
		fmt.Fprintln(os.Stderr, "latticegen: -type is required")
		os.Exit(1)
	}

	names := strings.Split(*typeNames, ",")
	args := fmt.Sprintf("-type %s -output %s", *typeNames, *output)
	if err := run(*dir, names, args, *output); err != nil {
		fmt.Fprintf(os.Stderr, "latticegen: %v\n", err)
		os.Exit(1)
	}
}

func run(dir string, names []string, args, output string) error {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedSyntax,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return fmt.Errorf("load package: %w", err)
	}
	if len(pkgs) != 1 {
		return fmt.Errorf("expected one package in %s, got %d", dir, len(pkgs))
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return fmt.Errorf("package %s: %v", pkg.Name, pkg.Errors[0])
	}

	var targets []target
	for _, name := range names {
		name = strings.TrimSpace(name)
		tgt, err := inspect(pkg, name)
		if err != nil {
			return err
		}
		targets = append(targets, tgt)
	}

	src, err := render(pkg.Name, args, targets)
	if err != nil {
		return err
	}
	return os.WriteFile(output, src, 0644)
}

// target is one struct type to generate merge methods for.
type target struct {
	Name   string
	Fields []string
}

// inspect resolves a type name to a struct and verifies every exported
// field itself carries the merge methods the generated code will call.
func inspect(pkg *packages.Package, name string) (target, error) {
	obj := pkg.Types.Scope().Lookup(name)
	if obj == nil {
		return target{}, fmt.Errorf("type %s not found in package %s", name, pkg.Name)
	}
	named, ok := obj.Type().(*types.Named)
	if !ok {
		return target{}, fmt.Errorf("%s is not a named type", name)
	}
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		// Sum-like types have no fieldwise merge: refuse rather than
		// generate something unlawful.
		return target{}, fmt.Errorf("%s is a %T, not a struct; only product types have a fieldwise join", name, named.Underlying())
	}

	tgt := target{Name: name}
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if !f.Exported() {
			return target{}, fmt.Errorf("%s.%s: unexported fields cannot participate in a merge", name, f.Name())
		}
		if err := checkMergeable(f.Type()); err != nil {
			return target{}, fmt.Errorf("%s.%s: %w", name, f.Name(), err)
		}
		tgt.Fields = append(tgt.Fields, f.Name())
	}
	if len(tgt.Fields) == 0 {
		return target{}, fmt.Errorf("%s has no fields to merge", name)
	}
	return tgt, nil
}

// checkMergeable verifies a field type's method set has Join and
// PartialCompare. Signatures are left to the compiler; presence is
// enough to produce a useful error at generation time.
func checkMergeable(t types.Type) error {
	ms := types.NewMethodSet(t)
	for _, want := range []string{"Join", "PartialCompare"} {
		found := false
		for i := 0; i < ms.Len(); i++ {
			if ms.At(i).Obj().Name() == want {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("field type %s has no %s method", t, want)
		}
	}
	return nil
}

var fileTemplate = template.Must(template.New("join").Parse(`// Code generated by latticegen {{.Args}}; DO NOT EDIT.

package {{.Package}}

import "github.com/daviddao/weft/pkg/lattice"
{{range .Targets}}
// Join merges {{.Name}} fieldwise.
func (x {{.Name}}) Join(o {{.Name}}) {{.Name}} {
	return {{.Name}}{
{{- range .Fields}}
		{{.}}: x.{{.}}.Join(o.{{.}}),
{{- end}}
	}
}

// PartialCompare compares {{.Name}} fieldwise.
func (x {{.Name}}) PartialCompare(o {{.Name}}) lattice.Ordering {
	return lattice.Combine(
{{- range .Fields}}
		x.{{.}}.PartialCompare(o.{{.}}),
{{- end}}
	)
}
{{end}}`))

func render(pkgName, args string, targets []target) ([]byte, error) {
	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Package string
		Args    string
		Targets []target
	}{Package: pkgName, Args: args, Targets: targets})
	if err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return src, nil
}
