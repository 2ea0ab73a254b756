package codegen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dhamidi/jbind/classinfo"
	"github.com/dhamidi/jbind/decl"
)

// DefaultRuntime is the import path of the runtime generated code uses.
const DefaultRuntime = "github.com/dhamidi/jbind/jvm"

// MissingClassError reports a declared class the fact base knows nothing about.
type MissingClassError struct {
	Class string
	Span  decl.Span
}

func (e *MissingClassError) Error() string {
	return fmt.Sprintf("%s: no class metadata for %s", e.Span, e.Class)
}

type Options struct {
	// ImportRoot is the import path generated packages live under.
	ImportRoot string
	// Runtime is the import path of the runtime package.
	Runtime string
}

// File is one generated Go source file.
type File struct {
	JavaPackage string
	Package     string
	// Path is relative to the output root.
	Path     string
	Source   []byte
	Bindings []*ClassBinding
}

// Write stores f below dir.
func (f *File) Write(dir string) error {
	path := filepath.Join(dir, filepath.FromSlash(f.Path))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, f.Source, 0o644)
}

type Generator struct {
	facts *classinfo.FactBase
	opts  Options
}

func NewGenerator(facts *classinfo.FactBase, opts Options) *Generator {
	if opts.Runtime == "" {
		opts.Runtime = DefaultRuntime
	}
	return &Generator{facts: facts, opts: opts}
}

type packageClasses struct {
	name    string
	classes []decl.Class
	seen    map[string]bool
}

// Generate produces one file per Java package named in d. Packages declared
// more than once are merged and classes declared more than once are bound
// once. Any class missing from the fact base fails the whole declaration.
func (g *Generator) Generate(d *decl.Declaration) ([]*File, error) {
	var order []*packageClasses
	byName := make(map[string]*packageClasses)
	for _, pkg := range d.Packages {
		name := pkg.Name.String()
		pc, ok := byName[name]
		if !ok {
			pc = &packageClasses{name: name, seen: make(map[string]bool)}
			byName[name] = pc
			order = append(order, pc)
		}
		for _, c := range pkg.Classes {
			if pc.seen[c.Name] {
				log.Debugf("%s: %s.%s declared again", c.Span, name, c.Name)
				continue
			}
			pc.seen[c.Name] = true
			pc.classes = append(pc.classes, c)
		}
	}

	files := make([]*File, 0, len(order))
	for _, pc := range order {
		f, err := g.generatePackage(pc)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func (g *Generator) generatePackage(pc *packageClasses) (*File, error) {
	infos := make([]*classinfo.ClassInfo, len(pc.classes))
	for i, c := range pc.classes {
		qualified := pc.name + "." + c.Name
		info, ok := g.facts.Lookup(qualified)
		if !ok {
			return nil, &MissingClassError{Class: qualified, Span: c.Span}
		}
		infos[i] = info
	}

	imports := NewImports(g.opts.ImportRoot, g.opts.Runtime, pc.name)
	names := NewNamespace()
	for _, info := range infos {
		names.Reserve(TypeName(info.SimpleName()))
	}

	file := &PackageFile{
		JavaPackage: pc.name,
		Name:        PackageName(pc.name),
	}
	for _, info := range infos {
		binding, err := BindClass(info, imports, names)
		if err != nil {
			return nil, err
		}
		log.Infof("%s: %d constructors, %d methods, %d skipped",
			info.Name, len(binding.Constructors), len(binding.Methods), len(binding.Skipped))
		file.Classes = append(file.Classes, binding)
	}
	file.Imports = imports.List()

	src, err := Emit(file)
	if err != nil {
		return nil, fmt.Errorf("package %s: %w", pc.name, err)
	}
	return &File{
		JavaPackage: pc.name,
		Package:     file.Name,
		Path:        PackageDir(pc.name) + "/" + file.Name + ".jbind.go",
		Source:      src,
		Bindings:    file.Classes,
	}, nil
}
