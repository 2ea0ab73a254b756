package classinfo

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhamidi/jbind/classfile"
)

// Load builds a fact base from fact files (.yaml, .yml, .json), class files,
// jars and directories. Later paths override classes from earlier ones.
func Load(paths ...string) (*FactBase, error) {
	fb := NewFactBase()
	for _, path := range paths {
		if err := loadPath(fb, path); err != nil {
			return nil, err
		}
	}
	return fb, nil
}

func loadPath(fb *FactBase, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return loadDir(fb, path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		facts, err := LoadYAMLFile(path)
		if err != nil {
			return err
		}
		fb.Merge(facts)
		return nil
	case ".class":
		cf, err := classfile.ParseFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return addClassFile(fb, cf, path)
	case ".jar", ".zip":
		return loadArchive(fb, path)
	default:
		return fmt.Errorf("%s: unsupported fact source", path)
	}
}

func loadDir(fb *FactBase, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isClassEntry(path) {
			return nil
		}
		cf, err := classfile.ParseFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if !bindable(cf) {
			return nil
		}
		return addClassFile(fb, cf, path)
	})
}

func loadArchive(fb *FactBase, path string) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer r.Close()

	log.Infof("scanning %s", path)
	return loadZipFiles(fb, r.File, path)
}

func loadZipFiles(fb *FactBase, files []*zip.File, origin string) error {
	for _, f := range files {
		if f.FileInfo().IsDir() {
			continue
		}
		switch {
		case isClassEntry(f.Name):
			data, err := readZipEntry(f)
			if err != nil {
				return fmt.Errorf("%s!%s: %w", origin, f.Name, err)
			}
			cf, err := classfile.Parse(bytes.NewReader(data))
			if err != nil {
				return fmt.Errorf("%s!%s: %w", origin, f.Name, err)
			}
			if !bindable(cf) {
				continue
			}
			if err := addClassFile(fb, cf, origin+"!"+f.Name); err != nil {
				return err
			}
		case strings.HasSuffix(f.Name, ".jar"):
			data, err := readZipEntry(f)
			if err != nil {
				return fmt.Errorf("%s!%s: %w", origin, f.Name, err)
			}
			nested, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
			if err != nil {
				return fmt.Errorf("%s!%s: %w", origin, f.Name, err)
			}
			if err := loadZipFiles(fb, nested.File, origin+"!"+f.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

func readZipEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func isClassEntry(name string) bool {
	if !strings.HasSuffix(name, ".class") {
		return false
	}
	base := filepath.Base(name)
	return base != "module-info.class" && base != "package-info.class"
}

// bindable reports whether a class found while scanning is worth keeping:
// public and not anonymous or local.
func bindable(cf *classfile.ClassFile) bool {
	if !cf.AccessFlags.IsPublic() || cf.AccessFlags.IsSynthetic() {
		return false
	}
	name := cf.ClassName()
	if i := strings.LastIndexByte(name, '$'); i != -1 && i+1 < len(name) {
		c := name[i+1]
		return c < '0' || c > '9'
	}
	return true
}

func addClassFile(fb *FactBase, cf *classfile.ClassFile, origin string) error {
	info, err := FromClassFile(cf)
	if err != nil {
		return fmt.Errorf("%s: %w", origin, err)
	}
	fb.Add(info)
	return nil
}
