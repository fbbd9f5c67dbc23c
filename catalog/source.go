package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rpupo63/portfolio-showcase/errs"
)

//go:embed default_catalog.yaml
var defaultDocument []byte

// Document is the YAML shape of a catalog file.
type Document struct {
	Site     Site      `yaml:"site"`
	Projects []Project `yaml:"projects"`
}

// Source produces the project records a catalog is built from. It is called
// once at startup.
type Source interface {
	Load(ctx context.Context) ([]Project, error)
}

// Decode parses a catalog document, rejecting keys it does not know about.
func Decode(r io.Reader) (Document, error) {
	var doc Document

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, errs.NewInvalidCatalogError(errors.New("empty catalog document"))
		}
		return Document{}, errs.NewInvalidCatalogError(err)
	}
	return doc, nil
}

// ReadFile decodes the catalog document at path.
func ReadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	doc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Document{}, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	return doc, nil
}

// DefaultDocument returns the catalog compiled into the binary.
func DefaultDocument() Document {
	doc, err := Decode(bytes.NewReader(defaultDocument))
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return doc
}

// EmbeddedSource serves the compiled-in catalog.
type EmbeddedSource struct{}

func (EmbeddedSource) Load(context.Context) ([]Project, error) {
	return DefaultDocument().Projects, nil
}

// FileSource reads projects from a YAML catalog file.
type FileSource struct {
	Path string
}

func (s FileSource) Load(context.Context) ([]Project, error) {
	doc, err := ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	return doc.Projects, nil
}

// Load builds a catalog from src.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	projects, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return New(projects)
}

// DefaultSite returns the compiled-in site profile.
func DefaultSite() Site {
	return DefaultDocument().Site
}

// LoadSite reads the site profile from path, or the embedded profile when path
// is empty.
func LoadSite(path string) (Site, error) {
	var site Site
	if path == "" {
		site = DefaultSite()
	} else {
		doc, err := ReadFile(path)
		if err != nil {
			return Site{}, err
		}
		site = doc.Site
	}

	if err := site.Validate(); err != nil {
		return Site{}, errs.NewInvalidCatalogError(fmt.Errorf("site: %w", err))
	}
	return site, nil
}
