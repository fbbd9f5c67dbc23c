package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-showcase/errs"
)

func sampleProjects() []Project {
	return []Project{
		{ID: "a", Title: "Alpha", Description: "first", Tags: []string{"go", "go"}, Images: []string{"/a/1.png", "/a/2.png"}},
		{ID: "b", Title: "Beta", Description: "second"},
		{ID: "c", Title: "Gamma", Description: "third", LongDescription: "more at https://c.test", Link: "https://c.test"},
	}
}

func TestNew_PreservesOrder(t *testing.T) {
	c, err := New(sampleProjects())
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"a", "b", "c"}, c.IDs())
	assert.Equal(t, []string{"go", "go"}, c.All()[0].Tags, "duplicate tags are kept")
}

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	projects := append(sampleProjects(), Project{ID: "b", Title: "Beta again"})

	_, err := New(projects)
	require.Error(t, err)
	assert.True(t, errs.IsDuplicateProjectID(err))
	assert.Contains(t, err.Error(), `"b"`)
}

func TestNew_ValidatesRecords(t *testing.T) {
	tests := []struct {
		name    string
		project Project
	}{
		{"missing id", Project{Title: "x"}},
		{"missing title", Project{ID: "x"}},
		{"empty tag", Project{ID: "x", Title: "x", Tags: []string{"ok", ""}}},
		{"empty image", Project{ID: "x", Title: "x", Images: []string{""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New([]Project{tt.project})
			require.Error(t, err)
			assert.True(t, errs.IsInvalidCatalog(err))
		})
	}
}

func TestCatalog_CopiesDoNotLeak(t *testing.T) {
	src := sampleProjects()
	c, err := New(src)
	require.NoError(t, err)

	src[0].Images[0] = "mutated"
	all := c.All()
	all[0].Tags[0] = "mutated"
	got, ok := c.Lookup("a")
	require.True(t, ok)
	got.Images[1] = "mutated"

	again, _ := c.Lookup("a")
	assert.Equal(t, []string{"/a/1.png", "/a/2.png"}, again.Images)
	assert.Equal(t, []string{"go", "go"}, again.Tags)
}

func TestCatalog_Get(t *testing.T) {
	c, err := New(sampleProjects())
	require.NoError(t, err)

	p, err := c.Get("c")
	require.NoError(t, err)
	assert.Equal(t, "Gamma", p.Title)

	_, err = c.Get("zzz")
	require.Error(t, err)
	assert.True(t, errs.IsUnknownProject(err))
	assert.Equal(t, 404, errs.StatusOf(err))
}

func TestProject_Body(t *testing.T) {
	assert.Equal(t, "first", Project{Description: "first"}.Body())
	assert.Equal(t, "long", Project{Description: "first", LongDescription: "long"}.Body())
}

func TestDefaultCatalog_UniqueIDs(t *testing.T) {
	c, err := Load(context.Background(), EmbeddedSource{})
	require.NoError(t, err)

	require.Equal(t, 4, c.Len())
	seen := map[string]bool{}
	for _, id := range c.IDs() {
		assert.False(t, seen[id], "id %q repeated", id)
		seen[id] = true
	}

	street, ok := c.Lookup("streetlight-8051")
	require.True(t, ok)
	assert.Equal(t, []string{"8051", "Embedded C", "Sensors"}, street.Tags)
	assert.Contains(t, street.Body(), "https://www.youtube.com/watch?v=5ucZLeoO1QQ")
	assert.Len(t, street.Images, 2)
}

func TestDefaultSite(t *testing.T) {
	site, err := LoadSite("")
	require.NoError(t, err)

	assert.NotEmpty(t, site.Owner)
	assert.Len(t, site.Nav, 3)
	assert.Equal(t, "#projects", site.Nav[1].Href)
	assert.NotEmpty(t, site.Contact.Href)
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	doc := `
projects:
  - id: a
    title: Alpha
    colour: "rgba(23, 23, 23, 0.8)"
`
	_, err := Decode(strings.NewReader(doc))
	require.Error(t, err)
	assert.True(t, errs.IsInvalidCatalog(err))
}

func TestDecode_Empty(t *testing.T) {
	_, err := Decode(strings.NewReader(""))
	require.Error(t, err)
	assert.True(t, errs.IsInvalidCatalog(err))
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	content := `
site:
  owner: Someone
projects:
  - id: one
    title: One
    tags: [x]
    images: [/one.png]
  - id: two
    title: Two
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := Load(context.Background(), FileSource{Path: path})
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, c.IDs())

	site, err := LoadSite(path)
	require.NoError(t, err)
	assert.Equal(t, "Someone", site.Owner)
}

func TestFileSource_Missing(t *testing.T) {
	_, err := Load(context.Background(), FileSource{Path: filepath.Join(t.TempDir(), "nope.yaml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read catalog file")
}

func TestLoadSite_RequiresOwner(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("site:\n  headline: hi\n"), 0o644))

	_, err := LoadSite(path)
	require.Error(t, err)
	assert.True(t, errs.IsInvalidCatalog(err))
}
