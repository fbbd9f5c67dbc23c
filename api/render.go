package api

import (
	"embed"
	"html/template"
	"io"
	"net/url"
	"time"

	"github.com/rpupo63/portfolio-showcase/catalog"
	"github.com/rpupo63/portfolio-showcase/showcase"
)

//go:embed templates/*.html
var templateFS embed.FS

const eventsPath = "/showcase/events"

type renderer struct {
	templates *template.Template
}

func newRenderer() (*renderer, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"selectURL": selectURL,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &renderer{templates: t}, nil
}

func (rd *renderer) execute(w io.Writer, name string, data any) error {
	return rd.templates.ExecuteTemplate(w, name, data)
}

// selectURL is the event endpoint a project card posts to.
func selectURL(projectID string) string {
	q := url.Values{}
	q.Set("type", string(showcase.EventSelect))
	q.Set("projectId", projectID)
	return eventsPath + "?" + q.Encode()
}

type pageData struct {
	Site catalog.Site
	View showcase.View
	Year int
}

func newPageData(site catalog.Site, view showcase.View) pageData {
	return pageData{Site: site, View: view, Year: time.Now().Year()}
}
