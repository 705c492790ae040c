package api

import (
	"html/template"
	"io/fs"
	"strings"

	"github.com/sparkskytech/ieltsplan/internal/models"
)

// LoadTemplates parses the layouts, pages and partials found in fsys.
func LoadTemplates(fsys fs.FS) (*template.Template, error) {
	funcs := template.FuncMap{
		"selected": func(a, b string) bool {
			return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
		},
		"testTypes": func() []models.TestType {
			return []models.TestType{models.TestAcademic, models.TestGeneral}
		},
	}

	t := template.New("base").Funcs(funcs)

	patterns := []string{
		"layouts/*.html",
		"pages/*.html",
		"partials/*.html",
	}
	for _, p := range patterns {
		if matches, _ := fs.Glob(fsys, p); len(matches) == 0 {
			continue
		}
		if _, err := t.ParseFS(fsys, p); err != nil {
			return nil, err
		}
	}

	return t, nil
}
