package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	sprig "github.com/go-task/slim-sprig/v3"

	"img2pdf/config"
	"img2pdf/state"
)

// Values holds variables we make available for template expansion.
type Values struct {
	Context     string
	SourceFile  string
	Count       int
	Format      string
	PageSize    string
	Orientation string
	Date        string
}

func expandTemplate(name config.TemplateFieldName, field, srcName string, count int, env *state.LocalEnv) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	page := env.Cfg.Document.Page
	values := Values{
		Context:     string(name),
		SourceFile:  strings.TrimSuffix(filepath.Base(srcName), filepath.Ext(srcName)),
		Count:       count,
		Format:      "pdf",
		PageSize:    page.Size.String(),
		Orientation: page.Orientation.String(),
		Date:        time.Now().Format("2006-01-02"),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
