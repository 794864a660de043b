// Package web serves the interactive screening form.  Templates are embedded
// so the binary is self-contained.
package web

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/MolScreen/internal/application/screening"
	"github.com/turtacn/MolScreen/internal/config"
	"github.com/turtacn/MolScreen/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MolScreen/pkg/errors"
	mtypes "github.com/turtacn/MolScreen/pkg/types/molecule"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler renders the web form and inline screening reports.
type Handler struct {
	service   screening.Service
	logger    logging.Logger
	templates *template.Template
}

// pageData is the template context for the index page.
type pageData struct {
	Version  string
	Examples []mtypes.ExampleMolecule
	SMILES   string
	Report   *mtypes.ScreeningReport
	Error    string
}

// NewHandler parses the embedded templates and builds the handler.
func NewHandler(svc screening.Service, log logging.Logger) (*Handler, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		// score renders a probability as a percentage, except LD50 which is a
		// dose in mg/kg.
		"score": func(endpoint string, v *float64) string {
			if v == nil {
				return "n/a"
			}
			if endpoint == "ld50" {
				return strconv.FormatFloat(*v, 'f', 0, 64) + " mg/kg"
			}
			return strconv.FormatFloat(*v*100, 'f', 0, 64) + "%"
		},
		"num": func(v float64) string {
			return strconv.FormatFloat(v, 'f', 2, 64)
		},
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to parse web templates")
	}
	return &Handler{
		service:   svc,
		logger:    log.Named("web"),
		templates: tmpl,
	}, nil
}

// Index handles GET / and the form POST.  A "smiles" value, from either the
// query string (example shortcuts) or the posted form, triggers a screening
// whose report renders inline; failures render as a banner instead of an
// error page.
func (h *Handler) Index(c *gin.Context) {
	data := pageData{
		Version:  config.Version,
		Examples: h.service.Examples(),
	}

	smiles := c.PostForm("smiles")
	if smiles == "" {
		smiles = c.Query("smiles")
	}

	if smiles != "" {
		data.SMILES = smiles
		report, err := h.service.Screen(c.Request.Context(), mtypes.ScreeningRequest{
			SMILES: smiles,
			Source: c.PostForm("source"),
		})
		if err != nil {
			data.Error = userMessage(err)
		} else {
			data.Report = report
		}
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(c.Writer, "index.html", data); err != nil {
		h.logger.Error("template render failed", logging.Err(err))
	}
}

func userMessage(err error) string {
	if appErr, ok := err.(*errors.AppError); ok {
		if appErr.Detail != "" {
			return appErr.Message + ": " + appErr.Detail
		}
		return appErr.Message
	}
	return "screening failed"
}
