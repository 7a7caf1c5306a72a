package api

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/apidoc"
	apperrors "todo-api/internal/errors"
)

const (
	swaggerJSONPath = "/swagger.json"
	swaggerYAMLPath = "/swagger.yaml"
	mimeYAML        = "application/yaml"
)

// renderedDocs holds the documentation rendered once at startup.
type renderedDocs struct {
	json []byte
	yaml []byte
	html []byte
}

func renderDocs(description apidoc.API) (*renderedDocs, error) {
	doc := description.Document()

	jsonData, err := doc.JSON()
	if err != nil {
		return nil, err
	}
	yamlData, err := doc.YAML()
	if err != nil {
		return nil, err
	}
	var page bytes.Buffer
	if err := description.RenderHTML(&page, swaggerJSONPath); err != nil {
		return nil, err
	}

	return &renderedDocs{json: jsonData, yaml: yamlData, html: page.Bytes()}, nil
}

func swaggerJSON(docs *renderedDocs) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, docs.json)
	}
}

func swaggerYAML(docs *renderedDocs) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Blob(http.StatusOK, mimeYAML, docs.yaml)
	}
}

func docsPage(docs *renderedDocs) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.HTMLBlob(http.StatusOK, docs.html)
	}
}

type healthResponse struct {
	Status string `json:"status"`
}

func healthz(pinger Pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := pinger.Ping(c.Request().Context()); err != nil {
			if _, ok := apperrors.As(err); ok {
				return err
			}
			return apperrors.NewDatabaseError("ping", err)
		}
		return c.JSON(http.StatusOK, healthResponse{Status: "ok"})
	}
}
