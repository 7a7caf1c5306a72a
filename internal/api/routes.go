package api

import (
	"fmt"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"todo-api/internal/domain"
)

// Register wires the collection, documentation and health routes on e.
func Register(e *echo.Echo, daos DAOFactory, pinger Pinger, logger *log.Logger, collections ...domain.Collection) error {
	for _, c := range collections {
		res, err := newResource(c, daos, logger)
		if err != nil {
			return fmt.Errorf("failed to prepare %s routes: %w", c.Name, err)
		}

		base := "/" + c.Name
		for _, path := range []string{base, base + "/"} {
			e.GET(path, listTasks(res))
			e.POST(path, createTask(res))
		}
		e.GET(base+"/:id", getTask(res))
		e.PUT(base+"/:id", updateTask(res))
		e.DELETE(base+"/:id", deleteTask(res))
	}

	docs, err := renderDocs(Description(collections...))
	if err != nil {
		return fmt.Errorf("failed to render documentation: %w", err)
	}
	e.GET("/", docsPage(docs))
	e.GET(swaggerJSONPath, swaggerJSON(docs))
	e.GET(swaggerYAMLPath, swaggerYAML(docs))
	e.GET("/healthz", healthz(pinger))

	return nil
}
