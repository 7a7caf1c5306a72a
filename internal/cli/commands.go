package cli

import (
	"context"
	"fmt"

	"todo-api/internal/api"
	"todo-api/internal/domain"
	"todo-api/internal/errors"
)

// InitDBCommand creates the schema for every collection
type InitDBCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewInitDBCommand creates a new init-db command handler
func NewInitDBCommand(app *App) *InitDBCommand {
	return &InitDBCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the init-db command
func (c *InitDBCommand) Execute(ctx context.Context) error {
	store, err := c.app.openStore()
	if err != nil {
		return c.errorHandler.Handle("open database", err)
	}
	defer store.Close()

	if err := store.InitSchema(ctx, domain.StorageTables(domain.Collections()...)...); err != nil {
		return c.errorHandler.Handle("initialize database", err)
	}

	fmt.Fprintf(c.app.out, "Initialized the database at %s\n", store.Path())
	return nil
}

// ServeCommand runs the HTTP API until its context is cancelled
type ServeCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(app *App) *ServeCommand {
	return &ServeCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the serve command. The schema is created before the server
// accepts requests.
func (c *ServeCommand) Execute(ctx context.Context) error {
	store, err := c.app.openStore()
	if err != nil {
		return c.errorHandler.Handle("open database", err)
	}
	defer store.Close()

	if err := store.InitSchema(ctx, domain.StorageTables(domain.Collections()...)...); err != nil {
		return c.errorHandler.Handle("initialize database", err)
	}

	srv, err := api.NewServer(c.app.config.Server, api.StoreDAOs(store), store, c.app.logger)
	if err != nil {
		return c.errorHandler.Handle("build server", err)
	}

	if err := srv.Start(ctx); err != nil {
		return c.errorHandler.Handle("serve", err)
	}
	return nil
}

// DocsCommand prints the Swagger document
type DocsCommand struct {
	app *App
}

// NewDocsCommand creates a new docs command handler
func NewDocsCommand(app *App) *DocsCommand {
	return &DocsCommand{app: app}
}

// Execute renders the document in the requested format, json or yaml
func (c *DocsCommand) Execute(format string) error {
	doc := api.Description(domain.Collections()...).Document()

	var (
		data []byte
		err  error
	)
	switch format {
	case "json":
		data, err = doc.JSON()
		data = append(data, '\n')
	case "yaml":
		data, err = doc.YAML()
	default:
		return errors.NewInvalidInputError("format", format, "must be json or yaml")
	}
	if err != nil {
		return err
	}

	_, err = c.app.out.Write(data)
	return err
}
