package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"todo-api/internal/domain"
	apperrors "todo-api/internal/errors"
	"todo-api/internal/validation"
)

const validationFailedMessage = "Input payload validation failed"

// resource bundles what the handlers of one collection need.
type resource struct {
	collection domain.Collection
	daos       DAOFactory
	payload    *validation.PayloadValidator
	ids        *validation.Validator
	mapper     *domain.TaskMapper
	logger     *log.Logger
}

func newResource(c domain.Collection, daos DAOFactory, logger *log.Logger) (*resource, error) {
	if c.View == nil {
		return nil, fmt.Errorf("collection %s has no view", c.Name)
	}
	payload, err := validation.NewPayloadValidator(ChangeModel(c))
	if err != nil {
		return nil, err
	}
	return &resource{
		collection: c,
		daos:       daos,
		payload:    payload,
		ids:        validation.NewValidator(),
		mapper:     domain.NewTaskMapper(),
		logger:     logger,
	}, nil
}

// open returns a DAO on a fresh session and the func that releases it.
func (r *resource) open() (TaskDAO, func()) {
	dao := r.daos(r.collection)
	return dao, func() {
		if err := dao.Close(); err != nil {
			r.logger.WithError(err).WithField("collection", r.collection.Name).Warn("failed to release storage handle")
		}
	}
}

// text reads and validates the request body, returning the task text.
func (r *resource) text(c echo.Context) (string, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return "", err
	}
	payload, err := r.payload.Validate(body)
	if err != nil {
		if ve, ok := err.(*validation.ValidationError); ok {
			return "", apperrors.NewValidationError(validationFailedMessage, ve)
		}
		return "", err
	}
	return payload.String(r.collection.Field), nil
}

// id parses the :id path parameter. Anything but an unsigned integer does
// not match the item route.
func (r *resource) id(c echo.Context) (int64, error) {
	id, ok := r.ids.ParseTaskID(c.Param("id"))
	if !ok {
		return 0, echo.ErrNotFound
	}
	return id, nil
}

// storageContext detaches storage calls from client cancellation so that a
// statement, once issued, runs to completion.
func storageContext(c echo.Context) context.Context {
	return context.WithoutCancel(c.Request().Context())
}

func listTasks(r *resource) echo.HandlerFunc {
	return func(c echo.Context) error {
		dao, release := r.open()
		defer release()

		records, err := dao.All(storageContext(c))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, r.collection.Views(r.mapper.FromDatabaseSlice(records)))
	}
}

func createTask(r *resource) echo.HandlerFunc {
	return func(c echo.Context) error {
		text, err := r.text(c)
		if err != nil {
			return err
		}

		dao, release := r.open()
		defer release()

		record, err := dao.Create(storageContext(c), text)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, r.collection.View(r.mapper.FromDatabase(*record)))
	}
}

func getTask(r *resource) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := r.id(c)
		if err != nil {
			return err
		}

		dao, release := r.open()
		defer release()

		record, err := dao.Get(storageContext(c), id)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, r.collection.View(r.mapper.FromDatabase(*record)))
	}
}

func updateTask(r *resource) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := r.id(c)
		if err != nil {
			return err
		}
		text, err := r.text(c)
		if err != nil {
			return err
		}

		dao, release := r.open()
		defer release()

		record, err := dao.Update(storageContext(c), id, text)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, r.collection.View(r.mapper.FromDatabase(*record)))
	}
}

func deleteTask(r *resource) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := r.id(c)
		if err != nil {
			return err
		}

		dao, release := r.open()
		defer release()

		if err := dao.Delete(storageContext(c), id); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}
}
