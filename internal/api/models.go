package api

import (
	"fmt"
	"net/http"
	"strings"

	"todo-api/internal/apidoc"
	"todo-api/internal/domain"
)

const (
	apiTitle       = "To Do API"
	apiVersion     = "1.0"
	apiDescription = `A example "To Do" API`
)

// TaskModel describes the representation returned for a collection.
func TaskModel(c domain.Collection) apidoc.Model {
	return apidoc.Model{
		Name: c.Title,
		Fields: []apidoc.Field{
			{Name: "id", Type: apidoc.FieldInteger, ReadOnly: true, Description: "The task unique identifier"},
			{Name: c.Field, Type: apidoc.FieldString, Required: true, Description: "The task details"},
		},
	}
}

// ChangeModel describes the body accepted by create and update.
func ChangeModel(c domain.Collection) apidoc.Model {
	return apidoc.Model{
		Name: c.Title + " Change",
		Fields: []apidoc.Field{
			{Name: c.Field, Type: apidoc.FieldString, Required: true, Description: "The task details"},
		},
	}
}

// Namespace declares the routes served for a collection.
func Namespace(c domain.Collection) apidoc.Namespace {
	model := TaskModel(c)
	change := ChangeModel(c)
	singular := strings.ToLower(c.Noun)

	return apidoc.Namespace{
		Name:        c.Name,
		Description: c.Description,
		Routes: []apidoc.Route{
			{
				Path: "/",
				Operations: []apidoc.Operation{
					{
						Method:      http.MethodGet,
						ID:          "list_" + c.Name,
						Summary:     "List all tasks",
						Returns:     &model,
						ReturnsList: true,
					},
					{
						Method:  http.MethodPost,
						ID:      "create_" + singular,
						Summary: "Create a new task",
						Expect:  &change,
						Returns: &model,
						Status:  http.StatusCreated,
					},
				},
			},
			{
				Path:   "/{id}",
				Params: []apidoc.PathParam{{Name: "id", Type: apidoc.FieldInteger, Description: "The task identifier"}},
				Operations: []apidoc.Operation{
					{
						Method:    http.MethodGet,
						ID:        "get_" + singular,
						Summary:   "Fetch a given resource",
						Returns:   &model,
						Responses: map[int]string{http.StatusNotFound: fmt.Sprintf("%s not found", c.Noun)},
					},
					{
						Method:  http.MethodPut,
						ID:      "update_" + singular,
						Summary: "Update a task given its identifier",
						Expect:  &change,
						Returns: &model,
					},
					{
						Method:    http.MethodDelete,
						ID:        "delete_" + singular,
						Summary:   "Delete a task given its identifier",
						Status:    http.StatusNoContent,
						Responses: map[int]string{http.StatusNoContent: fmt.Sprintf("%s deleted", c.Noun)},
					},
				},
			},
		},
	}
}

// Description returns the documentation model for the given collections.
func Description(collections ...domain.Collection) apidoc.API {
	namespaces := make([]apidoc.Namespace, len(collections))
	for i, c := range collections {
		namespaces[i] = Namespace(c)
	}
	return apidoc.API{
		Title:       apiTitle,
		Version:     apiVersion,
		Description: apiDescription,
		Namespaces:  namespaces,
	}
}
