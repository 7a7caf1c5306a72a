package apidoc

import (
	"net/url"
	"strconv"
	"strings"
)

const swaggerVersion = "2.0"

// Schema is the subset of the Swagger schema object the API uses.
type Schema struct {
	Ref         string             `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Type        string             `json:"type,omitempty" yaml:"type,omitempty"`
	Description string             `json:"description,omitempty" yaml:"description,omitempty"`
	ReadOnly    bool               `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
	Required    []string           `json:"required,omitempty" yaml:"required,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty" yaml:"items,omitempty"`
}

// Ref returns a schema referencing the named definition.
func Ref(name string) *Schema {
	return &Schema{Ref: "#/definitions/" + url.PathEscape(name)}
}

type Parameter struct {
	Name        string  `json:"name" yaml:"name"`
	In          string  `json:"in" yaml:"in"`
	Required    bool    `json:"required" yaml:"required"`
	Type        string  `json:"type,omitempty" yaml:"type,omitempty"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Schema      *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

type Response struct {
	Description string  `json:"description" yaml:"description"`
	Schema      *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

type DocOperation struct {
	OperationID string              `json:"operationId" yaml:"operationId"`
	Summary     string              `json:"summary,omitempty" yaml:"summary,omitempty"`
	Tags        []string            `json:"tags" yaml:"tags"`
	Parameters  []Parameter         `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Responses   map[string]Response `json:"responses" yaml:"responses"`
}

// PathItem maps lower-case HTTP methods to operations.
type PathItem map[string]*DocOperation

type Info struct {
	Title       string `json:"title" yaml:"title"`
	Version     string `json:"version" yaml:"version"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type Tag struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Document is a Swagger 2.0 document.
type Document struct {
	Swagger     string              `json:"swagger" yaml:"swagger"`
	BasePath    string              `json:"basePath" yaml:"basePath"`
	Info        Info                `json:"info" yaml:"info"`
	Produces    []string            `json:"produces" yaml:"produces"`
	Consumes    []string            `json:"consumes" yaml:"consumes"`
	Tags        []Tag               `json:"tags" yaml:"tags"`
	Paths       map[string]PathItem `json:"paths" yaml:"paths"`
	Definitions map[string]*Schema  `json:"definitions" yaml:"definitions"`
}

// PathParam declares a parameter shared by every operation on a route.
type PathParam struct {
	Name        string
	Type        FieldType
	Description string
}

// Operation declares one method on a route.
type Operation struct {
	Method  string
	ID      string
	Summary string
	// Expect is the request body model, if any.
	Expect *Model
	// Returns is the response body model; ReturnsList marks an array of it.
	Returns     *Model
	ReturnsList bool
	Status      int
	// Responses documents additional status codes.
	Responses map[int]string
}

// Route groups the operations served on one path. Path uses Swagger
// templating, e.g. "/{id}".
type Route struct {
	Path       string
	Params     []PathParam
	Operations []Operation
}

// Namespace is a tagged group of routes under a common prefix.
type Namespace struct {
	Name        string
	Description string
	Routes      []Route
}

// API is the full declarative description of the service.
type API struct {
	Title       string
	Version     string
	Description string
	BasePath    string
	Namespaces  []Namespace
}

// Document builds the Swagger document for the API.
func (a API) Document() *Document {
	basePath := a.BasePath
	if basePath == "" {
		basePath = "/"
	}

	doc := &Document{
		Swagger:     swaggerVersion,
		BasePath:    basePath,
		Info:        Info{Title: a.Title, Version: a.Version, Description: a.Description},
		Produces:    []string{"application/json"},
		Consumes:    []string{"application/json"},
		Tags:        make([]Tag, 0, len(a.Namespaces)),
		Paths:       make(map[string]PathItem),
		Definitions: make(map[string]*Schema),
	}

	for _, ns := range a.Namespaces {
		doc.Tags = append(doc.Tags, Tag{Name: ns.Name, Description: ns.Description})
		for _, route := range ns.Routes {
			path := "/" + ns.Name + route.Path
			item := make(PathItem, len(route.Operations))
			for _, op := range route.Operations {
				item[strings.ToLower(op.Method)] = buildOperation(doc, ns, route, op)
			}
			doc.Paths[path] = item
		}
	}

	return doc
}

func buildOperation(doc *Document, ns Namespace, route Route, op Operation) *DocOperation {
	out := &DocOperation{
		OperationID: op.ID,
		Summary:     op.Summary,
		Tags:        []string{ns.Name},
		Responses:   make(map[string]Response),
	}

	for _, p := range route.Params {
		out.Parameters = append(out.Parameters, Parameter{
			Name:        p.Name,
			In:          "path",
			Required:    true,
			Type:        string(p.Type),
			Description: p.Description,
		})
	}

	if op.Expect != nil {
		doc.Definitions[op.Expect.Name] = op.Expect.Schema()
		out.Parameters = append(out.Parameters, Parameter{
			Name:     "payload",
			In:       "body",
			Required: true,
			Schema:   Ref(op.Expect.Name),
		})
	}

	status := op.Status
	if status == 0 {
		status = 200
	}
	success := Response{Description: "Success"}
	if op.Returns != nil {
		doc.Definitions[op.Returns.Name] = op.Returns.Schema()
		success.Schema = Ref(op.Returns.Name)
		if op.ReturnsList {
			success.Schema = &Schema{Type: "array", Items: Ref(op.Returns.Name)}
		}
	}
	if description, ok := op.Responses[status]; ok {
		success.Description = description
	}
	out.Responses[strconv.Itoa(status)] = success

	for code, description := range op.Responses {
		if code != status {
			out.Responses[strconv.Itoa(code)] = Response{Description: description}
		}
	}

	return out
}
