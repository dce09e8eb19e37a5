package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/record"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/handler/http/response"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/fields"
	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
)

// InformationSheetIDParam filters list endpoints of sub-records.
const InformationSheetIDParam = "information_sheet_id"

var errEmptyBody = errors.New("request body must be a JSON object")

type ResourceService[T any] interface {
	List(ctx context.Context, filter record.Filter) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id int64, patch fields.Patch) (T, error)
	Delete(ctx context.Context, id int64) error
}

type ResourceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// resourceHandlerImpl serves one entity in its wire (snake_case) shape.
type resourceHandlerImpl[T any] struct {
	name    string
	table   *fields.Table
	service ResourceService[T]
}

// NewResourceHandler returns the CRUD handler of one entity. name appears in
// messages and logs, e.g. "Bank experience".
func NewResourceHandler[T any](name string, table *fields.Table, service ResourceService[T]) ResourceHandler {
	return &resourceHandlerImpl[T]{
		name:    name,
		table:   table,
		service: service,
	}
}

func (h *resourceHandlerImpl[T]) List(w http.ResponseWriter, r *http.Request) {
	var filter record.Filter
	if raw := r.URL.Query().Get(InformationSheetIDParam); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.BadRequest(w, "Invalid "+InformationSheetIDParam, nil)
			return
		}
		filter = record.ForSheet(id)
	}

	items, err := h.service.List(r.Context(), filter)
	if err != nil {
		slog.Error(h.name+" list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		wire, err := fields.ToWireObject(h.table, it)
		if err != nil {
			slog.Error(h.name+" encode error", "error", err)
			response.InternalServerError(w, "Failed to encode response")
			return
		}
		out = append(out, wire)
	}
	response.SuccessWithMeta(w, out, &response.Meta{TotalItems: len(out)})
}

func (h *resourceHandlerImpl[T]) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.service.Get(r.Context(), id)
	if err != nil {
		slog.Error(h.name+" get service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}
	h.write(w, http.StatusOK, "", item)
}

func (h *resourceHandlerImpl[T]) Create(w http.ResponseWriter, r *http.Request) {
	body, err := decodeObject(r)
	if err != nil {
		slog.Error(h.name+" create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	item, err := fields.FromWireObject[T](h.table, body)
	if err != nil {
		slog.Error(h.name+" create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.service.Create(r.Context(), item)
	if err != nil {
		slog.Error(h.name+" create service error", "error", err)
		response.HandleError(w, err)
		return
	}
	h.write(w, http.StatusCreated, h.name+" created successfully", created)
}

// Update applies a partial body: only the keys present are changed.
func (h *resourceHandlerImpl[T]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	body, err := decodeObject(r)
	if err != nil {
		slog.Error(h.name+" update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	patch, err := h.table.PatchFromWire(body)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		slog.Error(h.name+" update service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}
	h.write(w, http.StatusOK, h.name+" updated successfully", updated)
}

func (h *resourceHandlerImpl[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		slog.Error(h.name+" delete service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info(h.name+" deleted", "id", id)
	response.SuccessWithMessage(w, h.name+" deleted successfully", nil)
}

func (h *resourceHandlerImpl[T]) write(w http.ResponseWriter, status int, message string, item T) {
	wire, err := fields.ToWireObject(h.table, item)
	if err != nil {
		slog.Error(h.name+" encode error", "error", err)
		response.InternalServerError(w, "Failed to encode response")
		return
	}
	if status == http.StatusCreated {
		response.Created(w, message, wire)
		return
	}
	if message == "" {
		response.Success(w, wire)
		return
	}
	response.SuccessWithMessage(w, message, wire)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "Invalid id", nil)
		return 0, false
	}
	return id, true
}

// decodeObject reads a JSON object, keeping numbers as json.Number.
func decodeObject(r *http.Request) (map[string]any, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}
	if body == nil {
		return nil, errEmptyBody
	}
	return body, nil
}
