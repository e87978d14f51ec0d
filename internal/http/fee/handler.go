package fee

import (
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/campus/internal/fee"
	"github.com/MrJamesThe3rd/campus/internal/http/auth"
	"github.com/MrJamesThe3rd/campus/internal/http/envelope"
)

const multipartMemory = 10 << 20

type Handler struct {
	svc *fee.Service
}

func NewHandler(svc *fee.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{feeId}", h.get)
	r.Put("/{feeId}", h.update)
	r.Delete("/{feeId}", h.delete)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathID(w, r, "companyId", "Invalid company id.")
	if !ok {
		return
	}

	req, file, err := readFeeRequest(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	defer file.Close()

	params, err := req.createParams(companyID)
	if err != nil {
		fail(w, r, err)
		return
	}

	if params.CreatedBy == nil {
		params.CreatedBy = auth.UserID(r.Context())
	}

	params.Attachment = file.attachment()

	f, err := h.svc.Create(r.Context(), params)
	if err != nil {
		envelope.Error(w, r, err, "Internal server error. Failed to create fee.")
		return
	}

	envelope.JSON(w, r, http.StatusCreated, "Fee record created successfully with unique receipt number.", toResponse(f))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathID(w, r, "companyId", "Invalid company id.")
	if !ok {
		return
	}

	filter, err := ParseListFilter(companyID, r.URL.Query())
	if err != nil {
		fail(w, r, err)
		return
	}

	fees, err := h.svc.List(r.Context(), filter)
	if err != nil {
		envelope.Error(w, r, err, "Internal server error. Failed to fetch fees.")
		return
	}

	envelope.JSON(w, r, http.StatusOK, "Fee records fetched successfully.", toResponseList(fees))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathID(w, r, "companyId", "Invalid company id.")
	if !ok {
		return
	}

	id, ok := pathID(w, r, "feeId", "Invalid fee id.")
	if !ok {
		return
	}

	f, err := h.svc.Get(r.Context(), companyID, id)
	if err != nil {
		envelope.Error(w, r, err, "Internal server error. Failed to fetch fee.")
		return
	}

	envelope.JSON(w, r, http.StatusOK, "Fee record fetched successfully.", toResponse(f))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathID(w, r, "companyId", "Invalid company id.")
	if !ok {
		return
	}

	id, ok := pathID(w, r, "feeId", "Invalid fee id.")
	if !ok {
		return
	}

	req, file, err := readFeeRequest(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	defer file.Close()

	params, err := req.updateParams()
	if err != nil {
		fail(w, r, err)
		return
	}

	params.Attachment = file.attachment()

	f, err := h.svc.Update(r.Context(), companyID, id, params)
	if err != nil {
		envelope.Error(w, r, err, "Internal server error. Failed to update fee.")
		return
	}

	envelope.JSON(w, r, http.StatusOK, "Fee record updated successfully and student's counters adjusted.", toResponse(f))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathID(w, r, "companyId", "Invalid company id.")
	if !ok {
		return
	}

	id, ok := pathID(w, r, "feeId", "Invalid fee id.")
	if !ok {
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		envelope.Fail(w, r, http.StatusBadRequest, "Invalid request body.")
		return
	}

	var req deleteRequest
	if err := decodeJSON(body, &req); err != nil {
		fail(w, r, err)
		return
	}

	deletedBy, err := optionalID(req.DeletedBy, "deletedBy")
	if err != nil {
		fail(w, r, err)
		return
	}

	if deletedBy == nil {
		deletedBy = auth.UserID(r.Context())
	}

	if err := h.svc.Delete(r.Context(), companyID, id, deletedBy); err != nil {
		envelope.Error(w, r, err, "Internal server error. Failed to delete fee.")
		return
	}

	envelope.JSON(w, r, http.StatusOK, "Fee record deleted successfully and student's counters reversed if applicable.", nil)
}

// readFeeRequest decodes a JSON body or a multipart form. The returned
// file is nil unless an attachment was sent; the caller closes it.
func readFeeRequest(r *http.Request) (feeRequest, *upload, error) {
	var req feeRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return req, nil, envelope.BadRequest("Invalid request body.")
		}

		return req, nil, decodeJSON(body, &req)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return req, nil, envelope.BadRequest("Invalid multipart form.")
	}

	req = formRequest(r.MultipartForm.Value)

	file, header, err := r.FormFile("attachment")
	if errors.Is(err, http.ErrMissingFile) {
		return req, nil, nil
	}

	if err != nil {
		return req, nil, envelope.BadRequest("Invalid attachment.")
	}

	return req, &upload{file: file, name: header.Filename}, nil
}

type upload struct {
	file multipart.File
	name string
}

func (u *upload) attachment() *fee.Attachment {
	if u == nil {
		return nil
	}

	return &fee.Attachment{Filename: u.name, Body: u.file}
}

func (u *upload) Close() {
	if u != nil {
		u.file.Close()
	}
}

func pathID(w http.ResponseWriter, r *http.Request, param, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		envelope.Fail(w, r, http.StatusBadRequest, message)
		return uuid.Nil, false
	}

	return id, true
}

func fail(w http.ResponseWriter, r *http.Request, err error) {
	envelope.Error(w, r, err, "Internal server error.")
}
