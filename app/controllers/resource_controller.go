package controllers

import (
	"net/http"
	"net/url"
	"strconv"

	"repairdesk/app/services"
	"repairdesk/app/storage"
	"repairdesk/global"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	// maxUploadBytes caps the whole multipart body; oversized requests fail
	// form parsing and come back as 400.
	maxUploadBytes = 10 << 20
)

// ResourceController serves one catalog table. The devices and services
// surfaces differ only in their row type, their response key and how the
// multipart fields map onto a row, so each instance is configured with a
// form decoder and everything else is shared.
type ResourceController[T any] struct {
	svc      *services.ResourceService[T]
	blobs    storage.BlobStore
	key      string
	label    string
	fromForm func(form url.Values, image string) *T
}

func NewResourceController[T any](svc *services.ResourceService[T], blobs storage.BlobStore, key, label string, fromForm func(form url.Values, image string) *T) *ResourceController[T] {
	return &ResourceController[T]{svc: svc, blobs: blobs, key: key, label: label, fromForm: fromForm}
}

func (c *ResourceController[T]) List(w http.ResponseWriter, r *http.Request) {
	page := intOrDefault(r.URL.Query().Get("page"), defaultPage)
	limit := intOrDefault(r.URL.Query().Get("limit"), defaultLimit)
	res, err := c.svc.List(page, limit)
	if err != nil {
		global.Logger.Error().Err(err).Str("resource", c.key).Msg("list")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		c.key:   res.Items,
		"total": res.Total,
		"page":  res.Page,
		"limit": res.Limit,
	})
}

func (c *ResourceController[T]) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form data")
		return
	}
	image, err := c.saveUpload(r)
	if err != nil {
		global.Logger.Error().Err(err).Str("resource", c.key).Msg("save upload")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if image == "" {
		image = c.blobs.Placeholder()
	}
	row := c.fromForm(r.MultipartForm.Value, image)
	if err := c.svc.Create(row); err != nil {
		global.Logger.Error().Err(err).Str("resource", c.key).Msg("create")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeMessage(w, http.StatusCreated, c.label+" created successfully")
}

func (c *ResourceController[T]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form data")
		return
	}
	image, err := c.saveUpload(r)
	if err != nil {
		global.Logger.Error().Err(err).Str("resource", c.key).Msg("save upload")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if image == "" {
		// No new file: whatever reference the client sent rides along
		// unchanged.
		image = r.FormValue("image")
	}
	row := c.fromForm(r.MultipartForm.Value, image)
	if err := c.svc.Update(id, row); err != nil {
		global.Logger.Error().Err(err).Str("resource", c.key).Msg("update")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeMessage(w, http.StatusOK, c.label+" updated successfully")
}

func (c *ResourceController[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := c.svc.Delete(id); err != nil {
		global.Logger.Error().Err(err).Str("resource", c.key).Msg("delete")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeMessage(w, http.StatusOK, c.label+" deleted successfully")
}

// saveUpload stores the attached image if there is one. Empty string means no
// file was part of the request.
func (c *ResourceController[T]) saveUpload(r *http.Request) (string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil
		}
		return "", err
	}
	defer file.Close()
	return c.blobs.Save(file, header)
}

func intOrDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
