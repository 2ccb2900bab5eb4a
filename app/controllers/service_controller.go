package controllers

import (
	"net/url"
	"strconv"

	"repairdesk/app/models"
	"repairdesk/app/services"
	"repairdesk/app/storage"
)

// NewServiceController wires the shared CRUD surface to the services table.
func NewServiceController(svc *services.ResourceService[models.Service], blobs storage.BlobStore) *ResourceController[models.Service] {
	return NewResourceController(svc, blobs, "services", "Service", serviceFromForm)
}

func serviceFromForm(form url.Values, image string) *models.Service {
	price, _ := strconv.ParseFloat(form.Get("price"), 64)
	available, _ := strconv.ParseBool(form.Get("is_available"))
	return &models.Service{
		Title:       form.Get("title"),
		Description: form.Get("description"),
		Price:       price,
		Image:       image,
		Duration:    form.Get("duration"),
		Category:    form.Get("category"),
		IsAvailable: available,
		Technician:  form.Get("technician"),
	}
}
