package controllers

import (
	"net/url"
	"strconv"

	"repairdesk/app/models"
	"repairdesk/app/services"
	"repairdesk/app/storage"
)

// NewDeviceController wires the shared CRUD surface to the devices table.
func NewDeviceController(svc *services.ResourceService[models.Device], blobs storage.BlobStore) *ResourceController[models.Device] {
	return NewResourceController(svc, blobs, "devices", "Device", deviceFromForm)
}

func deviceFromForm(form url.Values, image string) *models.Device {
	price, _ := strconv.ParseFloat(form.Get("price"), 64)
	return &models.Device{
		Name:        form.Get("name"),
		Model:       form.Get("model"),
		Description: form.Get("description"),
		Image:       image,
		Price:       price,
		Status:      form.Get("status"),
		ClientName:  form.Get("client_name"),
		ClientPhone: form.Get("client_phone"),
	}
}
