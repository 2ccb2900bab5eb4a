package router

import (
	"net/http"
	"strings"

	"repairdesk/app/controllers"
	"repairdesk/app/middleware"
	"repairdesk/app/models"
)

type Controllers struct {
	Auth     *controllers.AuthController
	Devices  *controllers.ResourceController[models.Device]
	Services *controllers.ResourceController[models.Service]
	Static   *controllers.StaticController
}

func New(c Controllers, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("POST /api/register", c.Auth.Register)
	mux.HandleFunc("POST /api/login", c.Auth.Login)
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	})

	// authenticated
	mux.Handle("POST /api/logout", mw.RequireAuth(http.HandlerFunc(c.Auth.Logout)))

	mux.Handle("GET /api/devices", mw.RequireAuth(http.HandlerFunc(c.Devices.List)))
	mux.Handle("POST /api/devices", mw.RequireAuth(http.HandlerFunc(c.Devices.Create)))
	mux.Handle("PUT /api/devices/{id}", mw.RequireAuth(http.HandlerFunc(c.Devices.Update)))
	mux.Handle("DELETE /api/devices/{id}", mw.RequireAuth(http.HandlerFunc(c.Devices.Delete)))

	mux.Handle("GET /api/services", mw.RequireAuth(http.HandlerFunc(c.Services.List)))
	mux.Handle("POST /api/services", mw.RequireAuth(http.HandlerFunc(c.Services.Create)))
	mux.Handle("PUT /api/services/{id}", mw.RequireAuth(http.HandlerFunc(c.Services.Update)))
	mux.Handle("DELETE /api/services/{id}", mw.RequireAuth(http.HandlerFunc(c.Services.Delete)))

	// static assets and the SPA fallback
	mux.HandleFunc("/uploads/", c.Static.Uploads)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api") {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Not found"}`))
			return
		}
		c.Static.SPA(w, r)
	})

	return mux
}
