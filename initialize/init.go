package initialize

import (
	"fmt"
	"net"
	"net/http"

	"repairdesk/app/controllers"
	"repairdesk/app/db"
	jwtutil "repairdesk/app/jwt"
	"repairdesk/app/middleware"
	"repairdesk/app/models"
	"repairdesk/app/repo"
	"repairdesk/app/services"
	"repairdesk/app/storage"
	"repairdesk/app/tokens"
	"repairdesk/config"
	"repairdesk/global"
	"repairdesk/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// devOrigin is the only cross-origin caller allowed outside production.
const devOrigin = "http://localhost:5173"

type App struct {
	Cfg    config.Config
	DB     *gorm.DB
	Router http.Handler
	Users  *services.UserService
}

// Build assembles the whole server: config, store, migration, services,
// controllers and the routed handler. A store that cannot be reached is a
// fatal condition for the caller.
func Build() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	gdb, err := db.Connect(db.Config{Host: cfg.DB.Host, Port: cfg.DB.Port, User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	if err := gdb.AutoMigrate(&models.User{}, &models.Device{}, &models.Service{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	blobs, err := storage.NewLocalStore(cfg.Uploads.Dir, cfg.Uploads.PublicPath, cfg.Uploads.Placeholder)
	if err != nil {
		return nil, err
	}

	var denylist *tokens.Denylist
	if cfg.Redis.Host != "" {
		rdb := redis.NewClient(&redis.Options{Addr: net.JoinHostPort(cfg.Redis.Host, fmt.Sprintf("%d", cfg.Redis.Port))})
		denylist = tokens.NewDenylist(rdb)
	}

	userSvc := services.NewUserService(repo.NewUserRepository(gdb))
	deviceSvc := services.NewResourceService(repo.NewResourceRepository[models.Device](gdb))
	serviceSvc := services.NewResourceService(repo.NewResourceRepository[models.Service](gdb))

	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		if err := userSvc.EnsureAdmin(cfg.Admin.Email, cfg.Admin.Password); err != nil {
			global.Logger.Warn().Err(err).Msg("seed admin account")
		}
	}

	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpMin: cfg.JWT.ExpMin}
	mw := &middleware.Auth{Signer: signer}
	var revoker controllers.TokenRevoker
	if denylist != nil {
		mw.Revoked = denylist
		revoker = denylist
	}

	h := router.New(router.Controllers{
		Auth:     controllers.NewAuthController(userSvc, signer, revoker),
		Devices:  controllers.NewDeviceController(deviceSvc, blobs),
		Services: controllers.NewServiceController(serviceSvc, blobs),
		Static:   controllers.NewStaticController(cfg.StaticDir, cfg.Uploads.Dir),
	}, mw)

	if !cfg.IsProduction() {
		h = middleware.CORS(devOrigin, h)
	}
	h = middleware.Logging(h)
	h = middleware.Recover(h)

	return &App{Cfg: cfg, DB: gdb, Router: h, Users: userSvc}, nil
}
