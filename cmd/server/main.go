package main

import (
	"repairdesk/global"
	"repairdesk/initialize"
	"repairdesk/server"
)

func main() {
	app, err := initialize.Build()
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("startup")
	}
	global.Logger.Info().Str("env", app.Cfg.Env).Int("port", app.Cfg.HTTP.Port).Msg("listening")
	if err := server.StartHTTPServer(app.Cfg.HTTP.Host, app.Cfg.HTTP.Port, app.Router); err != nil {
		global.Logger.Fatal().Err(err).Msg("http server")
	}
}
