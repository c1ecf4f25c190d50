package app

import (
	"github.com/ferdiebergado/gatekeep/internal/auth"
	"github.com/ferdiebergado/gatekeep/internal/docs"
	"github.com/ferdiebergado/gatekeep/internal/middleware"
	"github.com/ferdiebergado/gatekeep/internal/platform/router"
	"github.com/ferdiebergado/gatekeep/internal/platform/validation"
	"github.com/ferdiebergado/gatekeep/internal/user"
)

const apiPrefix = "/api"

func mountAuthRoutes(r router.Router, handler *auth.Handler, validator validation.Validator, guard router.Middleware, maxBodySize int64) {
	r.Group(apiPrefix, func(gr router.Router) {
		gr.Post("/register", handler.RegisterUser,
			middleware.CheckContentType,
			middleware.DecodePayload[auth.RegisterUserRequest](maxBodySize),
			middleware.ValidateInput[auth.RegisterUserRequest](validator))
		gr.Post("/login", handler.LoginUser,
			middleware.CheckContentType,
			middleware.DecodePayload[auth.UserLoginRequest](maxBodySize),
			middleware.ValidateInput[auth.UserLoginRequest](validator))
		gr.Post("/refresh", handler.RefreshToken, guard)
		gr.Post("/logout", handler.LogoutUser, guard)
	})
}

func mountUserRoutes(r router.Router, handler *user.Handler, validator validation.Validator, guard router.Middleware, maxBodySize int64) {
	r.Group(apiPrefix, func(gr router.Router) {
		gr.Get("/user/profile", handler.Profile)
		gr.Put("/user/profile", handler.UpdateProfile,
			middleware.CheckContentType,
			middleware.DecodePayload[user.UpdateProfileRequest](maxBodySize),
			middleware.ValidateInput[user.UpdateProfileRequest](validator))
		gr.Get("/users", handler.ListUsers)
	}, guard)
}

func mountDocRoutes(r router.Router) {
	r.Get("/api-docs", docs.Page)
	r.Group(apiPrefix, func(gr router.Router) {
		gr.Get("/docs", docs.OpenAPI)
		gr.Get("/swagger.json", docs.OpenAPI)
		gr.Get("/health", docs.Health)
	})
}
