package router

import (
	"daycare/backend/foundation/web"
	"daycare/backend/internal/auth"
	"daycare/backend/internal/controller/http/v1/file"
	"daycare/backend/internal/middleware"
	"daycare/backend/internal/pkg/cache"
	"daycare/backend/internal/pkg/repository/postgresql"
	"daycare/backend/internal/repository/postgres/attendance"
	"daycare/backend/internal/repository/postgres/center"
	"daycare/backend/internal/repository/postgres/child"
	"daycare/backend/internal/repository/postgres/classroom"
	"daycare/backend/internal/repository/postgres/user"

	attendance_controller "daycare/backend/internal/controller/http/v1/attendance"
	auth_controller "daycare/backend/internal/controller/http/v1/auth"
	center_controller "daycare/backend/internal/controller/http/v1/center"
	child_controller "daycare/backend/internal/controller/http/v1/child"
	classroom_controller "daycare/backend/internal/controller/http/v1/classroom"
	user_controller "daycare/backend/internal/controller/http/v1/user"
)

type Router struct {
	*web.App
	postgresDB     *postgresql.Database
	cache          *cache.Cache
	port           string
	auth           *auth.Auth
	privateKeyFile string
}

func NewRouter(
	app *web.App,
	postgresDB *postgresql.Database,
	cache *cache.Cache,
	port string,
	auth *auth.Auth,
	privateKeyFile string,
) *Router {
	return &Router{
		app,
		postgresDB,
		cache,
		port,
		auth,
		privateKeyFile,
	}
}

func (r Router) Init() error {

	r.HandleMethodNotAllowed = true
	r.Use(middleware.CORSMiddleware())

	// - postgresql
	userPostgres := user.NewRepository(r.postgresDB)
	centerPostgres := center.NewRepository(r.postgresDB)
	classroomPostgres := classroom.NewRepository(r.postgresDB)
	childPostgres := child.NewRepository(r.postgresDB)
	attendancePostgres := attendance.NewRepository(r.postgresDB)

	// controller
	userController := user_controller.NewController(userPostgres)
	authController := auth_controller.NewController(userPostgres, r.cache, r.auth, r.privateKeyFile)
	centerController := center_controller.NewController(centerPostgres)
	classroomController := classroom_controller.NewController(classroomPostgres)
	childController := child_controller.NewController(childPostgres)
	attendanceController := attendance_controller.NewController(attendancePostgres)

	fileC := file.NewController(r.App)

	// #auth
	r.Post("/api/v1/sign-in", authController.SignIn)
	r.Post("/api/v1/refresh-token", authController.RefreshToken)
	r.Post("/api/v1/sign-out", authController.SignOut, middleware.Authenticate(r.auth, r.cache))

	r.GET("/statics/*filepath", fileC.File)
	r.HEAD("/statics/*filepath", fileC.File)

	// #user
	r.Get("/api/v1/user/list", userController.GetList, middleware.Authenticate(r.auth, r.cache, auth.RoleAdmin))
	r.Get("/api/v1/user/:id", userController.GetById, middleware.Authenticate(r.auth, r.cache, auth.RoleAdmin))
	r.Post("/api/v1/user/create", userController.Create, middleware.Authenticate(r.auth, r.cache, auth.RoleAdmin))
	r.Put("/api/v1/user/:id", userController.UpdateAll, middleware.Authenticate(r.auth, r.cache, auth.RoleAdmin))
	r.Patch("/api/v1/user/:id", userController.UpdateColumns, middleware.Authenticate(r.auth, r.cache, auth.RoleAdmin))
	r.Delete("/api/v1/user/:id", userController.Delete, middleware.Authenticate(r.auth, r.cache, auth.RoleAdmin))

	// #center
	r.Get("/api/v1/center/list", centerController.GetList, middleware.Authenticate(r.auth, r.cache))
	r.Post("/api/v1/center/create", centerController.Create, middleware.Authenticate(r.auth, r.cache, auth.RoleAdmin))
	r.Put("/api/v1/center/:id", centerController.UpdateAll, middleware.Authenticate(r.auth, r.cache, auth.RoleAdmin))
	r.Patch("/api/v1/center/:id", centerController.UpdateColumns, middleware.Authenticate(r.auth, r.cache, auth.RoleAdmin))
	r.Delete("/api/v1/center/:id", centerController.Delete, middleware.Authenticate(r.auth, r.cache, auth.RoleAdmin))

	// #classroom
	r.Get("/api/v1/classroom/list", classroomController.GetList, middleware.Authenticate(r.auth, r.cache))
	r.Post("/api/v1/classroom/create", classroomController.Create, middleware.Authenticate(r.auth, r.cache, auth.RoleAdmin))
	r.Put("/api/v1/classroom/:id", classroomController.UpdateAll, middleware.Authenticate(r.auth, r.cache, auth.RoleAdmin))
	r.Patch("/api/v1/classroom/:id", classroomController.UpdateColumns, middleware.Authenticate(r.auth, r.cache, auth.RoleAdmin))
	r.Delete("/api/v1/classroom/:id", classroomController.Delete, middleware.Authenticate(r.auth, r.cache, auth.RoleAdmin))

	// #child
	r.Get("/api/v1/child/list", childController.GetList, middleware.Authenticate(r.auth, r.cache))
	r.Get("/api/v1/child/:id", childController.GetDetailById, middleware.Authenticate(r.auth, r.cache))
	r.Get("/api/v1/child/:id/badge", childController.GetBadge, middleware.Authenticate(r.auth, r.cache, auth.RoleAdmin, auth.RoleEducator))
	r.Get("/api/v1/child/badges", childController.GetBadgeSheet, middleware.Authenticate(r.auth, r.cache, auth.RoleAdmin, auth.RoleEducator))
	r.Post("/api/v1/child/create", childController.Create, middleware.Authenticate(r.auth, r.cache, auth.RoleAdmin, auth.RoleEducator))
	r.Put("/api/v1/child/:id", childController.UpdateAll, middleware.Authenticate(r.auth, r.cache, auth.RoleAdmin, auth.RoleEducator))
	r.Patch("/api/v1/child/:id", childController.UpdateColumns, middleware.Authenticate(r.auth, r.cache, auth.RoleAdmin, auth.RoleEducator))
	r.Delete("/api/v1/child/:id", childController.Delete, middleware.Authenticate(r.auth, r.cache, auth.RoleAdmin))

	// #attendance
	r.Get("/api/v1/attendance/list", attendanceController.GetList, middleware.Authenticate(r.auth, r.cache))
	r.Get("/api/v1/attendance/:id", attendanceController.GetById, middleware.Authenticate(r.auth, r.cache))
	r.Post("/api/v1/attendance/create", attendanceController.Create, middleware.Authenticate(r.auth, r.cache, auth.RoleAdmin, auth.RoleEducator))
	r.Post("/api/v1/attendance/check-in", attendanceController.CheckIn, middleware.Authenticate(r.auth, r.cache, auth.RoleAdmin, auth.RoleEducator))
	r.Post("/api/v1/attendance/check-out", attendanceController.CheckOut, middleware.Authenticate(r.auth, r.cache, auth.RoleAdmin, auth.RoleEducator))
	r.Patch("/api/v1/attendance/:id", attendanceController.UpdateColumns, middleware.Authenticate(r.auth, r.cache, auth.RoleAdmin, auth.RoleEducator))
	r.Delete("/api/v1/attendance/:id", attendanceController.Delete, middleware.Authenticate(r.auth, r.cache, auth.RoleAdmin))

	// #reports
	r.Get("/api/v1/attendance/report/daily", attendanceController.DailyReport, middleware.Authenticate(r.auth, r.cache, auth.RoleAdmin, auth.RoleEducator))
	r.Get("/api/v1/attendance/report/weekly", attendanceController.WeeklyReport, middleware.Authenticate(r.auth, r.cache, auth.RoleAdmin, auth.RoleEducator))
	r.Get("/api/v1/attendance/report/child/:child_id", attendanceController.ChildReport, middleware.Authenticate(r.auth, r.cache))
	r.Get("/api/v1/attendance/report/stats", attendanceController.DailyStats, middleware.Authenticate(r.auth, r.cache, auth.RoleAdmin, auth.RoleEducator))
	r.Get("/api/v1/attendance/report/excel", attendanceController.ExportExcel, middleware.Authenticate(r.auth, r.cache, auth.RoleAdmin, auth.RoleEducator))

	return r.Run(r.port)
}
