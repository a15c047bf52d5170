package main

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getbandos "opergest/http-server/bandos/get"
	savebandos "opergest/http-server/bandos/save"
	getcortes "opergest/http-server/cortes/get"
	savecortes "opergest/http-server/cortes/save"
	upcortes "opergest/http-server/cortes/update"
	getempleados "opergest/http-server/empleados/get"
	saveempleados "opergest/http-server/empleados/save"
	upempleados "opergest/http-server/empleados/update"
	excel "opergest/http-server/generate-report/generate-excel"
	savehoras "opergest/http-server/horas/save"
	getnomina "opergest/http-server/nomina/get"
	getoperaciones "opergest/http-server/operaciones/get"
	saveoperaciones "opergest/http-server/operaciones/save"
	upoperaciones "opergest/http-server/operaciones/update"
	completetareas "opergest/http-server/tareas/complete"
	gettareas "opergest/http-server/tareas/get"
	savetareas "opergest/http-server/tareas/save"
	"opergest/internal/config"
	"opergest/internal/middleware/auth"
	generate_excel "opergest/internal/service/generate-excel"
	"opergest/internal/service/nomina"
	"opergest/internal/storage/sqlite"
)

func routes(cfg config.Config, log *slog.Logger, storage *sqlite.Storage, nominaService *nomina.NominaService, exportService *generate_excel.ExportService) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		// la pantalla de escritorio corre local
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// cortes
	router.Post("/api/cortes", savecortes.SaveCorte(log, storage))
	router.Get("/api/cortes", getcortes.GetCortes(log, storage))
	router.Get("/api/cortes/{id}", getcortes.GetCorte(log, storage))
	router.Put("/api/cortes/{id}", upcortes.UpdateCorte(log, storage))
	router.Post("/api/cortes/{id}/entregar", upcortes.EntregarCorte(log, storage))

	// tallas y cupos
	router.Get("/api/cortes/{id}/tallas", getcortes.GetCupos(log, storage))
	router.Post("/api/cortes/{id}/tallas", upcortes.DeclararTalla(log, storage))

	// bandos
	router.Post("/api/bandos", savebandos.SaveBando(log, storage))
	router.Get("/api/cortes/{id}/bandos", getbandos.GetBandosCorte(log, storage))
	router.Get("/api/cortes/{id}/bandos/usados", getbandos.GetNumerosUsados(log, storage))

	// lista de precios
	router.Post("/api/operaciones", saveoperaciones.SaveOperacion(log, storage))
	router.Get("/api/operaciones", getoperaciones.GetOperaciones(log, storage))
	router.Put("/api/operaciones/{id}", upoperaciones.UpdateOperacion(log, storage))
	router.Delete("/api/operaciones/{id}", upoperaciones.DeleteOperacion(log, storage))

	// tareas
	router.Post("/api/tareas", savetareas.SaveTarea(log, storage))
	router.Get("/api/tareas/empleado/{empleado}", gettareas.GetTareasEmpleado(log, storage))
	router.Post("/api/tareas/{id}/completar", completetareas.CompleteTarea(log, storage))
	router.Delete("/api/tareas/{id}", completetareas.RemoveTarea(log, storage))

	// reloj
	router.Post("/api/horas/entrada", savehoras.ClockIn(log, storage))
	router.Post("/api/horas/salida", savehoras.ClockOut(log, storage))

	// nómina
	router.Get("/api/nomina/{empleado}", getnomina.GetReporteNomina(log, nominaService))
	router.Post("/api/nomina/{empleado}/exportar", excel.ExportarNomina(log, exportService))
	router.Post("/api/nomina/{empleado}/cerrar", excel.CerrarNomina(log, exportService))

	// empleados, solo para la encargada
	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Get("/empleados", getempleados.GetEmpleados(log, storage))
	adminRouter.Get("/empleados/{id}", getempleados.GetEmpleado(log, storage))
	adminRouter.Post("/empleados", saveempleados.SaveEmpleado(log, storage))
	adminRouter.Put("/empleados/{id}", upempleados.UpdateEmpleado(log, storage))

	router.Mount("/api/admin", adminRouter)

	return router
}
