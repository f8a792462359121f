package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"itam/models"
)

func (srv *Server) InjectRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("allocation service up"))
	})

	//public routes
	r.Route("/api", func(api chi.Router) {
		api.Post("/login", srv.DirectoryHandler.Login)
		api.Get("/catalog", srv.AllocationHandler.GetCatalog)

		//protected
		api.Group(func(protected chi.Router) {
			protected.Use(srv.Middleware.JWTAuthMiddleware())

			// acceptance sign-off: IT and PowerIT on behalf of the
			// employee, employees for their own request only (checked in
			// the handler).
			protected.Post("/requests/sign", srv.AllocationHandler.SignAcceptance)
			protected.Get("/requests/mine", srv.AllocationHandler.ListRequestsByEmployee)

			//HR routes (PowerIT passes every HR/IT gate)
			protected.Route("/hr", func(hr chi.Router) {
				hr.Use(srv.Middleware.RequireRole(models.HRRole))

				hr.Post("/requests", srv.AllocationHandler.SubmitRequest)
				hr.Post("/employees", srv.DirectoryHandler.CreateEmployee)
				hr.Put("/employees", srv.DirectoryHandler.UpdateEmployee)
				hr.Get("/employees", srv.DirectoryHandler.ListEmployees)
				hr.Get("/employee", srv.DirectoryHandler.GetEmployee)
				hr.Delete("/employees", srv.DirectoryHandler.DeleteEmployee)
				hr.Get("/requests", srv.AllocationHandler.ListRequestsByEmployee)
			})

			//IT fleet routes
			protected.Route("/it", func(it chi.Router) {
				it.Use(srv.Middleware.RequireRole(models.ITRole))

				// fleet registry
				it.Post("/assets", srv.RegistryHandler.CreateAsset)
				it.Put("/assets", srv.RegistryHandler.UpdateAsset)
				it.Delete("/assets", srv.RegistryHandler.DeleteAsset)
				it.Get("/asset", srv.RegistryHandler.GetAsset)

				it.Post("/requests/fulfill", srv.AllocationHandler.FulfillRequest)
				it.Post("/returns", srv.AllocationHandler.ProcessReturn)
				it.Post("/assets/condition", srv.AllocationHandler.SetAssetCondition)
				it.Get("/assets", srv.AllocationHandler.ListAssetsByStatus)
				it.Get("/stock", srv.AllocationHandler.FindAvailableStock)
				it.Get("/requests", srv.AllocationHandler.ListRequestsByEmployee)

				it.Post("/witnesses", srv.WitnessHandler.CreateEngineer)
				it.Post("/witnesses/deactivate", srv.WitnessHandler.DeactivateEngineer)
				it.Post("/witnesses/reactivate", srv.WitnessHandler.ReactivateEngineer)
				it.Get("/witnesses", srv.WitnessHandler.ListEngineers)
			})

			// ledger view, restricted to HR/IT/PowerIT
			protected.Group(func(ledger chi.Router) {
				ledger.Use(srv.Middleware.RequireRole(models.HRRole, models.ITRole))
				ledger.Get("/ledger", srv.AllocationHandler.GetLedger)
			})

			// PowerIT-only administrative overrides
			protected.Route("/admin", func(admin chi.Router) {
				admin.Use(srv.Middleware.RequireRole(models.PowerITRole))
				admin.Post("/requests/override", srv.AllocationHandler.OverrideRequestStatus)
			})
		})
	})

	return r
}
