package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	viewerMiddleware := standardMiddleware.Append(app.optionalJWT)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(""))
	clientAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("client"))
	companyAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("company"))
	adminAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("admin"))

	mux := pat.New()

	// Clients
	mux.Post("/client/sign_up", standardMiddleware.ThenFunc(app.clientHandler.SignUp))
	mux.Post("/client/sign_in", standardMiddleware.ThenFunc(app.clientHandler.SignIn))
	mux.Post("/client/log_out", authMiddleware.ThenFunc(app.clientHandler.LogOut))
	mux.Get("/client/:id", clientAuthMiddleware.ThenFunc(app.clientHandler.GetClientByID))
	mux.Put("/client/:id", clientAuthMiddleware.ThenFunc(app.clientHandler.UpdateClient))
	mux.Del("/client/:id", clientAuthMiddleware.ThenFunc(app.clientHandler.DeleteClient))
	mux.Post("/client/:id/avatar", clientAuthMiddleware.ThenFunc(app.clientHandler.UploadAvatar))

	// Companies
	mux.Post("/company/sign_up", standardMiddleware.ThenFunc(app.companyHandler.SignUp))
	mux.Post("/company/sign_in", standardMiddleware.ThenFunc(app.companyHandler.SignIn))
	mux.Get("/company", viewerMiddleware.ThenFunc(app.companyHandler.GetCompanies))
	mux.Post("/company/:company_id/ratings", clientAuthMiddleware.ThenFunc(app.ratingHandler.CreateRating))
	mux.Get("/company/:company_id/ratings", standardMiddleware.ThenFunc(app.ratingHandler.GetRatingsByCompany))
	mux.Get("/company/:id", viewerMiddleware.ThenFunc(app.companyHandler.GetCompanyByID))
	mux.Put("/company/:id", companyAuthMiddleware.ThenFunc(app.companyHandler.UpdateCompany))
	mux.Del("/company/:id", companyAuthMiddleware.ThenFunc(app.companyHandler.DeleteCompany))
	mux.Post("/company/:id/photo", companyAuthMiddleware.ThenFunc(app.companyHandler.UploadMainPhoto))
	mux.Del("/company/:id/photo", companyAuthMiddleware.ThenFunc(app.companyHandler.RemoveMainPhoto))
	mux.Post("/company/:id/gallery", companyAuthMiddleware.ThenFunc(app.companyHandler.AddGalleryImage))
	mux.Del("/company/:id/gallery", companyAuthMiddleware.ThenFunc(app.companyHandler.RemoveGalleryImage))

	// Services
	mux.Post("/service", adminAuthMiddleware.ThenFunc(app.serviceHandler.CreateService))
	mux.Get("/service", standardMiddleware.ThenFunc(app.serviceHandler.GetServices))
	mux.Get("/service/:service_id/companies", viewerMiddleware.ThenFunc(app.serviceHandler.GetCompaniesByService))
	mux.Get("/service/:id", standardMiddleware.ThenFunc(app.serviceHandler.GetServiceByID))
	mux.Put("/service/:id", adminAuthMiddleware.ThenFunc(app.serviceHandler.UpdateService))
	mux.Del("/service/:id", adminAuthMiddleware.ThenFunc(app.serviceHandler.DeleteService))

	// Listings and search
	mux.Get("/listings", viewerMiddleware.ThenFunc(app.companyHandler.GetCompanies))
	mux.Get("/api/search", standardMiddleware.ThenFunc(app.companyHandler.SearchCompanies))

	// Saved companies
	mux.Post("/saved", clientAuthMiddleware.ThenFunc(app.savedHandler.SaveCompany))
	mux.Post("/saved/toggle/:company_id", clientAuthMiddleware.ThenFunc(app.savedHandler.ToggleSavedCompany))
	mux.Get("/saved/client/:client_id", clientAuthMiddleware.ThenFunc(app.savedHandler.GetSavedByClient))
	mux.Get("/saved/check/client/:client_id/company/:company_id", clientAuthMiddleware.ThenFunc(app.savedHandler.CheckSaved))
	mux.Del("/saved/:id", clientAuthMiddleware.ThenFunc(app.savedHandler.RemoveSaved))

	// Ratings
	mux.Put("/ratings/:id", clientAuthMiddleware.ThenFunc(app.ratingHandler.UpdateRating))
	mux.Del("/ratings/:id", clientAuthMiddleware.ThenFunc(app.ratingHandler.DeleteRating))

	// Messages
	mux.Post("/api/messages", authMiddleware.ThenFunc(app.messageHandler.SendMessage))
	mux.Get("/api/messages/:client_id/:company_id", authMiddleware.ThenFunc(app.messageHandler.GetConversation))
	mux.Get("/api/conversations", authMiddleware.ThenFunc(app.messageHandler.GetConversations))

	mux.Get("/ws", standardMiddleware.ThenFunc(app.WebSocketHandler))

	return standardMiddleware.Then(mux)
}
