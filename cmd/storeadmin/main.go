// Package main is the entry point for storeadmin.
//
//	@title						Storeadmin API
//	@version					1.0
//	@description				Admin API for an electronics store catalog with installment plans.
//
//	@BasePath					/
//
//	@securityDefinitions.apikey	AdminAuth
//	@in							header
//	@name						Authorization
//	@description				Session ID from /admin/login, sent as "Bearer <session_id>" or in the storeadmin_session cookie.
package main

func main() {
	Execute()
}
