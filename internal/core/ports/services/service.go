package services

// ServiceContainer holds instances of all the application services.
// It is assembled once in main and handed to the route registration.
type ServiceContainer struct {
	User        UserSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
}
