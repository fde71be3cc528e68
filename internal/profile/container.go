package profile

import "github.com/adityahq/exammaster-lambda/internal/docstore"

type ProfileContainer struct {
	Service Service
	Handler *Handler
}

func NewProfileContainer(store docstore.Store) *ProfileContainer {
	service := NewService(store)
	handler := NewHandler(service)

	return &ProfileContainer{
		Service: service,
		Handler: handler,
	}
}
