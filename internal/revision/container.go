package revision

import (
	"github.com/adityahq/exammaster-lambda/internal/docstore"
	"github.com/adityahq/exammaster-lambda/internal/llm"
	"github.com/adityahq/exammaster-lambda/internal/profile"
)

type RevisionContainer struct {
	Handler *Handler
}

func NewRevisionContainer(store docstore.Store, client llm.Client, profiles profile.Service) *RevisionContainer {
	service := NewService(store, client, profiles)
	handler := NewHandler(service)

	return &RevisionContainer{
		Handler: handler,
	}
}
