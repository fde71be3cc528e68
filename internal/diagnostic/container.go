package diagnostic

import (
	"github.com/adityahq/exammaster-lambda/internal/docstore"
	"github.com/adityahq/exammaster-lambda/internal/llm"
	"github.com/adityahq/exammaster-lambda/internal/profile"
)

type DiagnosticContainer struct {
	Handler *Handler
}

func NewDiagnosticContainer(store docstore.Store, client llm.Client, profiles profile.Service) *DiagnosticContainer {
	service := NewService(store, client, profiles)
	handler := NewHandler(service)

	return &DiagnosticContainer{
		Handler: handler,
	}
}
