package formula

import (
	"github.com/adityahq/exammaster-lambda/internal/docstore"
	"github.com/adityahq/exammaster-lambda/internal/llm"
	"github.com/adityahq/exammaster-lambda/internal/profile"
)

type FormulaContainer struct {
	Handler *Handler
}

func NewFormulaContainer(store docstore.Store, client llm.Client, profiles profile.Service) *FormulaContainer {
	service := NewService(store, client, profiles)
	handler := NewHandler(service)

	return &FormulaContainer{
		Handler: handler,
	}
}
