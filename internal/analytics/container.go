package analytics

import (
	"github.com/adityahq/exammaster-lambda/internal/docstore"
	"github.com/adityahq/exammaster-lambda/internal/llm"
	"github.com/adityahq/exammaster-lambda/internal/profile"
)

type AnalyticsContainer struct {
	Handler *Handler
}

func NewAnalyticsContainer(store docstore.Store, client llm.Client, profiles profile.Service) *AnalyticsContainer {
	service := NewService(store, client, profiles)
	handler := NewHandler(service)

	return &AnalyticsContainer{
		Handler: handler,
	}
}
