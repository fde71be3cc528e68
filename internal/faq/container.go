package faq

import (
	"github.com/adityahq/exammaster-lambda/internal/docstore"
	"github.com/adityahq/exammaster-lambda/internal/llm"
	"github.com/adityahq/exammaster-lambda/internal/profile"
)

type FaqContainer struct {
	Handler *Handler
}

func NewFaqContainer(store docstore.Store, client llm.Client, profiles profile.Service) *FaqContainer {
	service := NewService(store, client, profiles)
	handler := NewHandler(service)

	return &FaqContainer{
		Handler: handler,
	}
}
