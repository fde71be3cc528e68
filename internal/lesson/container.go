package lesson

import (
	"github.com/adityahq/exammaster-lambda/internal/docstore"
	"github.com/adityahq/exammaster-lambda/internal/llm"
	"github.com/adityahq/exammaster-lambda/internal/profile"
)

type LessonContainer struct {
	Service Service
	Handler *Handler
}

func NewLessonContainer(store docstore.Store, client llm.Client, profiles profile.Service) *LessonContainer {
	service := NewService(store, client, profiles)
	handler := NewHandler(service)

	return &LessonContainer{
		Service: service,
		Handler: handler,
	}
}
