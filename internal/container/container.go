package container

import (
	"context"
	"log"
	"os"

	"github.com/adityahq/exammaster-lambda/internal/analytics"
	"github.com/adityahq/exammaster-lambda/internal/auth"
	"github.com/adityahq/exammaster-lambda/internal/config"
	"github.com/adityahq/exammaster-lambda/internal/diagnostic"
	"github.com/adityahq/exammaster-lambda/internal/docstore"
	"github.com/adityahq/exammaster-lambda/internal/faq"
	"github.com/adityahq/exammaster-lambda/internal/formula"
	"github.com/adityahq/exammaster-lambda/internal/lesson"
	"github.com/adityahq/exammaster-lambda/internal/llm"
	"github.com/adityahq/exammaster-lambda/internal/profile"
	"github.com/adityahq/exammaster-lambda/internal/revision"
	"github.com/adityahq/exammaster-lambda/internal/syllabus"
)

type Container struct {
	ProfileContainer    *profile.ProfileContainer
	SyllabusContainer   *syllabus.SyllabusContainer
	DiagnosticContainer *diagnostic.DiagnosticContainer
	LessonContainer     *lesson.LessonContainer
	RevisionContainer   *revision.RevisionContainer
	FormulaContainer    *formula.FormulaContainer
	FaqContainer        *faq.FaqContainer
	AnalyticsContainer  *analytics.AnalyticsContainer
}

func New() *Container {
	config.Init()
	auth.Init()

	ctx := context.Background()

	var store docstore.Store
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		config.Logger().Warn("DATABASE_DSN not set, using in-memory document store")
		store = docstore.NewMemoryStore()
	} else {
		if err := config.Connect(ctx, dsn); err != nil {
			log.Fatalf("failed to connect to DB: %v", err)
		}
		var err error
		store, err = docstore.NewStore(config.DB)
		if err != nil {
			log.Fatalf("failed to initialize document store: %v", err)
		}
	}

	client, err := llm.NewGeminiClient(ctx)
	if err != nil {
		log.Fatalf("failed to initialize Gemini client: %v", err)
	}

	profileContainer := profile.NewProfileContainer(store)
	profiles := profileContainer.Service

	return &Container{
		ProfileContainer:    profileContainer,
		SyllabusContainer:   syllabus.NewSyllabusContainer(),
		DiagnosticContainer: diagnostic.NewDiagnosticContainer(store, client, profiles),
		LessonContainer:     lesson.NewLessonContainer(store, client, profiles),
		RevisionContainer:   revision.NewRevisionContainer(store, client, profiles),
		FormulaContainer:    formula.NewFormulaContainer(store, client, profiles),
		FaqContainer:        faq.NewFaqContainer(store, client, profiles),
		AnalyticsContainer:  analytics.NewAnalyticsContainer(store, client, profiles),
	}
}
