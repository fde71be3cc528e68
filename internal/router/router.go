package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/adityahq/exammaster-lambda/internal/analytics"
	"github.com/adityahq/exammaster-lambda/internal/auth"
	"github.com/adityahq/exammaster-lambda/internal/config"
	"github.com/adityahq/exammaster-lambda/internal/diagnostic"
	"github.com/adityahq/exammaster-lambda/internal/faq"
	"github.com/adityahq/exammaster-lambda/internal/formula"
	"github.com/adityahq/exammaster-lambda/internal/lesson"
	"github.com/adityahq/exammaster-lambda/internal/middlewares"
	"github.com/adityahq/exammaster-lambda/internal/profile"
	"github.com/adityahq/exammaster-lambda/internal/revision"
	"github.com/adityahq/exammaster-lambda/internal/syllabus"
)

type RouterConfig struct {
	ProfileHandler    *profile.Handler
	SyllabusHandler   *syllabus.Handler
	DiagnosticHandler *diagnostic.Handler
	LessonHandler     *lesson.Handler
	RevisionHandler   *revision.Handler
	FormulaHandler    *formula.Handler
	FaqHandler        *faq.Handler
	AnalyticsHandler  *analytics.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{
			"message": "ExamMaster AI backend is running",
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/diagnostic", diagnostic.Routes(cfg.DiagnosticHandler))
		r.Mount("/syllabus", syllabus.Routes(cfg.SyllabusHandler))
		r.Mount("/learning-profile", profile.Routes(cfg.ProfileHandler))
		r.Mount("/analytics", analytics.Routes(cfg.AnalyticsHandler))
		r.Mount("/lessons", lesson.Routes(cfg.LessonHandler))
		r.Mount("/revision", revision.Routes(cfg.RevisionHandler))
		r.Mount("/formula-sheet", formula.Routes(cfg.FormulaHandler))
		r.Mount("/faq-booklet", faq.Routes(cfg.FaqHandler))
	})
	return r
}
