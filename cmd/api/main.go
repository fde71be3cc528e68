package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/adityahq/exammaster-lambda/internal/config"
	"github.com/adityahq/exammaster-lambda/internal/container"
	"github.com/adityahq/exammaster-lambda/internal/router"
)

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		ProfileHandler:    c.ProfileContainer.Handler,
		SyllabusHandler:   c.SyllabusContainer.Handler,
		DiagnosticHandler: c.DiagnosticContainer.Handler,
		LessonHandler:     c.LessonContainer.Handler,
		RevisionHandler:   c.RevisionContainer.Handler,
		FormulaHandler:    c.FormulaContainer.Handler,
		FaqHandler:        c.FaqContainer.Handler,
		AnalyticsHandler:  c.AnalyticsContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := httpadapter.New(r)
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	config.Logger().Infof("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		config.Logger().WithError(err).Fatal("server stopped")
	}
}
