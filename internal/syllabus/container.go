package syllabus

type SyllabusContainer struct {
	Handler *Handler
}

func NewSyllabusContainer() *SyllabusContainer {
	return &SyllabusContainer{
		Handler: NewHandler(),
	}
}
